package main

import (
	"servihub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.CredentialModel{},
		model.TechnicianModel{},
		model.CategoryModel{},
		model.SpecialtyModel{},
		model.ServiceOfferingModel{},
		model.ServiceRequestModel{},
		model.WalletTransactionModel{},
		model.PlatformSettingsModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.DeliveryModel{},
		model.SupportTicketModel{},
		model.ProfileDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
