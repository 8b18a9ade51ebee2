package postgres

import (
	"context"
	"time"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDelivery
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

func (repo *deliveryRepository) List(ctx context.Context, filter repository.DeliveryFilter) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.DeliveryPersonID != nil {
		query = query.Where("delivery_person_id = ?", *filter.DeliveryPersonID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if err := query.Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// UpdateIfStatus saves the delivery only if its stored status still equals expected.
func (repo *deliveryRepository) UpdateIfStatus(ctx context.Context, delivery *entity.Delivery, expected entity.DeliveryStatus) error {
	deliveryM := fromDeliveryDomain(delivery)

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND status = ?", delivery.ID, string(expected)).
		Select("*").
		Omit("id", "order_id", "vendor_id", "pickup_code", "created_at").
		Updates(deliveryM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryStatusChanged
	}

	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// UpdatePosition stores the current coordinates of the delivery person.
func (repo *deliveryRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position entity.Coordinates) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_lat":         position.Latitude,
			"current_lng":         position.Longitude,
			"position_updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery position")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	delivery := &entity.Delivery{
		ID:               data.ID,
		OrderID:          data.OrderID,
		VendorID:         data.VendorID,
		DeliveryPersonID: data.DeliveryPersonID,
		Status:           entity.DeliveryStatus(data.Status),
		Pickup:           entity.Coordinates{Latitude: data.PickupLat, Longitude: data.PickupLng},
		Dropoff:          entity.Coordinates{Latitude: data.DropoffLat, Longitude: data.DropoffLng},
		DistanceKm:       data.DistanceKm,
		PickupCode:       data.PickupCode,
		AcceptedAt:       data.AcceptedAt,
		PickedUpAt:       data.PickedUpAt,
		InTransitAt:      data.InTransitAt,
		DeliveredAt:      data.DeliveredAt,
		PositionUpdated:  data.PositionUpdatedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.CurrentLat != nil && data.CurrentLng != nil {
		delivery.Current = &entity.Coordinates{Latitude: *data.CurrentLat, Longitude: *data.CurrentLng}
	}

	return delivery
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	deliveryM := &model.DeliveryModel{
		ID:                data.ID,
		OrderID:           data.OrderID,
		VendorID:          data.VendorID,
		DeliveryPersonID:  data.DeliveryPersonID,
		Status:            string(data.Status),
		PickupLat:         data.Pickup.Latitude,
		PickupLng:         data.Pickup.Longitude,
		DropoffLat:        data.Dropoff.Latitude,
		DropoffLng:        data.Dropoff.Longitude,
		DistanceKm:        data.DistanceKm,
		PickupCode:        data.PickupCode,
		AcceptedAt:        data.AcceptedAt,
		PickedUpAt:        data.PickedUpAt,
		InTransitAt:       data.InTransitAt,
		DeliveredAt:       data.DeliveredAt,
		PositionUpdatedAt: data.PositionUpdated,
	}

	if data.Current != nil {
		lat, lng := data.Current.Latitude, data.Current.Longitude
		deliveryM.CurrentLat = &lat
		deliveryM.CurrentLng = &lng
	}

	return deliveryM
}
