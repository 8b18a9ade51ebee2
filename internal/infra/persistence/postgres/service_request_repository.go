package postgres

import (
	"context"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serviceRequestRepository implements the repository.ServiceRequestRepository interface.
type serviceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository is the constructor for serviceRequestRepository.
func NewServiceRequestRepository(db *gorm.DB) repository.ServiceRequestRepository {
	return &serviceRequestRepository{
		db: db,
	}
}

// Create persists a new service request.
func (repo *serviceRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	requestM := fromServiceRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or client reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("service request violates a constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a service request by ID.
func (repo *serviceRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	var requestM model.ServiceRequestModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find service request by ID")
	}

	return toServiceRequestDomain(&requestM), nil
}

// List retrieves service requests matching the filter, newest first.
func (repo *serviceRequestRepository) List(ctx context.Context, filter repository.ServiceRequestFilter) ([]*entity.ServiceRequest, error) {
	var requestModels []*model.ServiceRequestModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CategoryIDs != nil {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Unassigned {
		query = query.Where("technician_id IS NULL")
	}

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service requests")
	}

	requests := make([]*entity.ServiceRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toServiceRequestDomain(requestM))
	}

	return requests, nil
}

// UpdateIfStatus saves the request only if its stored status still equals expected.
func (repo *serviceRequestRepository) UpdateIfStatus(ctx context.Context, request *entity.ServiceRequest, expected entity.ServiceRequestStatus) error {
	requestM := fromServiceRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceRequestModel{}).
		Where("id = ? AND status = ?", request.ID, string(expected)).
		Select("*").
		Omit("id", "client_id", "created_at").
		Updates(requestM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceRequestStatusChanged
	}

	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toServiceRequestDomain(data *model.ServiceRequestModel) *entity.ServiceRequest {
	if data == nil {
		return nil
	}

	return &entity.ServiceRequest{
		ID:                  data.ID,
		ClientID:            data.ClientID,
		TechnicianID:        data.TechnicianID,
		CategoryID:          data.CategoryID,
		Status:              entity.ServiceRequestStatus(data.Status),
		Description:         data.Description,
		Address:             data.Address,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		EstimatedPrice:      data.EstimatedPrice,
		FinalPrice:          data.FinalPrice,
		CommissionAmount:    data.CommissionAmount,
		CancellationReason:  data.CancellationReason,
		CancelledBy:         data.CancelledBy,
		CancelledByRole:     entity.Role(data.CancelledByRole),
		CancellationFee:     data.CancellationFee,
		TechnicianArrivedAt: data.TechnicianArrivedAt,
		AcceptedAt:          data.AcceptedAt,
		StartedAt:           data.StartedAt,
		CompletedAt:         data.CompletedAt,
		CancelledAt:         data.CancelledAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromServiceRequestDomain(data *entity.ServiceRequest) *model.ServiceRequestModel {
	return &model.ServiceRequestModel{
		ID:                  data.ID,
		ClientID:            data.ClientID,
		TechnicianID:        data.TechnicianID,
		CategoryID:          data.CategoryID,
		Status:              string(data.Status),
		Description:         data.Description,
		Address:             data.Address,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		EstimatedPrice:      data.EstimatedPrice,
		FinalPrice:          data.FinalPrice,
		CommissionAmount:    data.CommissionAmount,
		CancellationReason:  data.CancellationReason,
		CancelledBy:         data.CancelledBy,
		CancelledByRole:     string(data.CancelledByRole),
		CancellationFee:     data.CancellationFee,
		TechnicianArrivedAt: data.TechnicianArrivedAt,
		AcceptedAt:          data.AcceptedAt,
		StartedAt:           data.StartedAt,
		CompletedAt:         data.CompletedAt,
		CancelledAt:         data.CancelledAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
