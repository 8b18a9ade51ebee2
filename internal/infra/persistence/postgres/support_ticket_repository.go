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

// supportTicketRepository implements the repository.SupportTicketRepository interface.
type supportTicketRepository struct {
	db *gorm.DB
}

// NewSupportTicketRepository is the constructor for supportTicketRepository.
func NewSupportTicketRepository(db *gorm.DB) repository.SupportTicketRepository {
	return &supportTicketRepository{
		db: db,
	}
}

func (repo *supportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	ticketM := fromSupportTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required ticket information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create support ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

func (repo *supportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	var ticketM model.SupportTicketModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupportTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find support ticket by ID")
	}

	return toSupportTicketDomain(&ticketM), nil
}

func (repo *supportTicketRepository) List(ctx context.Context, filter repository.SupportTicketFilter) ([]*entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("service_request_id IN (?)",
			repo.db.Model(&model.ServiceRequestModel{}).Select("id").Where("technician_id = ?", *filter.TechnicianID),
		)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list support tickets")
	}

	tickets := make([]*entity.SupportTicket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toSupportTicketDomain(ticketM))
	}

	return tickets, nil
}

func (repo *supportTicketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupportTicketModel{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]any{
			"status":         string(ticket.Status),
			"response":       ticket.Response,
			"responded_by":   ticket.RespondedBy,
			"responded_at":   ticket.RespondedAt,
			"resolved_at":    ticket.ResolvedAt,
			"attachment_key": ticket.AttachmentKey,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update support ticket")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupportTicketNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSupportTicketDomain(data *model.SupportTicketModel) *entity.SupportTicket {
	return &entity.SupportTicket{
		ID:               data.ID,
		ClientID:         data.ClientID,
		ServiceRequestID: data.ServiceRequestID,
		OrderID:          data.OrderID,
		Subject:          data.Subject,
		Description:      data.Description,
		Status:           entity.SupportTicketStatus(data.Status),
		Response:         data.Response,
		RespondedBy:      data.RespondedBy,
		ResponseDeadline: data.ResponseDeadline,
		RespondedAt:      data.RespondedAt,
		ResolvedAt:       data.ResolvedAt,
		AttachmentKey:    data.AttachmentKey,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromSupportTicketDomain(data *entity.SupportTicket) *model.SupportTicketModel {
	return &model.SupportTicketModel{
		ID:               data.ID,
		ClientID:         data.ClientID,
		ServiceRequestID: data.ServiceRequestID,
		OrderID:          data.OrderID,
		Subject:          data.Subject,
		Description:      data.Description,
		Status:           string(data.Status),
		Response:         data.Response,
		RespondedBy:      data.RespondedBy,
		ResponseDeadline: data.ResponseDeadline,
		RespondedAt:      data.RespondedAt,
		ResolvedAt:       data.ResolvedAt,
		AttachmentKey:    data.AttachmentKey,
	}
}
