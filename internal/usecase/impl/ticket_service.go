package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const ticketAttachmentPrefix = "tickets"

type ticketService struct {
	ticketRepo   repository.SupportTicketRepository
	requestRepo  repository.ServiceRequestRepository
	orderRepo    repository.OrderRepository
	profileRepo  repository.ProfileRepository
	settingsRepo repository.SettingsRepository
	mailer       service.Mailer
	uploader     *uploader
	defaults     *entity.PlatformSettings
	notifier     *changeNotifier
	cache        *cache.Store
	now          clock
	logger       *slog.Logger
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In
	CommonParams

	TicketRepo   repository.SupportTicketRepository
	RequestRepo  repository.ServiceRequestRepository
	OrderRepo    repository.OrderRepository
	ProfileRepo  repository.ProfileRepository
	SettingsRepo repository.SettingsRepository
	Mailer       service.Mailer
	Storage      service.FileStorage
}

// NewTicketService creates a new support ticket service instance
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		ticketRepo:   params.TicketRepo,
		requestRepo:  params.RequestRepo,
		orderRepo:    params.OrderRepo,
		profileRepo:  params.ProfileRepo,
		settingsRepo: params.SettingsRepo,
		mailer:       params.Mailer,
		uploader:     newUploader(params.Storage, params.Config, params.Logger),
		defaults:     defaultSettings(params.Config),
		notifier:     newChangeNotifier(params.CommonParams),
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *ticketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open files a dispute. The response deadline is fixed at creation from the dispute window.
func (srv *ticketService) Open(ctx context.Context, actor usecase.Actor, input *usecase.OpenTicketInput) (*entity.SupportTicketView, error) {
	if err := requireRole(actor, entity.RoleClient); err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(input.Subject)
	description := strings.TrimSpace(input.Description)
	if subject == "" || description == "" {
		return nil, validationError("subject and description are required")
	}

	if input.ServiceRequestID != nil {
		request, err := srv.requestRepo.FindByID(ctx, *input.ServiceRequestID)
		if errors.Is(err, repository.ErrServiceRequestNotFound) {
			return nil, domainerrors.ErrServiceRequestNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find service request")
		}
		if request.ClientID != actor.ID {
			return nil, domainerrors.ErrForbidden
		}
	}
	if input.OrderID != nil {
		order, err := srv.orderRepo.FindByID(ctx, *input.OrderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find order")
		}
		if order.ClientID != actor.ID {
			return nil, domainerrors.ErrForbidden
		}
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	now := srv.now.now()
	ticket := &entity.SupportTicket{
		ID:               uuid.New(),
		ClientID:         actor.ID,
		ServiceRequestID: input.ServiceRequestID,
		OrderID:          input.OrderID,
		Subject:          subject,
		Description:      description,
		Status:           entity.TicketOpen,
		ResponseDeadline: now.Add(settings.DisputeWindow()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := srv.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to create support ticket")
	}

	srv.published(ctx, entity.ChangeInsert, ticket)

	return srv.view(ctx, ticket), nil
}

func (srv *ticketService) List(ctx context.Context, actor usecase.Actor, status *entity.SupportTicketStatus) ([]*entity.SupportTicketView, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleTechnician, entity.RoleAdmin); err != nil {
		return nil, err
	}

	filter := repository.SupportTicketFilter{Status: status}
	switch actor.Role {
	case entity.RoleClient:
		filter.ClientID = uuidPtr(actor.ID)
	case entity.RoleTechnician:
		filter.TechnicianID = uuidPtr(actor.ID)
	}

	statusScope := ""
	if status != nil {
		statusScope = string(*status)
	}
	key := cache.Scoped(cache.SupportTickets, actor.Role.String(), actor.ID.String(), statusScope)

	tickets, err := cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.SupportTicket, error) {
		return srv.ticketRepo.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}

	// Views are built per call so expired and server_time follow the server clock.
	views := make([]*entity.SupportTicketView, 0, len(tickets))
	for _, ticket := range tickets {
		views = append(views, srv.view(ctx, ticket))
	}

	return views, nil
}

func (srv *ticketService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.SupportTicketView, error) {
	ticket, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.canView(ctx, actor, ticket); err != nil {
		return nil, err
	}

	return srv.view(ctx, ticket), nil
}

// Respond answers a ticket as an admin or as the technician of the disputed request,
// then e-mails the client. Mail failures do not fail the response.
func (srv *ticketService) Respond(ctx context.Context, actor usecase.Actor, id uuid.UUID, response string) (*entity.SupportTicketView, error) {
	if err := requireRole(actor, entity.RoleAdmin, entity.RoleTechnician); err != nil {
		return nil, err
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return nil, validationError("response is required")
	}

	ticket, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleTechnician {
		if err := srv.requireRequestTechnician(ctx, actor, ticket); err != nil {
			return nil, err
		}
	}
	if ticket.Status == entity.TicketResolved {
		return nil, domainerrors.ErrTicketClosed
	}

	now := srv.now.now()
	ticket.Status = entity.TicketResponded
	ticket.Response = response
	ticket.RespondedBy = uuidPtr(actor.ID)
	ticket.RespondedAt = timePtr(now)
	ticket.UpdatedAt = now

	if err := srv.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to update support ticket")
	}

	srv.published(ctx, entity.ChangeUpdate, ticket)
	srv.notifyClient(ctx, ticket)

	return srv.view(ctx, ticket), nil
}

func (srv *ticketService) Resolve(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.SupportTicketView, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	ticket, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == entity.TicketResolved {
		return nil, domainerrors.ErrTicketClosed
	}

	now := srv.now.now()
	ticket.Status = entity.TicketResolved
	ticket.ResolvedAt = timePtr(now)
	ticket.UpdatedAt = now

	if err := srv.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to update support ticket")
	}

	srv.published(ctx, entity.ChangeUpdate, ticket)

	return srv.view(ctx, ticket), nil
}

func (srv *ticketService) UploadAttachment(ctx context.Context, actor usecase.Actor, id uuid.UUID, upload *usecase.FileUpload) (*entity.SupportTicketView, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleAdmin); err != nil {
		return nil, err
	}

	ticket, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleClient && ticket.ClientID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}
	if ticket.Status == entity.TicketResolved {
		return nil, domainerrors.ErrTicketClosed
	}

	key, err := srv.uploader.store(ctx, ticketAttachmentPrefix, ticket.ID, upload)
	if err != nil {
		return nil, err
	}

	previous := ticket.AttachmentKey
	ticket.AttachmentKey = key
	ticket.UpdatedAt = srv.now.now()
	if err := srv.ticketRepo.Update(ctx, ticket); err != nil {
		srv.uploader.remove(ctx, key)

		return nil, errors.Wrap(err, "failed to update support ticket")
	}
	if previous != "" && previous != key {
		srv.uploader.remove(ctx, previous)
	}

	srv.published(ctx, entity.ChangeUpdate, ticket)

	return srv.view(ctx, ticket), nil
}

func (srv *ticketService) notifyClient(ctx context.Context, ticket *entity.SupportTicket) {
	client, err := srv.profileRepo.FindByID(ctx, ticket.ClientID)
	if err != nil {
		srv.log(ctx).Warn("Skipping ticket response mail, client not found",
			slog.String("ticket_id", ticket.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	mail := &service.Mail{
		To:      client.Email,
		Subject: fmt.Sprintf("Re: %s", ticket.Subject),
		Body:    fmt.Sprintf("Hello %s,\n\nYour support ticket received a response:\n\n%s\n", client.Name, ticket.Response),
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send ticket response mail",
			slog.String("ticket_id", ticket.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *ticketService) canView(ctx context.Context, actor usecase.Actor, ticket *entity.SupportTicket) error {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleClient:
		if ticket.ClientID == actor.ID {
			return nil
		}
	case entity.RoleTechnician:
		return srv.requireRequestTechnician(ctx, actor, ticket)
	}

	if actor.ID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	return domainerrors.ErrForbidden
}

// requireRequestTechnician checks the actor is the technician of the disputed request.
func (srv *ticketService) requireRequestTechnician(ctx context.Context, actor usecase.Actor, ticket *entity.SupportTicket) error {
	if ticket.ServiceRequestID == nil {
		return domainerrors.ErrForbidden
	}

	request, err := srv.requestRepo.FindByID(ctx, *ticket.ServiceRequestID)
	if errors.Is(err, repository.ErrServiceRequestNotFound) {
		return domainerrors.ErrForbidden
	}
	if err != nil {
		return errors.Wrap(err, "failed to find service request")
	}
	if !request.IsAssignedTo(actor.ID) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *ticketService) find(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := srv.ticketRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSupportTicketNotFound) {
		return nil, domainerrors.ErrSupportTicketNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find support ticket")
	}

	return ticket, nil
}

func (srv *ticketService) view(ctx context.Context, ticket *entity.SupportTicket) *entity.SupportTicketView {
	view := entity.NewSupportTicketView(ticket, srv.now.now())
	view.AttachmentURL = srv.uploader.signedURL(ctx, ticket.AttachmentKey)

	return view
}

func (srv *ticketService) published(ctx context.Context, changeType entity.ChangeType, ticket *entity.SupportTicket) {
	srv.notifier.committed(ctx, cache.MutationTicketWrite,
		srv.notifier.rowChange(ctx, entity.TableSupportTickets, changeType, ticket.ID, ticket),
	)
}
