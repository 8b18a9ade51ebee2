package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"servihub/config"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	mockService "servihub/internal/mocks/service"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketFixtures struct {
	service     *ticketService
	ticketRepo  *mockRepo.MockSupportTicketRepository
	requestRepo *mockRepo.MockServiceRequestRepository
	profileRepo *mockRepo.MockProfileRepository
	settings    *memorySettings
	mailer      *mockService.MockMailer
	storage     *mockService.MockFileStorage
	publisher   *recordingPublisher
	client      usecase.Actor
	admin       usecase.Actor
	now         time.Time
}

func createTestTicketService(t *testing.T) *ticketFixtures {
	t.Helper()

	cfg := newTestConfig()
	cfg.Storage = &config.StorageConfig{SignedURLTTL: time.Minute, MaxUploadBytes: 16}
	common, publisher := newTestCommon(cfg)

	f := &ticketFixtures{
		ticketRepo:  mockRepo.NewMockSupportTicketRepository(t),
		requestRepo: mockRepo.NewMockServiceRequestRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		settings:    &memorySettings{},
		mailer:      mockService.NewMockMailer(t),
		storage:     mockService.NewMockFileStorage(t),
		publisher:   publisher,
		client:      usecase.Actor{ID: uuid.New(), Role: entity.RoleClient},
		admin:       usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
		now:         time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	srv := NewTicketService(TicketServiceParams{
		CommonParams: common,
		TicketRepo:   f.ticketRepo,
		RequestRepo:  f.requestRepo,
		OrderRepo:    mockRepo.NewMockOrderRepository(t),
		ProfileRepo:  f.profileRepo,
		SettingsRepo: f.settings,
		Mailer:       f.mailer,
		Storage:      f.storage,
	}).(*ticketService)
	srv.now = func() time.Time { return f.now }
	f.service = srv

	return f
}

func (f *ticketFixtures) openTicket(deadline time.Time) *entity.SupportTicket {
	return &entity.SupportTicket{
		ID:               uuid.New(),
		ClientID:         f.client.ID,
		Subject:          "Leaking tap",
		Description:      "Still leaking after the visit",
		Status:           entity.TicketOpen,
		ResponseDeadline: deadline,
	}
}

func TestTicketService_OpenSetsDeadlineFromSettings(t *testing.T) {
	f := createTestTicketService(t)
	requestID := uuid.New()
	f.settings.settings = &entity.PlatformSettings{DisputeWindowHours: 72, Currency: "AOA"}

	f.requestRepo.EXPECT().FindByID(mock.Anything, requestID).
		Return(&entity.ServiceRequest{ID: requestID, ClientID: f.client.ID}, nil)
	f.ticketRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.SupportTicket")).Return(nil)

	view, err := f.service.Open(context.Background(), f.client, &usecase.OpenTicketInput{
		ServiceRequestID: &requestID,
		Subject:          " Leaking tap ",
		Description:      "Still leaking after the visit",
	})

	require.NoError(t, err)
	assert.Equal(t, "Leaking tap", view.Subject)
	assert.Equal(t, entity.TicketOpen, view.Status)
	assert.Equal(t, f.now.Add(72*time.Hour), view.ResponseDeadline)
	assert.Equal(t, f.now, view.ServerTime)
	assert.False(t, view.Expired)
	assert.Equal(t, []string{entity.TableSupportTickets}, f.publisher.tables())
}

func TestTicketService_OpenRejectsOtherClientsRequest(t *testing.T) {
	f := createTestTicketService(t)
	requestID := uuid.New()

	f.requestRepo.EXPECT().FindByID(mock.Anything, requestID).
		Return(&entity.ServiceRequest{ID: requestID, ClientID: uuid.New()}, nil)

	_, err := f.service.Open(context.Background(), f.client, &usecase.OpenTicketInput{
		ServiceRequestID: &requestID,
		Subject:          "Subject",
		Description:      "Description",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTicketService_OpenRequiresText(t *testing.T) {
	f := createTestTicketService(t)

	_, err := f.service.Open(context.Background(), f.client, &usecase.OpenTicketInput{Subject: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTicketService_ExpiredFollowsServerClock(t *testing.T) {
	f := createTestTicketService(t)
	ticket := f.openTicket(f.now.Add(time.Hour))

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)

	view, err := f.service.Get(context.Background(), f.client, ticket.ID)
	require.NoError(t, err)
	assert.False(t, view.Expired)

	f.now = f.now.Add(2 * time.Hour)

	view, err = f.service.Get(context.Background(), f.client, ticket.ID)
	require.NoError(t, err)
	assert.True(t, view.Expired)
	assert.Equal(t, f.now, view.ServerTime)
}

func TestTicketService_RespondMailsClient(t *testing.T) {
	f := createTestTicketService(t)
	ticket := f.openTicket(f.now.Add(time.Hour))

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)
	f.ticketRepo.EXPECT().Update(mock.Anything, ticket).Return(nil)
	f.profileRepo.EXPECT().FindByID(mock.Anything, f.client.ID).
		Return(&entity.Profile{ID: f.client.ID, Name: "Ana", Email: "ana@example.com"}, nil)
	f.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m *service.Mail) bool {
		return m.To == "ana@example.com" && m.Subject == "Re: Leaking tap" && strings.Contains(m.Body, "A technician will return")
	})).Return(errors.New("smtp down"))

	view, err := f.service.Respond(context.Background(), f.admin, ticket.ID, "A technician will return tomorrow")

	require.NoError(t, err, "mail failures do not fail the response")
	assert.Equal(t, entity.TicketResponded, view.Status)
	assert.Equal(t, &f.admin.ID, view.RespondedBy)
	assert.False(t, view.Expired, "responded tickets never expire")
}

func TestTicketService_TechnicianRespondsOnlyToOwnRequest(t *testing.T) {
	f := createTestTicketService(t)
	requestID := uuid.New()
	ticket := f.openTicket(f.now.Add(time.Hour))
	ticket.ServiceRequestID = &requestID
	stranger := usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}
	assigned := uuid.New()

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)
	f.requestRepo.EXPECT().FindByID(mock.Anything, requestID).
		Return(&entity.ServiceRequest{ID: requestID, TechnicianID: &assigned}, nil)

	_, err := f.service.Respond(context.Background(), stranger, ticket.ID, "Not my job")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTicketService_ResolvedTicketIsClosed(t *testing.T) {
	f := createTestTicketService(t)
	ticket := f.openTicket(f.now.Add(time.Hour))
	ticket.Status = entity.TicketResolved

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)

	_, err := f.service.Resolve(context.Background(), f.admin, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTicketClosed)

	_, err = f.service.Respond(context.Background(), f.admin, ticket.ID, "late answer")
	assert.ErrorIs(t, err, domainerrors.ErrTicketClosed)
}

func TestTicketService_UploadAttachment(t *testing.T) {
	f := createTestTicketService(t)
	ticket := f.openTicket(f.now.Add(time.Hour))
	ticket.AttachmentKey = "tickets/old/photo.png"
	key := "tickets/" + ticket.ID.String() + "/leak_photo.png"

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)
	f.storage.EXPECT().Upload(mock.Anything, key, "image/png", mock.Anything).Return(nil)
	f.ticketRepo.EXPECT().Update(mock.Anything, ticket).Return(nil)
	f.storage.EXPECT().Delete(mock.Anything, "tickets/old/photo.png").Return(nil)
	f.storage.EXPECT().SignedURL(mock.Anything, key, time.Minute).Return("https://files.example/signed", nil)

	view, err := f.service.UploadAttachment(context.Background(), f.client, ticket.ID, &usecase.FileUpload{
		Filename:    "../leak photo.png",
		ContentType: "image/png",
		Size:        8,
		Content:     strings.NewReader("pngbytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, key, view.AttachmentKey)
	assert.Equal(t, "https://files.example/signed", view.AttachmentURL)
}

func TestTicketService_UploadAttachmentTooLarge(t *testing.T) {
	f := createTestTicketService(t)
	ticket := f.openTicket(f.now.Add(time.Hour))

	f.ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil)

	_, err := f.service.UploadAttachment(context.Background(), f.client, ticket.ID, &usecase.FileUpload{
		Filename: "big.bin",
		Size:     17,
		Content:  strings.NewReader(strings.Repeat("x", 17)),
	})

	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}
