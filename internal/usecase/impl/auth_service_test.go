package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	mockSvc "servihub/internal/mocks/service"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service        usecase.AuthUsecase
	txManager      *mockRepo.MockTransactionManager
	profileRepo    *mockRepo.MockProfileRepository
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	publisher      *recordingPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	f := authServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
		publisher:      publisher,
	}
	f.service = NewAuthService(AuthServiceParams{
		CommonParams:   common,
		TxManager:      f.txManager,
		ProfileRepo:    f.profileRepo,
		CredentialRepo: f.credentialRepo,
		Hasher:         f.hasher,
		TokenService:   f.tokenService,
	})

	return f
}

// expectRegistration runs the transaction against fresh repository mocks.
func (f authServiceFixtures) expectRegistration(t *testing.T, withTechnician bool, profileErr error) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().ProfileRepo().Return(profiles)
			profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(profileErr)

			if profileErr == nil {
				credentials := mockRepo.NewMockCredentialRepository(t)
				factory.EXPECT().CredentialRepo().Return(credentials)
				credentials.EXPECT().
					Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool { return c.PasswordHash == "hashed" })).
					Return(nil)
			}

			if withTechnician {
				technicians := mockRepo.NewMockTechnicianRepository(t)
				factory.EXPECT().TechnicianRepo().Return(technicians)
				technicians.EXPECT().
					Create(ctx, mock.MatchedBy(func(tech *entity.Technician) bool { return tech.Active && tech.Balance == 0 })).
					Return(nil)
			}

			return fn(factory)
		})
}

func TestAuthService_RegisterTechnicianCreatesWallet(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.expectRegistration(t, true, nil)
	f.tokenService.EXPECT().GenerateTokens(mock.Anything, []string{"technician"}).Return("access", "refresh", nil)

	output, err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     " João ",
		Email:    " Joao@Example.com ",
		Password: "secret123",
		Role:     entity.RoleTechnician,
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "joao@example.com", output.Profile.Email)
	assert.Equal(t, "João", output.Profile.Name)
	assert.Equal(t, output.Profile.ID, output.Profile.UserID)
	assert.Equal(t, []string{entity.TableProfiles, entity.TableTechnicians}, f.publisher.tables())
}

func TestAuthService_RegisterClientDefaultsToIndividual(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.expectRegistration(t, false, nil)
	f.tokenService.EXPECT().GenerateTokens(mock.Anything, []string{"client"}).Return("access", "refresh", nil)

	output, err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     entity.RoleClient,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ClientTypeIndividual, output.Profile.ClientType)
	assert.Equal(t, []string{entity.TableProfiles}, f.publisher.tables())
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.expectRegistration(t, false, repository.ErrDuplicateEmail)

	_, err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     entity.RoleVendor,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	assert.Empty(t, f.publisher.tables())
}

func TestAuthService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		want  error
	}{
		{
			name:  "missing name",
			input: usecase.RegisterInput{Email: "a@b.co", Password: "secret123", Role: entity.RoleClient},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "bad email",
			input: usecase.RegisterInput{Name: "A", Email: "nope", Password: "secret123", Role: entity.RoleClient},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "admin cannot self register",
			input: usecase.RegisterInput{Name: "A", Email: "a@b.co", Password: "secret123", Role: entity.RoleAdmin},
			want:  domainerrors.ErrRoleNotAllowed,
		},
		{
			name:  "short password",
			input: usecase.RegisterInput{Name: "A", Email: "a@b.co", Password: "abc1", Role: entity.RoleDelivery},
			want:  domainerrors.ErrPasswordStrength,
		},
		{
			name:  "password without digits",
			input: usecase.RegisterInput{Name: "A", Email: "a@b.co", Password: "onlyletters", Role: entity.RoleDelivery},
			want:  domainerrors.ErrPasswordStrength,
		},
		{
			name: "company without nif",
			input: usecase.RegisterInput{
				Name: "A", Email: "a@b.co", Password: "secret123", Role: entity.RoleClient,
				ClientType: entity.ClientTypeCompany, CompanyName: "Acme",
			},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			_, err := f.service.Register(context.Background(), &tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	profileID := uuid.New()
	credential := &entity.Credential{ProfileID: profileID, Email: "ana@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		profile := &entity.Profile{ID: profileID, Role: entity.RoleVendor}

		f.credentialRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(credential, nil)
		f.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		f.profileRepo.EXPECT().FindByID(mock.Anything, profileID).Return(profile, nil)
		f.tokenService.EXPECT().GenerateTokens(profileID, []string{"vendor"}).Return("access", "refresh", nil)

		output, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "ANA@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, profile, output.Profile)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)

		f.credentialRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(credential, nil)
		f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t)

		f.credentialRepo.EXPECT().FindByEmail(mock.Anything, "who@example.com").Return(nil, repository.ErrCredentialNotFound)

		_, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "who@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	profileID := uuid.New()

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateRefreshToken("stale").Return(nil, errors.New("token is expired"))

		_, err := f.service.Refresh(context.Background(), "stale")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted profile", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateRefreshToken("valid").Return(&service.Claims{UserID: profileID}, nil)
		f.profileRepo.EXPECT().FindByID(mock.Anything, profileID).Return(nil, repository.ErrProfileNotFound)

		_, err := f.service.Refresh(context.Background(), "valid")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rotates tokens", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateRefreshToken("valid").Return(&service.Claims{UserID: profileID}, nil)
		f.profileRepo.EXPECT().FindByID(mock.Anything, profileID).Return(&entity.Profile{ID: profileID, Role: entity.RoleClient}, nil)
		f.tokenService.EXPECT().GenerateTokens(profileID, []string{"client"}).Return("access2", "refresh2", nil)

		output, err := f.service.Refresh(context.Background(), "valid")

		require.NoError(t, err)
		assert.Equal(t, "refresh2", output.RefreshToken)
	})
}
