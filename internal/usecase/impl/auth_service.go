package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"unicode"

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

const defaultMinPasswordLen = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	notifier       *changeNotifier
	minPasswordLen int
	now            clock
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In
	CommonParams

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minLen := defaultMinPasswordLen
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLen > 0 {
		minLen = params.Config.Auth.MinPasswordLen
	}

	return &authService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		notifier:       newChangeNotifier(params.CommonParams),
		minPasswordLen: minLen,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the profile, its credential and, for technicians, the wallet record in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if err := srv.validateRegistration(input, email); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := srv.now.now()
	profileID := uuid.New()
	profile := &entity.Profile{
		ID:        profileID,
		UserID:    profileID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Phone:     strings.TrimSpace(input.Phone),
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Role == entity.RoleClient {
		profile.ClientType = input.ClientType
		if profile.ClientType == "" {
			profile.ClientType = entity.ClientTypeIndividual
		}
		if profile.ClientType == entity.ClientTypeCompany {
			profile.CompanyName = strings.TrimSpace(input.CompanyName)
			profile.NIF = strings.TrimSpace(input.NIF)
		}
	}

	var technician *entity.Technician
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return err
		}

		if err := repoFactory.CredentialRepo().Create(ctx, &entity.Credential{
			ProfileID:    profile.ID,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
		}); err != nil {
			return err
		}

		if profile.Role != entity.RoleTechnician {
			return nil
		}

		technician = &entity.Technician{
			ProfileID: profile.ID,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		return repoFactory.TechnicianRepo().Create(ctx, technician)
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, domainerrors.ErrEmailAlreadyExists
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	changes := []*entity.RowChange{
		srv.notifier.rowChange(ctx, entity.TableProfiles, entity.ChangeInsert, profile.ID, profile),
	}
	if technician != nil {
		changes = append(changes, srv.notifier.rowChange(ctx, entity.TableTechnicians, entity.ChangeInsert, technician.ProfileID, technician))
	}
	srv.notifier.committed(ctx, cache.MutationProfileRegister, changes...)

	srv.log(ctx).Info("Profile registered", slog.String("profile_id", profile.ID.String()), slog.String("role", profile.Role.String()))

	return srv.issueTokens(profile)
}

func (srv *authService) validateRegistration(input *usecase.RegisterInput, email string) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return validationError("a valid email is required")
	}
	if !input.Role.SelfRegistrable() {
		return domainerrors.ErrRoleNotAllowed
	}
	if err := validatePasswordStrength(input.Password, srv.minPasswordLen); err != nil {
		return err
	}

	if input.Role != entity.RoleClient {
		return nil
	}
	if input.ClientType != "" && !input.ClientType.IsValid() {
		return validationError("client_type must be individual or company")
	}
	if input.ClientType == entity.ClientTypeCompany &&
		(strings.TrimSpace(input.CompanyName) == "" || strings.TrimSpace(input.NIF) == "") {
		return validationError("company clients must provide company_name and nif")
	}

	return nil
}

// Login checks the password and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	credential, err := srv.credentialRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.ProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for login")
	}

	return srv.issueTokens(profile)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	profile, err := srv.profileRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for refresh")
	}

	return srv.issueTokens(profile)
}

func (srv *authService) issueTokens(profile *entity.Profile) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, entity.Roles{profile.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePasswordStrength requires a minimum length with at least one letter and one digit.
func validatePasswordStrength(password string, minLen int) error {
	if len(password) < minLen {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs letters and digits")
	}

	return nil
}

