package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultProfilePageSize = 50

type profileService struct {
	profileRepo    repository.ProfileRepository
	technicianRepo repository.TechnicianRepository
	notifier       *changeNotifier
	cache          *cache.Store
	now            clock
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In
	CommonParams

	ProfileRepo    repository.ProfileRepository
	TechnicianRepo repository.TechnicianRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:    params.ProfileRepo,
		technicianRepo: params.TechnicianRepo,
		notifier:       newChangeNotifier(params.CommonParams),
		cache:          params.Cache,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetMe(ctx context.Context, actor usecase.Actor) (*entity.Profile, error) {
	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Profiles, actor.ID.String()), func(ctx context.Context) (*entity.Profile, error) {
		return srv.findProfile(ctx, actor.ID)
	})
}

func (srv *profileService) UpdateMe(ctx context.Context, actor usecase.Actor, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.findProfile(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, validationError("name cannot be empty")
		}
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}

	if profile.Role == entity.RoleClient {
		if input.ClientType != nil {
			if !input.ClientType.IsValid() {
				return nil, validationError("client_type must be individual or company")
			}
			profile.ClientType = *input.ClientType
		}
		if input.CompanyName != nil {
			profile.CompanyName = strings.TrimSpace(*input.CompanyName)
		}
		if input.NIF != nil {
			profile.NIF = strings.TrimSpace(*input.NIF)
		}
		if profile.IsCompany() && (profile.CompanyName == "" || profile.NIF == "") {
			return nil, validationError("company clients must provide company_name and nif")
		}
	}

	return srv.save(ctx, profile)
}

// CompleteOnboarding persists the per-role onboarding flag.
func (srv *profileService) CompleteOnboarding(ctx context.Context, actor usecase.Actor) (*entity.Profile, error) {
	profile, err := srv.findProfile(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if profile.OnboardingCompleted {
		return profile, nil
	}
	profile.OnboardingCompleted = true

	return srv.save(ctx, profile)
}

func (srv *profileService) save(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	profile.UpdatedAt = srv.now.now()
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.notifier.committed(ctx, cache.MutationProfileUpdate,
		srv.notifier.rowChange(ctx, entity.TableProfiles, entity.ChangeUpdate, profile.ID, profile),
	)

	return profile, nil
}

func (srv *profileService) ListProfiles(ctx context.Context, actor usecase.Actor, input *usecase.ProfileListInput) ([]*entity.Profile, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	filter := repository.ProfileFilter{Limit: defaultProfilePageSize}
	if input != nil {
		if input.Role != "" && !input.Role.IsValid() {
			return nil, validationError("unknown role")
		}
		filter.Role = input.Role
		filter.Offset = input.Offset
		if input.Limit > 0 {
			filter.Limit = input.Limit
		}
	}

	key := cache.Scoped(cache.Profiles, "list", filter.Role.String(), strconv.Itoa(filter.Limit), strconv.Itoa(filter.Offset))

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Profile, error) {
		return srv.profileRepo.List(ctx, filter)
	})
}

func (srv *profileService) GetTechnician(ctx context.Context, actor usecase.Actor, technicianID uuid.UUID) (*entity.Technician, error) {
	if actor.ID != technicianID {
		if err := requireRole(actor, entity.RoleAdmin, entity.RoleClient); err != nil {
			return nil, err
		}
	}

	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.TechnicianProfile, technicianID.String()), func(ctx context.Context) (*entity.Technician, error) {
		return srv.findTechnician(ctx, technicianID)
	})
}

func (srv *profileService) ListTechnicians(ctx context.Context, actor usecase.Actor, categoryID *uuid.UUID) ([]*entity.Technician, error) {
	if err := requireRole(actor, entity.RoleAdmin, entity.RoleClient); err != nil {
		return nil, err
	}

	filter := repository.TechnicianFilter{
		ActiveOnly: actor.Role != entity.RoleAdmin,
		CategoryID: categoryID,
	}

	category := ""
	if categoryID != nil {
		category = categoryID.String()
	}
	key := cache.Scoped(cache.Technicians, strconv.FormatBool(filter.ActiveOnly), category)

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Technician, error) {
		return srv.technicianRepo.List(ctx, filter)
	})
}

func (srv *profileService) SetTechnicianActive(ctx context.Context, actor usecase.Actor, technicianID uuid.UUID, active bool) (*entity.Technician, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if err := srv.technicianRepo.SetActive(ctx, technicianID, active); err != nil {
		if errors.Is(err, repository.ErrTechnicianNotFound) {
			return nil, domainerrors.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "failed to set technician active flag")
	}

	technician, err := srv.findTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	srv.notifier.committed(ctx, cache.MutationTechnicianSetActive,
		srv.notifier.rowChange(ctx, entity.TableTechnicians, entity.ChangeUpdate, technician.ProfileID, technician),
	)

	srv.log(ctx).Info("Technician active flag changed",
		slog.String("technician_id", technicianID.String()),
		slog.Bool("active", active),
	)

	return technician, nil
}

func (srv *profileService) findProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func (srv *profileService) findTechnician(ctx context.Context, id uuid.UUID) (*entity.Technician, error) {
	technician, err := srv.technicianRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrTechnicianNotFound) {
		return nil, domainerrors.ErrTechnicianNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find technician")
	}

	return technician, nil
}
