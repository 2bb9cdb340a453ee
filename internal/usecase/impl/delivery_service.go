package impl

import (
	"context"
	"log/slog"
	"time"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/domain/resolution"
	"mercado/internal/domain/service"
	"mercado/internal/errors"
	"mercado/internal/usecase"

	"github.com/google/uuid"
)

type deliveryService struct {
	companyRepo  repository.CompanyRepository
	deliveryRepo repository.DeliveryRepository
	txManager    repository.TransactionManager
	authorizer   service.Authorizer
	logger       *slog.Logger
}

// NewDeliveryService creates a new delivery usecase instance.
func NewDeliveryService(
	companyRepo repository.CompanyRepository,
	deliveryRepo repository.DeliveryRepository,
	txManager repository.TransactionManager,
	authorizer service.Authorizer,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		companyRepo:  companyRepo,
		deliveryRepo: deliveryRepo,
		txManager:    txManager,
		authorizer:   authorizer,
		logger:       logger,
	}
}

// GetConfig returns a company's delivery configuration.
func (s *deliveryService) GetConfig(ctx context.Context, companyID uuid.UUID) (*entity.DeliveryConfig, error) {
	cfg, err := s.deliveryRepo.FindConfigByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryConfigNotFound) {
			return nil, domainerrors.ErrDeliveryConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery config")
	}

	return cfg, nil
}

// ListZones returns a company's zones, highest priority first.
func (s *deliveryService) ListZones(ctx context.Context, companyID uuid.UUID) ([]*entity.DeliveryZone, error) {
	zones, err := s.deliveryRepo.FindZonesByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery zones")
	}

	return zones, nil
}

// EnsureConfig creates or updates the company's delivery configuration.
func (s *deliveryService) EnsureConfig(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *usecase.DeliveryConfigInput) (*entity.DeliveryConfig, error) {
	if err := validateDeliveryConfigInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	existing, err := s.deliveryRepo.FindConfigByCompany(ctx, companyID)
	if err != nil && !errors.Is(err, repository.ErrDeliveryConfigNotFound) {
		return nil, errors.Wrap(err, "failed to find delivery config")
	}

	if existing != nil {
		applyDeliveryConfigInput(existing, input)
		if err := s.deliveryRepo.UpdateConfig(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update delivery config")
		}

		return existing, nil
	}

	cfg := &entity.DeliveryConfig{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	applyDeliveryConfigInput(cfg, input)

	if err := s.deliveryRepo.CreateConfig(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrDuplicateDeliveryConfig) {
			return nil, domainerrors.ErrDuplicateDeliveryConfig
		}

		return nil, errors.Wrap(err, "failed to create delivery config")
	}

	return cfg, nil
}

// ReplaceZones atomically swaps the company's full zone list. The delete and
// the inserts share one transaction so concurrent readers never observe a
// company with no zones.
func (s *deliveryService) ReplaceZones(ctx context.Context, principal entity.Principal, companyID uuid.UUID, inputs []*usecase.DeliveryZoneInput) ([]*entity.DeliveryZone, error) {
	for _, input := range inputs {
		if err := validateZoneInput(input); err != nil {
			return nil, err
		}
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	zones := make([]*entity.DeliveryZone, 0, len(inputs))
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewDeliveryRepository()
		if err := repo.DeleteZonesByCompany(ctx, companyID); err != nil {
			return errors.Wrap(err, "failed to delete existing zones")
		}
		for _, input := range inputs {
			zone := zoneFromInput(companyID, input)
			if err := repo.CreateZone(ctx, zone); err != nil {
				return errors.Wrap(err, "failed to create zone")
			}
			zones = append(zones, zone)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return zones, nil
}

// AddZone appends a single zone.
func (s *deliveryService) AddZone(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *usecase.DeliveryZoneInput) (*entity.DeliveryZone, error) {
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	zone := zoneFromInput(companyID, input)
	if err := s.deliveryRepo.CreateZone(ctx, zone); err != nil {
		return nil, errors.Wrap(err, "failed to create zone")
	}

	return zone, nil
}

// UpdateZone rewrites a single zone.
func (s *deliveryService) UpdateZone(ctx context.Context, principal entity.Principal, companyID, zoneID uuid.UUID, input *usecase.DeliveryZoneInput) (*entity.DeliveryZone, error) {
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	zone, err := s.findOwnedZone(ctx, companyID, zoneID)
	if err != nil {
		return nil, err
	}

	applyZoneInput(zone, input)
	if err := s.deliveryRepo.UpdateZone(ctx, zone); err != nil {
		return nil, errors.Wrap(err, "failed to update zone")
	}

	return zone, nil
}

// RemoveZone deletes a single zone.
func (s *deliveryService) RemoveZone(ctx context.Context, principal entity.Principal, companyID, zoneID uuid.UUID) error {
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return err
	}

	if _, err := s.findOwnedZone(ctx, companyID, zoneID); err != nil {
		return err
	}

	if err := s.deliveryRepo.DeleteZone(ctx, zoneID); err != nil {
		return errors.Wrap(err, "failed to delete zone")
	}

	return nil
}

// Quote resolves whether the company can deliver to the address. Resolution
// runs on the public read path, so any internal fault degrades into a
// negative quote rather than an error response.
func (s *deliveryService) Quote(ctx context.Context, companyID uuid.UUID, input *usecase.QuoteInput) (quote resolution.DeliveryQuote, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("delivery quote panicked",
				slog.String("companyID", companyID.String()),
				slog.Any("panic", r),
			)
			quote = resolution.DeliveryQuote{CanDeliver: false, Reason: "error calculating delivery fee"}
			err = nil
		}
	}()

	company, findErr := s.companyRepo.FindCompanyByID(ctx, companyID)
	if findErr != nil {
		if errors.Is(findErr, repository.ErrCompanyNotFound) {
			return resolution.DeliveryQuote{}, domainerrors.ErrCompanyNotFound
		}

		return resolution.DeliveryQuote{}, errors.Wrap(findErr, "failed to find company")
	}

	cfg, cfgErr := s.deliveryRepo.FindConfigByCompany(ctx, companyID)
	if cfgErr != nil && !errors.Is(cfgErr, repository.ErrDeliveryConfigNotFound) {
		s.logger.Error("failed to load delivery config for quote", slog.Any("error", cfgErr))

		return resolution.DeliveryQuote{CanDeliver: false, Reason: "error calculating delivery fee"}, nil
	}

	zones, zonesErr := s.deliveryRepo.FindZonesByCompany(ctx, companyID)
	if zonesErr != nil {
		s.logger.Error("failed to load delivery zones for quote", slog.Any("error", zonesErr))

		return resolution.DeliveryQuote{CanDeliver: false, Reason: "error calculating delivery fee"}, nil
	}

	return resolution.ResolveDelivery(cfg, zones, company, input.Address, input.OrderValue), nil
}

// authorize maps the authorizer's verdict onto the error taxonomy.
func (s *deliveryService) authorize(ctx context.Context, principal entity.Principal, companyID uuid.UUID) error {
	ok, err := s.authorizer.CanManageCompany(ctx, principal, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return domainerrors.ErrCompanyNotFound
		}

		return errors.Wrap(err, "authorization check failed")
	}
	if !ok {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (s *deliveryService) findOwnedZone(ctx context.Context, companyID, zoneID uuid.UUID) (*entity.DeliveryZone, error) {
	zone, err := s.deliveryRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone")
	}
	if zone.CompanyID != companyID {
		return nil, domainerrors.ErrZoneNotFound
	}

	return zone, nil
}

func applyDeliveryConfigInput(cfg *entity.DeliveryConfig, input *usecase.DeliveryConfigInput) {
	cfg.IsEnabled = input.IsEnabled
	cfg.AvailableTypes = input.AvailableTypes
	cfg.FeeCalculationType = input.FeeCalculationType
	cfg.BaseFee = input.BaseFee
	cfg.FeePerKm = input.FeePerKm
	cfg.FreeDeliveryMinValue = input.FreeDeliveryMinValue
	cfg.EstimatedTimeMinutes = input.EstimatedTimeMinutes
	cfg.PickupTimeMinutes = input.PickupTimeMinutes
	cfg.MinimumOrderValue = input.MinimumOrderValue
	cfg.MaximumOrderValue = input.MaximumOrderValue
	cfg.UpdatedAt = time.Now()
}

func zoneFromInput(companyID uuid.UUID, input *usecase.DeliveryZoneInput) *entity.DeliveryZone {
	zone := &entity.DeliveryZone{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	applyZoneInput(zone, input)

	return zone
}

func applyZoneInput(zone *entity.DeliveryZone, input *usecase.DeliveryZoneInput) {
	zone.Name = input.Name
	zone.ZoneType = input.ZoneType
	zone.RadiusKm = input.RadiusKm
	zone.Polygon = input.Polygon
	zone.Neighborhoods = input.Neighborhoods
	zone.PostalCodes = input.PostalCodes
	zone.DeliveryFee = input.DeliveryFee
	zone.EstimatedTimeMinutes = input.EstimatedTimeMinutes
	zone.MinimumOrderValue = input.MinimumOrderValue
	zone.IsEnabled = input.IsEnabled
	zone.Priority = input.Priority
	zone.UpdatedAt = time.Now()
}
