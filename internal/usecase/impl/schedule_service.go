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

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	txManager    repository.TransactionManager
	authorizer   service.Authorizer
	clock        service.Clock
	logger       *slog.Logger
}

// NewScheduleService creates a new schedule usecase instance.
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	txManager repository.TransactionManager,
	authorizer service.Authorizer,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		authorizer:   authorizer,
		clock:        clock,
		logger:       logger,
	}
}

// GetConfig returns a company's schedule configuration.
func (s *scheduleService) GetConfig(ctx context.Context, companyID uuid.UUID) (*entity.ScheduleConfig, error) {
	cfg, err := s.scheduleRepo.FindConfigByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleConfigNotFound) {
			return nil, domainerrors.ErrScheduleConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule config")
	}

	return cfg, nil
}

// ListHours returns a company's hour entries.
func (s *scheduleService) ListHours(ctx context.Context, companyID uuid.UUID) ([]*entity.ScheduleHourEntry, error) {
	hours, err := s.scheduleRepo.FindHoursByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedule hours")
	}

	return hours, nil
}

// EnsureConfig creates or updates the company's schedule configuration.
func (s *scheduleService) EnsureConfig(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *usecase.ScheduleConfigInput) (*entity.ScheduleConfig, error) {
	if err := validateScheduleConfigInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.FindConfigByCompany(ctx, companyID)
	if err != nil && !errors.Is(err, repository.ErrScheduleConfigNotFound) {
		return nil, errors.Wrap(err, "failed to find schedule config")
	}

	if existing != nil {
		applyScheduleConfigInput(existing, input)
		if err := s.scheduleRepo.UpdateConfig(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update schedule config")
		}

		return existing, nil
	}

	cfg := &entity.ScheduleConfig{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	applyScheduleConfigInput(cfg, input)

	if err := s.scheduleRepo.CreateConfig(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrDuplicateScheduleConfig) {
			return nil, domainerrors.ErrDuplicateScheduleConfig
		}

		return nil, errors.Wrap(err, "failed to create schedule config")
	}

	return cfg, nil
}

// ReplaceHours atomically swaps the company's full hour-entry list. The
// delete and the inserts share one transaction so readers never observe a
// company with no hours.
func (s *scheduleService) ReplaceHours(ctx context.Context, principal entity.Principal, companyID uuid.UUID, inputs []*usecase.ScheduleHourInput) ([]*entity.ScheduleHourEntry, error) {
	regularDays := make(map[entity.Weekday]bool, len(inputs))
	for _, input := range inputs {
		if err := validateHourInput(input); err != nil {
			return nil, err
		}
		if input.ScheduleType == entity.ScheduleTypeRegular {
			if regularDays[input.DayOfWeek] {
				return nil, domainerrors.ErrDuplicateRegularEntry
			}
			regularDays[input.DayOfWeek] = true
		}
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	entries := make([]*entity.ScheduleHourEntry, 0, len(inputs))
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewScheduleRepository()
		if err := repo.DeleteHoursByCompany(ctx, companyID); err != nil {
			return errors.Wrap(err, "failed to delete existing hours")
		}
		for _, input := range inputs {
			entry := hourFromInput(companyID, input)
			if err := repo.CreateHour(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to create hour entry")
			}
			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// AddHour appends a single hour entry. A REGULAR entry is rejected when the
// weekday already has one.
func (s *scheduleService) AddHour(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *usecase.ScheduleHourInput) (*entity.ScheduleHourEntry, error) {
	if err := validateHourInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	if input.ScheduleType == entity.ScheduleTypeRegular {
		if err := s.checkRegularConflict(ctx, companyID, input.DayOfWeek, uuid.Nil); err != nil {
			return nil, err
		}
	}

	entry := hourFromInput(companyID, input)
	if err := s.scheduleRepo.CreateHour(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create hour entry")
	}

	return entry, nil
}

// UpdateHour rewrites a single hour entry.
func (s *scheduleService) UpdateHour(ctx context.Context, principal entity.Principal, companyID, entryID uuid.UUID, input *usecase.ScheduleHourInput) (*entity.ScheduleHourEntry, error) {
	if err := validateHourInput(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return nil, err
	}

	entry, err := s.findOwnedHour(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if input.ScheduleType == entity.ScheduleTypeRegular {
		if err := s.checkRegularConflict(ctx, companyID, input.DayOfWeek, entryID); err != nil {
			return nil, err
		}
	}

	applyHourInput(entry, input)
	if err := s.scheduleRepo.UpdateHour(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update hour entry")
	}

	return entry, nil
}

// RemoveHour deletes a single hour entry.
func (s *scheduleService) RemoveHour(ctx context.Context, principal entity.Principal, companyID, entryID uuid.UUID) error {
	if err := s.authorize(ctx, principal, companyID); err != nil {
		return err
	}

	if _, err := s.findOwnedHour(ctx, companyID, entryID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteHour(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete hour entry")
	}

	return nil
}

// OpenStatus resolves whether the company is open right now. Resolution runs
// on the public read path, so any internal fault degrades into a closed
// status rather than an error response.
func (s *scheduleService) OpenStatus(ctx context.Context, companyID uuid.UUID) (status resolution.OpenStatus, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("open-status resolution panicked",
				slog.String("companyID", companyID.String()),
				slog.Any("panic", r),
			)
			status = resolution.OpenStatus{IsOpen: false, CurrentStatus: "error checking business hours"}
			err = nil
		}
	}()

	cfg, cfgErr := s.scheduleRepo.FindConfigByCompany(ctx, companyID)
	if cfgErr != nil && !errors.Is(cfgErr, repository.ErrScheduleConfigNotFound) {
		s.logger.Error("failed to load schedule config for open status", slog.Any("error", cfgErr))

		return resolution.OpenStatus{IsOpen: false, CurrentStatus: "error checking business hours"}, nil
	}

	hours, hoursErr := s.scheduleRepo.FindHoursByCompany(ctx, companyID)
	if hoursErr != nil {
		s.logger.Error("failed to load schedule hours for open status", slog.Any("error", hoursErr))

		return resolution.OpenStatus{IsOpen: false, CurrentStatus: "error checking business hours"}, nil
	}

	return resolution.ResolveOpenStatus(cfg, hours, s.clock.Now()), nil
}

func (s *scheduleService) authorize(ctx context.Context, principal entity.Principal, companyID uuid.UUID) error {
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

func (s *scheduleService) findOwnedHour(ctx context.Context, companyID, entryID uuid.UUID) (*entity.ScheduleHourEntry, error) {
	entry, err := s.scheduleRepo.FindHourByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrHourEntryNotFound) {
			return nil, domainerrors.ErrHourEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find hour entry")
	}
	if entry.CompanyID != companyID {
		return nil, domainerrors.ErrHourEntryNotFound
	}

	return entry, nil
}

// checkRegularConflict enforces at most one REGULAR entry per weekday.
// excludeID skips the entry being updated.
func (s *scheduleService) checkRegularConflict(ctx context.Context, companyID uuid.UUID, day entity.Weekday, excludeID uuid.UUID) error {
	hours, err := s.scheduleRepo.FindHoursByCompany(ctx, companyID)
	if err != nil {
		return errors.Wrap(err, "failed to find schedule hours")
	}
	for _, e := range hours {
		if e.ID == excludeID {
			continue
		}
		if e.ScheduleType == entity.ScheduleTypeRegular && e.DayOfWeek == day {
			return domainerrors.ErrDuplicateRegularEntry
		}
	}

	return nil
}

func applyScheduleConfigInput(cfg *entity.ScheduleConfig, input *usecase.ScheduleConfigInput) {
	cfg.IsEnabled = input.IsEnabled
	cfg.Timezone = input.Timezone
	cfg.AllowOnlineScheduling = input.AllowOnlineScheduling
	cfg.SlotDurationMinutes = input.SlotDurationMinutes
	cfg.AdvanceBookingDays = input.AdvanceBookingDays
	cfg.HolidayMessage = input.HolidayMessage
	cfg.ClosedMessage = input.ClosedMessage
	cfg.UpdatedAt = time.Now()
}

func hourFromInput(companyID uuid.UUID, input *usecase.ScheduleHourInput) *entity.ScheduleHourEntry {
	entry := &entity.ScheduleHourEntry{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	applyHourInput(entry, input)

	return entry
}

func applyHourInput(entry *entity.ScheduleHourEntry, input *usecase.ScheduleHourInput) {
	entry.DayOfWeek = input.DayOfWeek
	entry.ScheduleType = input.ScheduleType
	entry.OpenTime = input.OpenTime
	entry.CloseTime = input.CloseTime
	entry.IsClosed = input.IsClosed
	entry.Is24Hours = input.Is24Hours
	entry.BreakStartTime = input.BreakStartTime
	entry.BreakEndTime = input.BreakEndTime
	entry.SpecificDate = input.SpecificDate
	entry.ValidFrom = input.ValidFrom
	entry.ValidUntil = input.ValidUntil
	entry.Priority = input.Priority
	entry.UpdatedAt = time.Now()
}
