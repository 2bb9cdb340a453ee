package postgres

import (
	"context"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// FindConfigByCompany retrieves the schedule configuration for a company.
func (repo *scheduleRepository) FindConfigByCompany(ctx context.Context, companyID uuid.UUID) (*entity.ScheduleConfig, error) {
	var configM model.ScheduleConfigModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&configM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule config by company")
	}

	return toScheduleConfigDomain(&configM), nil
}

// CreateConfig persists a new schedule configuration.
func (repo *scheduleRepository) CreateConfig(ctx context.Context, cfg *entity.ScheduleConfig) error {
	configM := fromScheduleConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateScheduleConfig
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create schedule config")
	}

	cfg.CreatedAt = configM.CreatedAt
	cfg.UpdatedAt = configM.UpdatedAt

	return nil
}

// UpdateConfig updates an existing schedule configuration.
func (repo *scheduleRepository) UpdateConfig(ctx context.Context, cfg *entity.ScheduleConfig) error {
	configM := fromScheduleConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Save(configM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update schedule config")
	}

	cfg.UpdatedAt = configM.UpdatedAt

	return nil
}

// FindHoursByCompany retrieves all hour entries for a company.
func (repo *scheduleRepository) FindHoursByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.ScheduleHourEntry, error) {
	var hourMs []model.ScheduleHourModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("day_of_week ASC, priority DESC").
		Find(&hourMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find hours by company")
	}

	hours := make([]*entity.ScheduleHourEntry, 0, len(hourMs))
	for i := range hourMs {
		hours = append(hours, toScheduleHourDomain(&hourMs[i]))
	}

	return hours, nil
}

// FindHourByID retrieves an hour entry by its unique ID.
func (repo *scheduleRepository) FindHourByID(ctx context.Context, id uuid.UUID) (*entity.ScheduleHourEntry, error) {
	var hourM model.ScheduleHourModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hourM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHourEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find hour entry by ID")
	}

	return toScheduleHourDomain(&hourM), nil
}

// CreateHour persists a new hour entry for a company.
func (repo *scheduleRepository) CreateHour(ctx context.Context, entry *entity.ScheduleHourEntry) error {
	hourM := fromScheduleHourDomain(entry)

	if err := repo.db.WithContext(ctx).Create(hourM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hour entry")
	}

	entry.CreatedAt = hourM.CreatedAt
	entry.UpdatedAt = hourM.UpdatedAt

	return nil
}

// UpdateHour updates an existing hour entry.
func (repo *scheduleRepository) UpdateHour(ctx context.Context, entry *entity.ScheduleHourEntry) error {
	hourM := fromScheduleHourDomain(entry)

	if err := repo.db.WithContext(ctx).Save(hourM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update hour entry")
	}

	entry.UpdatedAt = hourM.UpdatedAt

	return nil
}

// DeleteHour removes an hour entry by its ID.
func (repo *scheduleRepository) DeleteHour(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScheduleHourModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete hour entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHourEntryNotFound
	}

	return nil
}

// DeleteHoursByCompany removes every hour entry of a company.
func (repo *scheduleRepository) DeleteHoursByCompany(ctx context.Context, companyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&model.ScheduleHourModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete hours by company")
	}

	return nil
}

// toScheduleConfigDomain converts a GORM ScheduleConfigModel to a domain ScheduleConfig entity.
func toScheduleConfigDomain(data *model.ScheduleConfigModel) *entity.ScheduleConfig {
	if data == nil {
		return nil
	}

	return &entity.ScheduleConfig{
		ID:                    data.ID,
		CompanyID:             data.CompanyID,
		IsEnabled:             data.IsEnabled,
		Timezone:              data.Timezone,
		AllowOnlineScheduling: data.AllowOnlineScheduling,
		SlotDurationMinutes:   data.SlotDurationMinutes,
		AdvanceBookingDays:    data.AdvanceBookingDays,
		HolidayMessage:        data.HolidayMessage,
		ClosedMessage:         data.ClosedMessage,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromScheduleConfigDomain converts a domain ScheduleConfig entity to a GORM ScheduleConfigModel.
func fromScheduleConfigDomain(data *entity.ScheduleConfig) *model.ScheduleConfigModel {
	if data == nil {
		return nil
	}

	return &model.ScheduleConfigModel{
		ID:                    data.ID,
		CompanyID:             data.CompanyID,
		IsEnabled:             data.IsEnabled,
		Timezone:              data.Timezone,
		AllowOnlineScheduling: data.AllowOnlineScheduling,
		SlotDurationMinutes:   data.SlotDurationMinutes,
		AdvanceBookingDays:    data.AdvanceBookingDays,
		HolidayMessage:        data.HolidayMessage,
		ClosedMessage:         data.ClosedMessage,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// toScheduleHourDomain converts a GORM ScheduleHourModel to a domain ScheduleHourEntry entity.
func toScheduleHourDomain(data *model.ScheduleHourModel) *entity.ScheduleHourEntry {
	if data == nil {
		return nil
	}

	return &entity.ScheduleHourEntry{
		ID:             data.ID,
		CompanyID:      data.CompanyID,
		DayOfWeek:      entity.Weekday(data.DayOfWeek),
		ScheduleType:   entity.ScheduleType(data.ScheduleType),
		OpenTime:       data.OpenTime,
		CloseTime:      data.CloseTime,
		IsClosed:       data.IsClosed,
		Is24Hours:      data.Is24Hours,
		BreakStartTime: data.BreakStartTime,
		BreakEndTime:   data.BreakEndTime,
		SpecificDate:   data.SpecificDate,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		Priority:       data.Priority,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromScheduleHourDomain converts a domain ScheduleHourEntry entity to a GORM ScheduleHourModel.
func fromScheduleHourDomain(data *entity.ScheduleHourEntry) *model.ScheduleHourModel {
	if data == nil {
		return nil
	}

	return &model.ScheduleHourModel{
		ID:             data.ID,
		CompanyID:      data.CompanyID,
		DayOfWeek:      string(data.DayOfWeek),
		ScheduleType:   string(data.ScheduleType),
		OpenTime:       data.OpenTime,
		CloseTime:      data.CloseTime,
		IsClosed:       data.IsClosed,
		Is24Hours:      data.Is24Hours,
		BreakStartTime: data.BreakStartTime,
		BreakEndTime:   data.BreakEndTime,
		SpecificDate:   data.SpecificDate,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		Priority:       data.Priority,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
