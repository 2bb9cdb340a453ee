package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// FindConfigByCompany retrieves the delivery configuration for a company.
func (repo *deliveryRepository) FindConfigByCompany(ctx context.Context, companyID uuid.UUID) (*entity.DeliveryConfig, error) {
	var configM model.DeliveryConfigModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&configM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery config by company")
	}

	return toDeliveryConfigDomain(&configM), nil
}

// CreateConfig persists a new delivery configuration.
func (repo *deliveryRepository) CreateConfig(ctx context.Context, cfg *entity.DeliveryConfig) error {
	configM := fromDeliveryConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeliveryConfig
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery config")
	}

	cfg.CreatedAt = configM.CreatedAt
	cfg.UpdatedAt = configM.UpdatedAt

	return nil
}

// UpdateConfig updates an existing delivery configuration.
func (repo *deliveryRepository) UpdateConfig(ctx context.Context, cfg *entity.DeliveryConfig) error {
	configM := fromDeliveryConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Save(configM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update delivery config")
	}

	cfg.UpdatedAt = configM.UpdatedAt

	return nil
}

// FindZonesByCompany retrieves all zones for a company, highest priority first.
func (repo *deliveryRepository) FindZonesByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.DeliveryZone, error) {
	var zoneMs []model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("priority DESC, created_at ASC").
		Find(&zoneMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find zones by company")
	}

	zones := make([]*entity.DeliveryZone, 0, len(zoneMs))
	for i := range zoneMs {
		zone, err := toDeliveryZoneDomain(&zoneMs[i])
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// FindZoneByID retrieves a zone by its unique ID.
func (repo *deliveryRepository) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryZone, error) {
	var zoneM model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by ID")
	}

	return toDeliveryZoneDomain(&zoneM)
}

// CreateZone persists a new zone for a company.
func (repo *deliveryRepository) CreateZone(ctx context.Context, zone *entity.DeliveryZone) error {
	zoneM, err := fromDeliveryZoneDomain(zone)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create zone")
	}

	zone.CreatedAt = zoneM.CreatedAt
	zone.UpdatedAt = zoneM.UpdatedAt

	return nil
}

// UpdateZone updates an existing zone record.
func (repo *deliveryRepository) UpdateZone(ctx context.Context, zone *entity.DeliveryZone) error {
	zoneM, err := fromDeliveryZoneDomain(zone)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(zoneM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update zone")
	}

	zone.UpdatedAt = zoneM.UpdatedAt

	return nil
}

// DeleteZone removes a zone by its ID.
func (repo *deliveryRepository) DeleteZone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryZoneModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete zone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryZoneNotFound
	}

	return nil
}

// DeleteZonesByCompany removes every zone of a company.
func (repo *deliveryRepository) DeleteZonesByCompany(ctx context.Context, companyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&model.DeliveryZoneModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete zones by company")
	}

	return nil
}

// toDeliveryConfigDomain converts a GORM DeliveryConfigModel to a domain DeliveryConfig entity.
func toDeliveryConfigDomain(data *model.DeliveryConfigModel) *entity.DeliveryConfig {
	if data == nil {
		return nil
	}

	return &entity.DeliveryConfig{
		ID:                   data.ID,
		CompanyID:            data.CompanyID,
		IsEnabled:            data.IsEnabled,
		AvailableTypes:       splitDeliveryTypes(data.AvailableTypes),
		FeeCalculationType:   entity.FeeCalculationType(data.FeeCalculationType),
		BaseFee:              data.BaseFee,
		FeePerKm:             data.FeePerKm,
		FreeDeliveryMinValue: data.FreeDeliveryMinValue,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		PickupTimeMinutes:    data.PickupTimeMinutes,
		MinimumOrderValue:    data.MinimumOrderValue,
		MaximumOrderValue:    data.MaximumOrderValue,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromDeliveryConfigDomain converts a domain DeliveryConfig entity to a GORM DeliveryConfigModel.
func fromDeliveryConfigDomain(data *entity.DeliveryConfig) *model.DeliveryConfigModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryConfigModel{
		ID:                   data.ID,
		CompanyID:            data.CompanyID,
		IsEnabled:            data.IsEnabled,
		AvailableTypes:       joinDeliveryTypes(data.AvailableTypes),
		FeeCalculationType:   string(data.FeeCalculationType),
		BaseFee:              data.BaseFee,
		FeePerKm:             data.FeePerKm,
		FreeDeliveryMinValue: data.FreeDeliveryMinValue,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		PickupTimeMinutes:    data.PickupTimeMinutes,
		MinimumOrderValue:    data.MinimumOrderValue,
		MaximumOrderValue:    data.MaximumOrderValue,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// toDeliveryZoneDomain converts a GORM DeliveryZoneModel to a domain DeliveryZone entity.
func toDeliveryZoneDomain(data *model.DeliveryZoneModel) (*entity.DeliveryZone, error) {
	if data == nil {
		return nil, nil
	}

	var polygon orb.Ring
	if len(data.Polygon) > 0 {
		if err := json.Unmarshal(data.Polygon, &polygon); err != nil {
			return nil, errors.Wrap(err, "failed to decode zone polygon")
		}
	}

	return &entity.DeliveryZone{
		ID:                   data.ID,
		CompanyID:            data.CompanyID,
		Name:                 data.Name,
		ZoneType:             entity.ZoneType(data.ZoneType),
		RadiusKm:             data.RadiusKm,
		Polygon:              polygon,
		Neighborhoods:        data.Neighborhoods,
		PostalCodes:          data.PostalCodes,
		DeliveryFee:          data.DeliveryFee,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		MinimumOrderValue:    data.MinimumOrderValue,
		IsEnabled:            data.IsEnabled,
		Priority:             data.Priority,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// fromDeliveryZoneDomain converts a domain DeliveryZone entity to a GORM DeliveryZoneModel.
func fromDeliveryZoneDomain(data *entity.DeliveryZone) (*model.DeliveryZoneModel, error) {
	if data == nil {
		return nil, nil
	}

	var polygon datatypes.JSON
	if len(data.Polygon) > 0 {
		raw, err := json.Marshal(data.Polygon)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode zone polygon")
		}
		polygon = datatypes.JSON(raw)
	}

	return &model.DeliveryZoneModel{
		ID:                   data.ID,
		CompanyID:            data.CompanyID,
		Name:                 data.Name,
		ZoneType:             string(data.ZoneType),
		RadiusKm:             data.RadiusKm,
		Polygon:              polygon,
		Neighborhoods:        data.Neighborhoods,
		PostalCodes:          data.PostalCodes,
		DeliveryFee:          data.DeliveryFee,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		MinimumOrderValue:    data.MinimumOrderValue,
		IsEnabled:            data.IsEnabled,
		Priority:             data.Priority,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// joinDeliveryTypes flattens the enabled channels into the stored comma list.
func joinDeliveryTypes(types []entity.DeliveryType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}

	return strings.Join(parts, ",")
}

// splitDeliveryTypes parses the stored comma list back into channel values.
func splitDeliveryTypes(s string) []entity.DeliveryType {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	types := make([]entity.DeliveryType, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			types = append(types, entity.DeliveryType(trimmed))
		}
	}

	return types
}
