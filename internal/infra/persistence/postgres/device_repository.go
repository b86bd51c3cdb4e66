package postgres

import (
	"context"

	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Create registers a new device.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves an active device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.BiometricDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// List retrieves all active devices.
func (repo *deviceRepository) List(ctx context.Context) ([]*entity.Device, error) {
	var deviceMs []*model.BiometricDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&deviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceMs))
	for _, deviceM := range deviceMs {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateSnapshot persists the device's live state as a side effect of a
// status change. Absent columns keep their stored values.
func (repo *deviceRepository) UpdateSnapshot(ctx context.Context, device *entity.Device) error {
	updates := map[string]any{
		"status":            string(device.Status),
		"last_heartbeat":    device.LastHeartbeat,
		"firmware_version":  device.Firmware,
		"serial_number":     device.SerialNumber,
		"user_count":        device.UserCount,
		"fingerprint_count": device.FingerprintCount,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BiometricDeviceModel{}).
		Where("id = ?", device.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device snapshot")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// IncrementCounters bumps the enrolled-user and template counters after a
// successful enrollment.
func (repo *deviceRepository) IncrementCounters(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BiometricDeviceModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"user_count":        gorm.Expr("user_count + 1"),
			"fingerprint_count": gorm.Expr("fingerprint_count + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment device counters")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM BiometricDeviceModel to a domain Device entity.
func toDeviceDomain(data *model.BiometricDeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:               data.ID,
		Name:             data.Name,
		IP:               data.IPAddress,
		Port:             data.Port,
		WSPort:           data.WSPort,
		Status:           entity.DeviceStatus(data.Status),
		LastHeartbeat:    data.LastHeartbeat,
		Firmware:         data.FirmwareVersion,
		SerialNumber:     data.SerialNumber,
		UserCount:        data.UserCount,
		FingerprintCount: data.FingerprintCount,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM BiometricDeviceModel.
func fromDeviceDomain(data *entity.Device) *model.BiometricDeviceModel {
	if data == nil {
		return nil
	}

	return &model.BiometricDeviceModel{
		ID:               data.ID,
		Name:             data.Name,
		IPAddress:        data.IP,
		Port:             data.Port,
		WSPort:           data.WSPort,
		Status:           string(data.Status),
		LastHeartbeat:    data.LastHeartbeat,
		FirmwareVersion:  data.Firmware,
		SerialNumber:     data.SerialNumber,
		UserCount:        data.UserCount,
		FingerprintCount: data.FingerprintCount,
		IsActive:         data.IsActive,
	}
}
