package impl

import (
	"context"
	"log/slog"

	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/domain/service"
	"muscleup/internal/errors"
	"muscleup/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	logger *slog.Logger

	gateway      service.DeviceGateway
	deviceRepo   repository.DeviceRepository
	templateRepo repository.TemplateRepository
	userRepo     repository.UserRepository
}

// NewDeviceService creates a new device service instance and subscribes it
// to status events so live state changes are persisted as snapshots.
func NewDeviceService(
	logger *slog.Logger,
	gateway service.DeviceGateway,
	deviceRepo repository.DeviceRepository,
	templateRepo repository.TemplateRepository,
	userRepo repository.UserRepository,
) usecase.DeviceUsecase {
	svc := &deviceService{
		logger:       logger,
		gateway:      gateway,
		deviceRepo:   deviceRepo,
		templateRepo: templateRepo,
		userRepo:     userRepo,
	}

	gateway.OnStatusChanged(func(event service.StatusChanged) {
		snapshot := event.Device
		if err := deviceRepo.UpdateSnapshot(context.Background(), &snapshot); err != nil {
			logger.Warn("failed to persist device snapshot",
				slog.String("device", snapshot.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	})

	return svc
}

// RegisterDevice persists a new reader.
func (s *deviceService) RegisterDevice(ctx context.Context, params usecase.RegisterDeviceParams) (*entity.Device, error) {
	device := &entity.Device{
		Name:     params.Name,
		IP:       params.IP,
		Port:     params.Port,
		WSPort:   params.WSPort,
		Status:   entity.DeviceDisconnected,
		IsActive: true,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WrapMessage("device already registered")
		}

		return nil, err
	}

	s.logger.Info("device registered",
		slog.String("device", device.ID.String()),
		slog.String("name", device.Name),
	)

	return device, nil
}

// ListDevices returns every registered reader, preferring live in-memory
// state over the stored snapshot.
func (s *deviceService) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, device := range devices {
		if live, ok := s.gateway.Status(device.ID); ok {
			devices[i] = s.merge(device, live)
		}
	}

	return devices, nil
}

// GetStatus returns one reader with its live status merged in.
func (s *deviceService) GetStatus(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if live, ok := s.gateway.Status(deviceID); ok {
		device = s.merge(device, live)
	}

	return device, nil
}

// ConnectDevice opens the bridge connection and runs the handshake.
func (s *deviceService) ConnectDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	connected, err := s.gateway.Connect(ctx, device)
	if err != nil {
		return nil, domainerrors.ErrDeviceUnavailable.WrapMessage(err.Error())
	}

	return connected, nil
}

// DisconnectDevice closes the bridge connection until the next connect.
func (s *deviceService) DisconnectDevice(ctx context.Context, deviceID uuid.UUID) error {
	if _, err := s.findDevice(ctx, deviceID); err != nil {
		return err
	}

	return s.gateway.Disconnect(ctx, deviceID)
}

// RestartDevice reboots the reader.
func (s *deviceService) RestartDevice(ctx context.Context, deviceID uuid.UUID) error {
	if _, err := s.findDevice(ctx, deviceID); err != nil {
		return err
	}

	if err := s.gateway.Restart(ctx, deviceID); err != nil {
		return s.commandError(err)
	}

	return nil
}

// ListDeviceUsers lists the identities stored on the reader itself.
func (s *deviceService) ListDeviceUsers(ctx context.Context, deviceID uuid.UUID) ([]service.DeviceUser, error) {
	if _, err := s.findDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	users, err := s.gateway.DeviceUsers(ctx, deviceID)
	if err != nil {
		return nil, s.commandError(err)
	}

	return users, nil
}

// DeleteDeviceUser removes an identity from the reader, revokes the stored
// template and clears the owner's enrolled flag.
func (s *deviceService) DeleteDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) error {
	if _, err := s.findDevice(ctx, deviceID); err != nil {
		return err
	}

	if err := s.gateway.DeleteDeviceUser(ctx, deviceID, deviceUserID); err != nil {
		return s.commandError(err)
	}

	template, err := s.templateRepo.DeactivateByDeviceUser(ctx, deviceID, deviceUserID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			// The device held an identity we never stored. Nothing to revoke.
			return nil
		}

		return err
	}

	remaining, err := s.templateRepo.FindActiveByUser(ctx, template.UserID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := s.userRepo.SetFingerprint(ctx, template.UserID, false); err != nil {
			s.logger.Warn("failed to clear user enrolled flag",
				slog.String("user", template.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *deviceService) findDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, err
	}

	return device, nil
}

// merge lays live in-memory state over a stored row, keeping the row's
// registration fields.
func (s *deviceService) merge(stored *entity.Device, live *entity.Device) *entity.Device {
	merged := *stored
	merged.Status = live.Status
	merged.LastHeartbeat = live.LastHeartbeat
	if live.Firmware != "" {
		merged.Firmware = live.Firmware
	}
	if live.SerialNumber != "" {
		merged.SerialNumber = live.SerialNumber
	}
	merged.UserCount = live.UserCount
	merged.FingerprintCount = live.FingerprintCount

	return &merged
}

func (s *deviceService) commandError(err error) error {
	return domainerrors.ErrDeviceCommandFailed.WrapMessage(err.Error())
}
