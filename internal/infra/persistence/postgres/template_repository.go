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
	"gorm.io/gorm/clause"
)

// templateRepository implements the repository.TemplateRepository interface using GORM.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{db: db}
}

// Create persists a new fingerprint template.
func (repo *templateRepository) Create(ctx context.Context, template *entity.FingerprintTemplate) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTemplate
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "template references unknown user or device")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fingerprint template")
	}

	// Update the entity with the generated ID and timestamps.
	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// FindActiveByUser retrieves all active templates owned by a user.
func (repo *templateRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FingerprintTemplate, error) {
	var templateMs []*model.FingerprintTemplateModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("finger_index ASC").
		Find(&templateMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find templates by user")
	}

	templates := make([]*entity.FingerprintTemplate, 0, len(templateMs))
	for _, templateM := range templateMs {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

// FindByDeviceUser resolves a device-local numeric id back to its template.
func (repo *templateRepository) FindByDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) (*entity.FingerprintTemplate, error) {
	var templateM model.FingerprintTemplateModel
	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND device_user_id = ? AND is_active = ?", deviceID, deviceUserID, true).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by device user")
	}

	return toTemplateDomain(&templateM), nil
}

// NextDeviceUserID atomically assigns the next free device-local numeric id
// for the device. The device row is locked for the duration of the
// transaction so concurrent enrollments against the same device serialize
// here instead of racing on MAX+1.
func (repo *templateRepository) NextDeviceUserID(ctx context.Context, deviceID uuid.UUID) (int, error) {
	var next int
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deviceM model.BiometricDeviceModel
		if err := tx.
			Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id = ?", deviceID).
			First(&deviceM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrDeviceNotFound
			}

			return errors.Wrap(err, "failed to lock device row")
		}

		var maxID int
		if err := tx.
			Model(&model.FingerprintTemplateModel{}).
			Where("device_id = ?", deviceID).
			Select("COALESCE(MAX(device_user_id), 0)").
			Scan(&maxID).Error; err != nil {
			return errors.Wrap(err, "failed to read max device user id")
		}

		next = maxID + 1

		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// DeactivateByDeviceUser revokes the template holding the given device-local
// id and returns the revoked template.
func (repo *templateRepository) DeactivateByDeviceUser(ctx context.Context, deviceID uuid.UUID, deviceUserID int) (*entity.FingerprintTemplate, error) {
	var templateM model.FingerprintTemplateModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("device_id = ? AND device_user_id = ? AND is_active = ?", deviceID, deviceUserID, true).
			First(&templateM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrTemplateNotFound
			}

			return errors.Wrap(err, "failed to find template for deactivation")
		}

		if err := tx.
			Model(&templateM).
			Update("is_active", false).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate template")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTemplateDomain(&templateM), nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM FingerprintTemplateModel to a domain entity.
func toTemplateDomain(data *model.FingerprintTemplateModel) *entity.FingerprintTemplate {
	if data == nil {
		return nil
	}

	return &entity.FingerprintTemplate{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		DeviceUserID: data.DeviceUserID,
		FingerIndex:  data.FingerIndex,
		TemplateData: data.TemplateData,
		QualityScore: data.QualityScore,
		Algorithm:    data.Algorithm,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTemplateDomain converts a domain entity to a GORM FingerprintTemplateModel.
func fromTemplateDomain(data *entity.FingerprintTemplate) *model.FingerprintTemplateModel {
	if data == nil {
		return nil
	}

	return &model.FingerprintTemplateModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		DeviceUserID: data.DeviceUserID,
		FingerIndex:  data.FingerIndex,
		TemplateData: data.TemplateData,
		QualityScore: data.QualityScore,
		Algorithm:    data.Algorithm,
		IsActive:     data.IsActive,
	}
}
