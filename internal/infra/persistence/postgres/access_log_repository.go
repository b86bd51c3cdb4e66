package postgres

import (
	"context"

	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultRecentLimit = 50

// accessLogRepository implements the repository.AccessLogRepository interface using GORM.
type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository is the constructor for accessLogRepository.
func NewAccessLogRepository(db *gorm.DB) repository.AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Create appends one access attempt.
func (repo *accessLogRepository) Create(ctx context.Context, attempt *entity.AccessAttempt) error {
	attemptM := fromAccessAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "access attempt references unknown user or device")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create access attempt")
	}

	attempt.ID = attemptM.ID
	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}

// FindRecent retrieves the latest attempts, newest first.
func (repo *accessLogRepository) FindRecent(ctx context.Context, limit int) ([]*entity.AccessAttempt, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var attemptMs []*model.AccessLogModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&attemptMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent access attempts")
	}

	attempts := make([]*entity.AccessAttempt, 0, len(attemptMs))
	for _, attemptM := range attemptMs {
		attempts = append(attempts, toAccessAttemptDomain(attemptM))
	}

	return attempts, nil
}

// --- Mapper Functions ---

// toAccessAttemptDomain converts a GORM AccessLogModel to a domain entity.
func toAccessAttemptDomain(data *model.AccessLogModel) *entity.AccessAttempt {
	if data == nil {
		return nil
	}

	return &entity.AccessAttempt{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		AccessType:      entity.AccessType(data.AccessType),
		AccessMethod:    entity.AccessMethod(data.AccessMethod),
		Success:         data.Success,
		ConfidenceScore: data.ConfidenceScore,
		DenialReason:    data.DenialReason,
		DeviceTimestamp: data.DeviceTimestamp,
		CreatedAt:       data.CreatedAt,
	}
}

// fromAccessAttemptDomain converts a domain entity to a GORM AccessLogModel.
func fromAccessAttemptDomain(data *entity.AccessAttempt) *model.AccessLogModel {
	if data == nil {
		return nil
	}

	return &model.AccessLogModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		AccessType:      string(data.AccessType),
		AccessMethod:    string(data.AccessMethod),
		Success:         data.Success,
		ConfidenceScore: data.ConfidenceScore,
		DenialReason:    data.DenialReason,
		DeviceTimestamp: data.DeviceTimestamp,
	}
}
