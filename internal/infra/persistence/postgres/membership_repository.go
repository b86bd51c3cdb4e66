package postgres

import (
	"context"
	"time"

	"muscleup/internal/domain/entity"
	domainerrors "muscleup/internal/domain/errors"
	"muscleup/internal/domain/repository"
	"muscleup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// membershipRepository implements the repository.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// FindActiveByUser retrieves the user's active membership whose date range
// contains the given day. When several overlap, the one expiring last wins.
func (repo *membershipRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Membership, error) {
	var membershipM model.MembershipModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			userID, string(entity.MembershipActive), day, day).
		Order("end_date DESC").
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find active membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// DecrementVisits atomically consumes one visit credit. The guard in the
// WHERE clause keeps the counter from going negative under concurrent scans.
func (repo *membershipRepository) DecrementVisits(ctx context.Context, membershipID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ? AND remaining_visits > 0", membershipID).
		UpdateColumn("remaining_visits", gorm.Expr("remaining_visits - 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement visits")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoVisitsRemaining
	}

	return nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:              data.ID,
		UserID:          data.UserID,
		PlanID:          data.PlanID,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		Status:          entity.MembershipStatus(data.Status),
		RemainingVisits: data.RemainingVisits,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
