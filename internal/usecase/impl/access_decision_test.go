package impl

import (
	"testing"
	"time"

	"muscleup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func activeMembershipFor(userID uuid.UUID, day time.Time, visits int) *entity.Membership {
	return &entity.Membership{
		ID:              uuid.New(),
		UserID:          userID,
		StartDate:       day.AddDate(0, -1, 0),
		EndDate:         day.AddDate(0, 1, 0),
		Status:          entity.MembershipActive,
		RemainingVisits: visits,
	}
}

func TestEvaluateAccess_Granted(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	user := &entity.User{ID: uuid.New()}

	granted, reason := evaluateAccess(user, activeMembershipFor(user.ID, day, 5), day)
	assert.True(t, granted)
	assert.Empty(t, reason)
}

func TestEvaluateAccess_NilUser(t *testing.T) {
	day := time.Now()

	granted, reason := evaluateAccess(nil, activeMembershipFor(uuid.New(), day, 5), day)
	assert.False(t, granted)
	assert.Equal(t, DenialUserNotFound, reason)
}

func TestEvaluateAccess_NoMembership(t *testing.T) {
	granted, reason := evaluateAccess(&entity.User{ID: uuid.New()}, nil, time.Now())
	assert.False(t, granted)
	assert.Equal(t, DenialNoActiveMembership, reason)
}

func TestEvaluateAccess_SuspendedMembership(t *testing.T) {
	day := time.Now()
	user := &entity.User{ID: uuid.New()}
	membership := activeMembershipFor(user.ID, day, 5)
	membership.Status = entity.MembershipSuspended

	granted, reason := evaluateAccess(user, membership, day)
	assert.False(t, granted)
	assert.Equal(t, DenialNoActiveMembership, reason)
}

func TestEvaluateAccess_ExpiredDateRange(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	user := &entity.User{ID: uuid.New()}

	// Status still says active but the window ended last week.
	membership := activeMembershipFor(user.ID, day, 5)
	membership.EndDate = day.AddDate(0, 0, -7)

	granted, reason := evaluateAccess(user, membership, day)
	assert.False(t, granted)
	assert.Equal(t, DenialNoActiveMembership, reason)
}

func TestEvaluateAccess_LastValidDayStillCovered(t *testing.T) {
	day := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	user := &entity.User{ID: uuid.New()}

	membership := activeMembershipFor(user.ID, day, 1)
	membership.EndDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	granted, reason := evaluateAccess(user, membership, day)
	assert.True(t, granted)
	assert.Empty(t, reason)
}

func TestEvaluateAccess_NoVisitsRemaining(t *testing.T) {
	day := time.Now()
	user := &entity.User{ID: uuid.New()}

	granted, reason := evaluateAccess(user, activeMembershipFor(user.ID, day, 0), day)
	assert.False(t, granted)
	assert.Equal(t, DenialNoVisitsRemaining, reason)
}

func TestEvaluateAccess_MembershipRulesBeforeVisitRules(t *testing.T) {
	day := time.Now()
	user := &entity.User{ID: uuid.New()}

	// Both rules would deny; the membership rule wins because it runs first.
	membership := activeMembershipFor(user.ID, day, 0)
	membership.Status = entity.MembershipExpired

	granted, reason := evaluateAccess(user, membership, day)
	assert.False(t, granted)
	assert.Equal(t, DenialNoActiveMembership, reason)
}
