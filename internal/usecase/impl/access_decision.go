package impl

import (
	"time"

	"muscleup/internal/domain/entity"
)

// Denial reasons recorded on access attempts. They are stable identifiers
// the front desk UI maps to operator-facing text.
const (
	DenialNotRecognized      = "NotRecognized"
	DenialUserNotFound       = "UserNotFound"
	DenialNoActiveMembership = "NoActiveMembership"
	DenialNoVisitsRemaining  = "NoVisitsRemaining"
)

// evaluateAccess applies the access rules in order against pre-fetched
// state. It is deliberately pure: the pipeline fetches, this decides.
func evaluateAccess(user *entity.User, membership *entity.Membership, day time.Time) (granted bool, reason string) {
	if user == nil {
		return false, DenialUserNotFound
	}

	if membership == nil || membership.Status != entity.MembershipActive || !membership.CoversDate(day) {
		return false, DenialNoActiveMembership
	}

	if membership.RemainingVisits <= 0 {
		return false, DenialNoVisitsRemaining
	}

	return true, ""
}
