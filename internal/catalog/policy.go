package catalog

import "github.com/kwalters/stay-catalog/internal/auth"

// action names a mutating operation for the policy table.
type action int

const (
	actionCreateUser action = iota
	actionUpdateUser
	actionCreateAmenity
	actionUpdateAmenity
	actionCreatePlace
	actionUpdatePlace
	actionCreateReview
	actionUpdateReview
	actionDeleteReview
)

// relation says who may perform an action relative to a resource owner.
type relation int

const (
	relationAny relation = iota
	relationAdmin
	relationOwner
	relationOwnerOrAdmin
)

// policy is the single source of truth for write authorization. Reads are
// unrestricted. UpdateReview is deliberately owner-only: admins may delete a
// review but never edit its content.
var policy = map[action]relation{
	actionCreateUser:    relationAdmin,
	actionUpdateUser:    relationOwnerOrAdmin,
	actionCreateAmenity: relationAdmin,
	actionUpdateAmenity: relationAdmin,
	actionCreatePlace:   relationAny,
	actionUpdatePlace:   relationOwnerOrAdmin,
	actionCreateReview:  relationAny,
	actionUpdateReview:  relationOwner,
	actionDeleteReview:  relationOwnerOrAdmin,
}

// allowed evaluates the policy for a caller against the resource owner.
// ownerID is ignored for relations that do not involve ownership.
func allowed(claims auth.Claims, act action, ownerID string) bool {
	switch policy[act] {
	case relationAny:
		return true
	case relationAdmin:
		return claims.IsAdmin
	case relationOwner:
		return claims.UserID == ownerID
	case relationOwnerOrAdmin:
		return claims.IsAdmin || claims.UserID == ownerID
	default:
		return false
	}
}
