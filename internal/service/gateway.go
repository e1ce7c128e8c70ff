package service

import (
	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

// authorize is the single role gate used by every mutation gateway. The
// pipeline is strict: no principal means 401, a principal outside the allowed
// set means 403, and nothing past this point runs on failure.
func authorize(actor *models.JWTClaims, allowed ...models.Role) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	for _, role := range allowed {
		if actor.Role == role {
			return nil
		}
	}
	return appErrors.ErrForbidden
}
