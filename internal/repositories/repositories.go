// Package repositories contains the data access layer. Every Postgres
// implementation translates storage errors into apperror kinds so callers
// never branch on gorm or driver errors. Uniqueness and foreign-key
// violations surface as typed gorm errors because the database connection
// is opened with TranslateError enabled (see pkg/config).
package repositories

import (
	"errors"

	"github.com/dietsocial/backend/internal/apperror"
	"gorm.io/gorm"
)

// translate maps a gorm error onto the shared error taxonomy. The resource
// name feeds the NotFound/Conflict messages.
func translate(err error, resource, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Conflict(resource + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.Conflict(resource + " violates a relationship constraint")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperror.ValidationFailed(resource, resource+" violates a check constraint")
	default:
		return apperror.Internal(err)
	}
}
