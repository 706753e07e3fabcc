package postgres

import (
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"

	"gorm.io/gorm"
)

// translateWriteError maps constraint violations reported by the driver to the
// domain's conflict errors. Any other failure is wrapped with msg and kept as is.
func translateWriteError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.WithStack(domainerrors.ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.WithStack(domainerrors.ErrInvalidRelation)
	default:
		return errors.Wrap(err, msg)
	}
}
