package stor

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// translateError maps storage errors onto the error taxonomy. The sqlite driver doesn't
// translate constraint failures in every version, so its messages are matched too.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}

	var rerr *rierr.Error
	if errors.As(err, &rerr) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return rierr.NotFoundf("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(msg, "UNIQUE constraint failed"):
		return rierr.Wrap(err, rierr.CodeAlreadyExists, what+" already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return rierr.Wrap(err, rierr.CodeInvalidArgument, what+" references a record that does not exist")
	default:
		return err
	}
}

// translateDeleteError reports a foreign key failure on delete as a conflict: the row is
// still referenced.
func translateDeleteError(err error, what string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return rierr.Conflictf("%s is still in use and cannot be deleted", what)
	}

	return translateError(err, what)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		(err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed"))
}
