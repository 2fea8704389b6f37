// Package dberr maps gorm errors onto the errs family so storage failures
// keep their meaning when they reach the core.
package dberr

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate converts err raised while working on resource id. The gorm
// connection must be opened with TranslateError so driver specific
// constraint errors arrive as gorm sentinels.
func Translate(err error, resource string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(resource, id, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v", resource, id), "already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v", resource, id), "is still referenced", err)
	default:
		return err
	}
}
