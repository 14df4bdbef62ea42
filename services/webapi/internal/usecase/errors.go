package usecase

import (
	"errors"

	"blog-api/pkg/apperr"
	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/repo/persistent"
)

// storeError classifies a repository failure. Missing rows become
// missingKind with notFoundMsg, duplicates become Conflict, errors that are
// already classified pass through and the rest are logged as internal.
func storeError(log *logger.Logger, op string, err error, missingKind apperr.Kind, notFoundMsg string) error {
	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case persistent.IsNotFound(err):
		return apperr.New(missingKind, notFoundMsg)
	case persistent.IsDuplicate(err):
		return apperr.Wrap(apperr.KindConflict, "Resource already exists", err)
	default:
		log.Error("%s: %v", op, err)
		return apperr.Internal(op+" failed", err)
	}
}
