package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// errCritical marks errors that must not be retried
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is lets repeater match critical errors against errCritical
func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // sentinel identity check
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// inTx runs fn in a single transaction, retrying once if SQLite reports a lock
func inTx(ctx context.Context, db *sqlx.DB, op string, fn func(tx *sqlx.Tx) error) error {
	retrier := repeater.NewBackoff(2, 50*time.Millisecond, repeater.WithMaxDelay(time.Second))

	err := retrier.Do(ctx, func() error {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("%s: begin: %w", op, err)}
		}

		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("%s: commit: %w", op, err)}
		}
		return nil
	}, errCritical)

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// affected reports whether a statement changed any rows
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
