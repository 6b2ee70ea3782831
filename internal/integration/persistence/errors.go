// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// translateError classifies a gorm or driver failure into the store error taxonomy.
// A nil error stays nil.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	return domainerror.NewStoreError(classify(err), op, err)
}

func classify(err error) domainerror.StoreErrorKind {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerror.StoreErrorNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerror.StoreErrorConstraintViolation
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return domainerror.StoreErrorConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return domainerror.StoreErrorConstraintViolation
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return domainerror.StoreErrorConnection
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return domainerror.StoreErrorConflict
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return domainerror.StoreErrorConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domainerror.StoreErrorConnection
	}

	// SQLite reports constraint failures only through the message text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "constraint failed") {
		return domainerror.StoreErrorConstraintViolation
	}
	if strings.Contains(msg, "database is closed") || strings.Contains(msg, "connection refused") {
		return domainerror.StoreErrorConnection
	}

	return domainerror.StoreErrorUnknown
}
