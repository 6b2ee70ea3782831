package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estate-ledger/backend/internal/application/state"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

func systemNow() time.Time {
	return time.Now().UTC()
}

// loadPortfolio loads a fresh snapshot and reports failures as a ReportError
// that still unwraps to the underlying store error.
func loadPortfolio(ctx context.Context, loader *state.Loader) (*state.Portfolio, error) {
	portfolio, err := loader.Load(ctx)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodePortfolioLoadFailed,
			"failed to load portfolio",
			err,
		)
	}
	return portfolio, nil
}

func projectNotFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return projectNotFound()
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func projectNotFound() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportProjectNotFound,
		"project not found",
		domainerror.ErrReportProjectNotFound,
	)
}
