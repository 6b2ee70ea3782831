package project

import (
	"errors"
	"fmt"

	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

func validateStatus(status entity.ProjectStatus) error {
	if !status.IsValid() {
		return domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectStatus,
			"status must be 'under_construction' or 'completed'",
			domainerror.ErrInvalidProjectStatus,
		)
	}
	return nil
}

func validateUnitCount(counts ...int) error {
	for _, c := range counts {
		if c < 0 {
			return domainerror.NewProjectError(
				domainerror.ErrCodeInvalidUnitCount,
				"unit counts cannot be negative",
				domainerror.ErrInvalidUnitCount,
			)
		}
	}
	return nil
}

// notFoundOr maps a store not-found failure to the project not-found error and
// wraps anything else with the failed action.
func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
