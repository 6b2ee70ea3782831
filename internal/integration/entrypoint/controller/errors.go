package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/dto"
)

// parseIDParam parses a UUID path parameter, writing a 400 response on failure.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest writes a 400 response for a malformed request.
func badRequest(ctx *gin.Context, message string, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleError maps a use case error to an HTTP status and error body.
func handleError(ctx *gin.Context, err error) {
	var projectErr *domainerror.ProjectError
	if errors.As(err, &projectErr) {
		ctx.JSON(projectErrorStatus(projectErr.Code), dto.ErrorResponse{
			Error: projectErr.Message,
			Code:  string(projectErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(expenseErrorStatus(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(saleErrorStatus(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := reportErrorStatus(reportErr.Code, err)
		if status >= http.StatusInternalServerError {
			slog.Error("Report request failed", "code", reportErr.Code, "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	handleStoreError(ctx, err)
}

// handleStoreError maps failures that carry no domain code.
func handleStoreError(ctx *gin.Context, err error) {
	switch domainerror.KindOf(err) {
	case domainerror.StoreErrorNotFound:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
	case domainerror.StoreErrorConnection:
		slog.Error("Store unavailable", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Store is unavailable, please retry",
			Code:  string(domainerror.ErrCodeStoreUnavailable),
		})
	case domainerror.StoreErrorConstraintViolation:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "The change conflicts with existing records",
			Code:  string(domainerror.ErrCodeConstraintViolation),
		})
	case domainerror.StoreErrorConflict:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "The record was modified concurrently, please retry",
			Code:  string(domainerror.ErrCodeConcurrentUpdate),
		})
	default:
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  string(domainerror.ErrCodeInternal),
		})
	}
}

func projectErrorStatus(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func expenseErrorStatus(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound, domainerror.ErrCodeExpenseProjectNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func saleErrorStatus(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound, domainerror.ErrCodeSaleProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnitTypeNotOffered, domainerror.ErrCodePaymentIndexOutOfRange:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeConcurrentPaymentUpdate:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func reportErrorStatus(code domainerror.ReportErrorCode, err error) int {
	switch code {
	case domainerror.ErrCodeReportProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePortfolioLoadFailed:
		if errors.Is(err, domainerror.ErrStoreUnavailable) {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	case domainerror.ErrCodeNotificationsDisabled:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeNotificationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
