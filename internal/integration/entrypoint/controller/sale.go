package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/usecase/sale"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase           *sale.ListSalesUseCase
	createUseCase         *sale.CreateSaleUseCase
	getUseCase            *sale.GetSaleUseCase
	updateUseCase         *sale.UpdateSaleUseCase
	deleteUseCase         *sale.DeleteSaleUseCase
	setPaymentPaidUseCase *sale.SetPaymentPaidUseCase
	now                   func() time.Time
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	createUseCase *sale.CreateSaleUseCase,
	getUseCase *sale.GetSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
	setPaymentPaidUseCase *sale.SetPaymentPaidUseCase,
) *SaleController {
	return &SaleController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		setPaymentPaidUseCase: setPaymentPaidUseCase,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used to flag overdue payments in responses.
func (c *SaleController) WithClock(now func() time.Time) *SaleController {
	c.now = now
	return c
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	c.list(ctx, sale.ListSalesInput{})
}

// ListByProject handles GET /projects/:id/sales requests.
func (c *SaleController) ListByProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}
	c.list(ctx, sale.ListSalesInput{ProjectID: &projectID})
}

func (c *SaleController) list(ctx *gin.Context, input sale.ListSalesInput) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales, c.now()))
}

// Create handles POST /sales requests.
// The payment schedule is generated from the payment terms.
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	saleDate, err := dto.ParseDate(req.SaleDate)
	if err != nil {
		badRequest(ctx, err.Error(), string(domainerror.ErrCodeInvalidSaleDate))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		ProjectID:         uuid.MustParse(req.ProjectID),
		UnitType:          entity.UnitType(req.UnitType),
		UnitNumber:        req.UnitNumber,
		SaleDate:          saleDate,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		TotalPrice:        req.TotalPrice,
		PaymentType:       entity.PaymentType(req.PaymentType),
		DownPayment:       req.DownPayment,
		InstallmentsCount: req.InstallmentsCount,
		Notes:             req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale, c.now()))
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	saleID, ok := parseIDParam(ctx, "id", "sale")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{
		SaleID: saleID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale, c.now()))
}

// Update handles PATCH /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	saleID, ok := parseIDParam(ctx, "id", "sale")
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	saleDate, err := dto.ParseOptionalDate(req.SaleDate)
	if err != nil {
		badRequest(ctx, err.Error(), string(domainerror.ErrCodeInvalidSaleDate))
		return
	}

	input := sale.UpdateSaleInput{
		SaleID:        saleID,
		UnitNumber:    req.UnitNumber,
		SaleDate:      saleDate,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalPrice:    req.TotalPrice,
		Notes:         req.Notes,
	}
	if req.UnitType != nil {
		unitType := entity.UnitType(*req.UnitType)
		input.UnitType = &unitType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale, c.now()))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	saleID, ok := parseIDParam(ctx, "id", "sale")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{
		SaleID: saleID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetPaymentPaid handles PUT /sales/:id/payments/:index/paid requests.
func (c *SaleController) SetPaymentPaid(ctx *gin.Context) {
	saleID, ok := parseIDParam(ctx, "id", "sale")
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		badRequest(ctx, "Invalid payment index", string(domainerror.ErrCodePaymentIndexOutOfRange))
		return
	}

	var req dto.SetPaymentPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	output, err := c.setPaymentPaidUseCase.Execute(ctx.Request.Context(), sale.SetPaymentPaidInput{
		SaleID: saleID,
		Index:  index,
		Paid:   *req.Paid,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale, c.now()))
}
