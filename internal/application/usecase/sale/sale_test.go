package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estate-ledger/backend/internal/application/adapter/mock"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/domain/valueobject"
)

var saleDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func notFound() error {
	return domainerror.NewStoreError(domainerror.StoreErrorNotFound, "find_by_id", errors.New("record not found"))
}

func requireSaleCode(t *testing.T, err error, code domainerror.SaleErrorCode) {
	t.Helper()
	var saleErr *domainerror.SaleError
	require.True(t, errors.As(err, &saleErr), "expected SaleError, got %v", err)
	assert.Equal(t, code, saleErr.Code)
}

func apartmentsOnly(id uuid.UUID) *entity.Project {
	return &entity.Project{ID: id, Name: "Tower", ApartmentsCount: 20}
}

func validInput(projectID uuid.UUID) CreateSaleInput {
	return CreateSaleInput{
		ProjectID:         projectID,
		UnitType:          entity.UnitTypeApartment,
		UnitNumber:        "7",
		SaleDate:          saleDate,
		CustomerName:      "Karim",
		TotalPrice:        decimal.NewFromInt(300000),
		PaymentType:       entity.PaymentTypeInstallment,
		DownPayment:       decimal.NewFromInt(50000),
		InstallmentsCount: 4,
	}
}

func TestCreateSaleUseCase_GeneratesSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mock.NewMockSaleRepository(ctrl)
	projectRepo := mock.NewMockProjectRepository(ctrl)
	projectID := uuid.New()

	projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(apartmentsOnly(projectID), nil)
	saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	output, err := NewCreateSaleUseCase(saleRepo, projectRepo).Execute(context.Background(), validInput(projectID))
	require.NoError(t, err)

	payments := output.Sale.Payments
	require.Len(t, payments, 5)
	assert.Equal(t, entity.PaymentLabelDownPayment, payments[0].Type)
	assert.True(t, payments[0].Paid)

	expectedDue := []time.Time{
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, due := range expectedDue {
		p := payments[i+1]
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(62500)), "installment %d amount %s", i+1, p.Amount)
		assert.True(t, p.DueDate.Equal(due), "installment %d due %v", i+1, p.DueDate)
		assert.False(t, p.Paid)
		assert.Equal(t, entity.InstallmentLabel(i+1), p.Type)
	}
}

func TestCreateSaleUseCase_CashClearsInstallmentTerms(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mock.NewMockSaleRepository(ctrl)
	projectRepo := mock.NewMockProjectRepository(ctrl)
	projectID := uuid.New()

	projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(apartmentsOnly(projectID), nil)
	saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	input := validInput(projectID)
	input.PaymentType = entity.PaymentTypeCash

	output, err := NewCreateSaleUseCase(saleRepo, projectRepo).Execute(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, output.Sale.DownPayment.IsZero())
	assert.Equal(t, 0, output.Sale.InstallmentsCount)
	require.Len(t, output.Sale.Payments, 1)
	assert.True(t, output.Sale.Payments[0].Paid)
	assert.True(t, output.Sale.Payments[0].Amount.Equal(decimal.NewFromInt(300000)))
}

func TestCreateSaleUseCase_Rejections(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name          string
		mutate        func(*CreateSaleInput)
		projectLookup bool
		project       *entity.Project
		lookupErr     error
		expectedCode  domainerror.SaleErrorCode
	}{
		{
			name:         "blank customer",
			mutate:       func(in *CreateSaleInput) { in.CustomerName = " " },
			expectedCode: domainerror.ErrCodeCustomerNameRequired,
		},
		{
			name:         "unknown payment type",
			mutate:       func(in *CreateSaleInput) { in.PaymentType = "barter" },
			expectedCode: domainerror.ErrCodeInvalidPaymentType,
		},
		{
			name:         "zero price",
			mutate:       func(in *CreateSaleInput) { in.TotalPrice = decimal.Zero },
			expectedCode: domainerror.ErrCodeInvalidTotalPrice,
		},
		{
			name:         "price below a cent",
			mutate:       func(in *CreateSaleInput) { in.TotalPrice = decimal.RequireFromString("100.005") },
			expectedCode: domainerror.ErrCodeInvalidTotalPrice,
		},
		{
			name:         "missing date",
			mutate:       func(in *CreateSaleInput) { in.SaleDate = time.Time{} },
			expectedCode: domainerror.ErrCodeInvalidSaleDate,
		},
		{
			name:          "missing project",
			mutate:        func(*CreateSaleInput) {},
			projectLookup: true,
			lookupErr:     notFound(),
			expectedCode:  domainerror.ErrCodeSaleProjectNotFound,
		},
		{
			name:          "unknown unit type",
			mutate:        func(in *CreateSaleInput) { in.UnitType = "villa" },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeInvalidUnitType,
		},
		{
			name:          "unit type not offered",
			mutate:        func(in *CreateSaleInput) { in.UnitType = entity.UnitTypeShop },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeUnitTypeNotOffered,
		},
		{
			name:          "down payment above price",
			mutate:        func(in *CreateSaleInput) { in.DownPayment = decimal.NewFromInt(400000) },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeInvalidDownPayment,
		},
		{
			name:          "down payment below a cent",
			mutate:        func(in *CreateSaleInput) { in.DownPayment = decimal.RequireFromString("50000.001") },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeInvalidDownPayment,
		},
		{
			name:          "too many installments",
			mutate:        func(in *CreateSaleInput) { in.InstallmentsCount = valueobject.MaxInstallments + 1 },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeInvalidInstallmentsCount,
		},
		{
			name:          "no installments with remaining amount",
			mutate:        func(in *CreateSaleInput) { in.InstallmentsCount = 0 },
			projectLookup: true,
			project:       apartmentsOnly(projectID),
			expectedCode:  domainerror.ErrCodeInvalidInstallmentsCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			saleRepo := mock.NewMockSaleRepository(ctrl)
			projectRepo := mock.NewMockProjectRepository(ctrl)
			if tt.projectLookup {
				projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(tt.project, tt.lookupErr)
			}

			input := validInput(projectID)
			tt.mutate(&input)

			output, err := NewCreateSaleUseCase(saleRepo, projectRepo).Execute(context.Background(), input)

			assert.Nil(t, output)
			requireSaleCode(t, err, tt.expectedCode)
		})
	}
}

func TestListSalesUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mock.NewMockSaleRepository(ctrl)
	projectRepo := mock.NewMockProjectRepository(ctrl)
	projectID := uuid.New()
	all := []*entity.Sale{{ID: uuid.New()}, {ID: uuid.New()}}
	scoped := all[:1]

	saleRepo.EXPECT().FindAll(gomock.Any()).Return(all, nil)
	projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(apartmentsOnly(projectID), nil)
	saleRepo.EXPECT().FindByProjectID(gomock.Any(), projectID).Return(scoped, nil)

	uc := NewListSalesUseCase(saleRepo, projectRepo)

	output, err := uc.Execute(context.Background(), ListSalesInput{})
	require.NoError(t, err)
	assert.Equal(t, all, output.Sales)

	output, err = uc.Execute(context.Background(), ListSalesInput{ProjectID: &projectID})
	require.NoError(t, err)
	assert.Equal(t, scoped, output.Sales)
}

func TestUpdateSaleUseCase_Execute(t *testing.T) {
	saleID := uuid.New()
	projectID := uuid.New()
	existing := func() *entity.Sale {
		return &entity.Sale{
			ID: saleID, ProjectID: projectID, UnitType: entity.UnitTypeApartment,
			CustomerName: "Karim", TotalPrice: decimal.NewFromInt(100),
			PaymentType: entity.PaymentTypeCash,
			Payments:    []entity.Payment{{Amount: decimal.NewFromInt(100), Paid: true, Type: entity.PaymentLabelCash}},
		}
	}
	shop := entity.UnitType("shop")
	name := "Karim Adel"
	blank := ""
	zero := decimal.Zero

	tests := []struct {
		name         string
		input        UpdateSaleInput
		setupMock    func(*mock.MockSaleRepository, *mock.MockProjectRepository)
		expectedCode domainerror.SaleErrorCode
		verify       func(*testing.T, *entity.Sale)
	}{
		{
			name:  "rename customer keeps schedule",
			input: UpdateSaleInput{SaleID: saleID, CustomerName: &name},
			setupMock: func(s *mock.MockSaleRepository, _ *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(existing(), nil)
				s.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, sale *entity.Sale) {
				assert.Equal(t, "Karim Adel", sale.CustomerName)
				assert.Len(t, sale.Payments, 1)
			},
		},
		{
			name:  "switch to shop offered by project",
			input: UpdateSaleInput{SaleID: saleID, UnitType: &shop},
			setupMock: func(s *mock.MockSaleRepository, p *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(existing(), nil)
				p.EXPECT().FindByID(gomock.Any(), projectID).Return(&entity.Project{ID: projectID, ShopsCount: 2}, nil)
				s.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, sale *entity.Sale) {
				assert.Equal(t, entity.UnitTypeShop, sale.UnitType)
			},
		},
		{
			name:  "switch to shop not offered",
			input: UpdateSaleInput{SaleID: saleID, UnitType: &shop},
			setupMock: func(s *mock.MockSaleRepository, p *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(existing(), nil)
				p.EXPECT().FindByID(gomock.Any(), projectID).Return(apartmentsOnly(projectID), nil)
			},
			expectedCode: domainerror.ErrCodeUnitTypeNotOffered,
		},
		{
			name:  "blank customer",
			input: UpdateSaleInput{SaleID: saleID, CustomerName: &blank},
			setupMock: func(s *mock.MockSaleRepository, _ *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(existing(), nil)
			},
			expectedCode: domainerror.ErrCodeCustomerNameRequired,
		},
		{
			name:  "zero price",
			input: UpdateSaleInput{SaleID: saleID, TotalPrice: &zero},
			setupMock: func(s *mock.MockSaleRepository, _ *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(existing(), nil)
			},
			expectedCode: domainerror.ErrCodeInvalidTotalPrice,
		},
		{
			name:  "missing sale",
			input: UpdateSaleInput{SaleID: saleID},
			setupMock: func(s *mock.MockSaleRepository, _ *mock.MockProjectRepository) {
				s.EXPECT().FindByID(gomock.Any(), saleID).Return(nil, notFound())
			},
			expectedCode: domainerror.ErrCodeSaleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			saleRepo := mock.NewMockSaleRepository(ctrl)
			projectRepo := mock.NewMockProjectRepository(ctrl)
			tt.setupMock(saleRepo, projectRepo)

			output, err := NewUpdateSaleUseCase(saleRepo, projectRepo).Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				assert.Nil(t, output)
				requireSaleCode(t, err, tt.expectedCode)
				return
			}
			require.NoError(t, err)
			tt.verify(t, output.Sale)
		})
	}
}

func TestSetPaymentPaidUseCase_Execute(t *testing.T) {
	saleID := uuid.New()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        SetPaymentPaidInput
		setupMock    func(*mock.MockSaleRepository)
		expectedCode domainerror.SaleErrorCode
	}{
		{
			name:  "mark paid stamps the clock",
			input: SetPaymentPaidInput{SaleID: saleID, Index: 1, Paid: true},
			setupMock: func(m *mock.MockSaleRepository) {
				m.EXPECT().SetPaymentPaid(gomock.Any(), saleID, 1, true, now).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int, _ bool, at time.Time) (*entity.Sale, error) {
						p := entity.Payment{Amount: decimal.NewFromInt(10)}
						p.MarkPaid(at)
						return &entity.Sale{ID: saleID, Payments: []entity.Payment{{}, p}}, nil
					})
			},
		},
		{
			name:         "negative index",
			input:        SetPaymentPaidInput{SaleID: saleID, Index: -1, Paid: true},
			setupMock:    func(*mock.MockSaleRepository) {},
			expectedCode: domainerror.ErrCodePaymentIndexOutOfRange,
		},
		{
			name:  "index past schedule",
			input: SetPaymentPaidInput{SaleID: saleID, Index: 9, Paid: true},
			setupMock: func(m *mock.MockSaleRepository) {
				m.EXPECT().SetPaymentPaid(gomock.Any(), saleID, 9, true, now).Return(nil, domainerror.ErrPaymentIndexOutOfRange)
			},
			expectedCode: domainerror.ErrCodePaymentIndexOutOfRange,
		},
		{
			name:  "lost version race",
			input: SetPaymentPaidInput{SaleID: saleID, Index: 1, Paid: false},
			setupMock: func(m *mock.MockSaleRepository) {
				m.EXPECT().SetPaymentPaid(gomock.Any(), saleID, 1, false, now).Return(nil,
					domainerror.NewStoreError(domainerror.StoreErrorConflict, "sales.set_payment_paid", domainerror.ErrConcurrentUpdate))
			},
			expectedCode: domainerror.ErrCodeConcurrentPaymentUpdate,
		},
		{
			name:  "missing sale",
			input: SetPaymentPaidInput{SaleID: saleID, Index: 0, Paid: true},
			setupMock: func(m *mock.MockSaleRepository) {
				m.EXPECT().SetPaymentPaid(gomock.Any(), saleID, 0, true, now).Return(nil, notFound())
			},
			expectedCode: domainerror.ErrCodeSaleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockSaleRepository(ctrl)
			tt.setupMock(repo)

			uc := NewSetPaymentPaidUseCase(repo).WithClock(func() time.Time { return now })
			output, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				assert.Nil(t, output)
				requireSaleCode(t, err, tt.expectedCode)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, output.Sale.Payments[1].PaidDate)
			assert.True(t, output.Sale.Payments[1].PaidDate.Equal(now))
		})
	}
}

func TestGetAndDeleteSale_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSaleRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())
	repo.EXPECT().Delete(gomock.Any(), id).Return(notFound())

	_, err := NewGetSaleUseCase(repo).Execute(context.Background(), GetSaleInput{SaleID: id})
	requireSaleCode(t, err, domainerror.ErrCodeSaleNotFound)

	err = NewDeleteSaleUseCase(repo).Execute(context.Background(), DeleteSaleInput{SaleID: id})
	requireSaleCode(t, err, domainerror.ErrCodeSaleNotFound)
}
