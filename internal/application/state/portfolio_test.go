package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estate-ledger/backend/internal/application/adapter/mock"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	projectRepo := mock.NewMockProjectRepository(ctrl)
	saleRepo := mock.NewMockSaleRepository(ctrl)

	first := &entity.Project{ID: uuid.New(), Name: "First"}
	second := &entity.Project{ID: uuid.New(), Name: "Second"}
	saleA := &entity.Sale{ID: uuid.New(), ProjectID: first.ID}
	saleB := &entity.Sale{ID: uuid.New(), ProjectID: first.ID}
	orphan := &entity.Sale{ID: uuid.New(), ProjectID: uuid.New()}

	projectRepo.EXPECT().FindAll(gomock.Any()).Return([]*entity.Project{first, second}, nil)
	saleRepo.EXPECT().FindAll(gomock.Any()).Return([]*entity.Sale{saleA, orphan, saleB}, nil)

	loadedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	loader := NewLoader(projectRepo, saleRepo).WithClock(func() time.Time { return loadedAt })

	portfolio, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, loadedAt, portfolio.LoadedAt)
	assert.Equal(t, []*entity.Project{first, second}, portfolio.Projects())
	assert.Len(t, portfolio.Sales(), 3)
	assert.Equal(t, []*entity.Sale{saleA, saleB}, portfolio.SalesForProject(first.ID))
	assert.Empty(t, portfolio.SalesForProject(second.ID))

	found, ok := portfolio.Project(second.ID)
	assert.True(t, ok)
	assert.Equal(t, second, found)

	_, ok = portfolio.Project(orphan.ProjectID)
	assert.False(t, ok)
}

func TestLoader_LoadErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name      string
		setupMock func(*mock.MockProjectRepository, *mock.MockSaleRepository)
	}{
		{
			name: "projects fail",
			setupMock: func(p *mock.MockProjectRepository, _ *mock.MockSaleRepository) {
				p.EXPECT().FindAll(gomock.Any()).Return(nil, storeErr)
			},
		},
		{
			name: "sales fail",
			setupMock: func(p *mock.MockProjectRepository, s *mock.MockSaleRepository) {
				p.EXPECT().FindAll(gomock.Any()).Return([]*entity.Project{}, nil)
				s.EXPECT().FindAll(gomock.Any()).Return(nil, storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			projectRepo := mock.NewMockProjectRepository(ctrl)
			saleRepo := mock.NewMockSaleRepository(ctrl)
			tt.setupMock(projectRepo, saleRepo)

			portfolio, err := NewLoader(projectRepo, saleRepo).Load(context.Background())
			assert.Nil(t, portfolio)
			assert.ErrorIs(t, err, storeErr)
		})
	}
}
