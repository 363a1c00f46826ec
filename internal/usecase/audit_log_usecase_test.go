package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-rest-brewery/internal/domain/entity"
	"go-rest-brewery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockAuditLogRepository is a testify mock of repository.AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindByEntityID(ctx context.Context, entityID string) ([]entity.AuditLog, error) {
	args := m.Called(ctx, entityID)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

func TestAuditLogUsecase_GetBeerHistory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		beer := newBeer()
		created := entity.NewBeerAuditLog(entity.AuditActionBeerCreate, beer.ID.String(), nil, beer)
		deleted := entity.NewBeerAuditLog(entity.AuditActionBeerDelete, beer.ID.String(), beer, nil)
		created.ID, deleted.ID = 1, 2

		repo := new(MockAuditLogRepository)
		repo.On("FindByEntityID", mock.Anything, beer.ID.String()).
			Return([]entity.AuditLog{*created, *deleted}, nil).Once()

		got, err := usecase.NewAuditLogUsecase(newTestLogger(), repo).GetBeerHistory(context.Background(), beer.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		require.Len(t, got.Logs, 2)
		assert.Equal(t, "beer.create", got.Logs[0].Action)
		assert.Equal(t, "beer.delete", got.Logs[1].Action)
		assert.Equal(t, beer.ID.String(), got.Logs[1].EntityID)
		repo.AssertExpectations(t)
	})

	t.Run("success: no history", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockAuditLogRepository)
		repo.On("FindByEntityID", mock.Anything, id.String()).Return(nil, nil).Once()

		got, err := usecase.NewAuditLogUsecase(newTestLogger(), repo).GetBeerHistory(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, 0, got.Total)
		assert.NotNil(t, got.Logs)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockAuditLogRepository)
		repo.On("FindByEntityID", mock.Anything, id.String()).Return(nil, errors.New("db error")).Once()

		got, err := usecase.NewAuditLogUsecase(newTestLogger(), repo).GetBeerHistory(context.Background(), id)

		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}
