package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"classicmodels/internal/domain/customer"
	"classicmodels/internal/domain/order"
	apperrors "classicmodels/internal/shared/errors"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestOrderRepository_StoreUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)
	cause := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	mock.ExpectQuery("SELECT").WillReturnError(cause)

	_, err := repo.GetByNumber(context.Background(), 10417)
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailableError(err))
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, apperrors.GetAppError(err).Message, "127.0.0.1")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindPageCountFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("server has gone away"))

	_, err := repo.FindPage(context.Background(), order.ByStatus(order.StatusShipped), mustPage(t, 0, 10))
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailableError(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_NotFoundFromMock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `orders` WHERE orderNumber = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"orderNumber"}))

	_, err := repo.GetByNumber(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_NativeQueryFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("UK", "Larry", "Bott").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("SELECT c.customerNumber").
		WillReturnError(errors.New("i/o timeout"))

	_, err := repo.FindBySalesRepPageNative(context.Background(),
		customer.SalesRepFilter{Country: "UK", FirstName: "Larry", LastName: "Bott"}, mustPage(t, 0, 10))
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailableError(err))

	require.NoError(t, mock.ExpectationsWereMet())
}
