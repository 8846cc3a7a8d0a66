package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classicmodels/internal/domain/customer"
	customermocks "classicmodels/internal/domain/customer/mocks"
	"classicmodels/internal/domain/order"
	ordermocks "classicmodels/internal/domain/order/mocks"
	"classicmodels/internal/domain/shared"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/query"
)

type fixture struct {
	orders    *ordermocks.MockRepository
	details   *ordermocks.MockDetailRepository
	customers *customermocks.MockRepository
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		orders:    ordermocks.NewMockRepository(ctrl),
		details:   ordermocks.NewMockDetailRepository(ctrl),
		customers: customermocks.NewMockRepository(ctrl),
	}
	f.service = NewService(f.orders, f.details, f.customers, logger.NewNopLogger())
	return f
}

func newOrder(t *testing.T, number int64, status order.Status, customerNumber int64) *order.Order {
	t.Helper()
	day := time.Date(2005, time.May, 13, 0, 0, 0, 0, time.UTC)
	o, err := order.ReconstructOrder(number, day, day.AddDate(0, 0, 6), nil, status, nil, customerNumber)
	require.NoError(t, err)
	return o
}

func TestService_FindByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.orders.EXPECT().
		Find(gomock.Any(), order.ByStatus("disputed")).
		Return([]*order.Order{newOrder(t, 10406, order.StatusDisputed, 145)}, nil)

	got, err := f.service.FindByStatus(ctx, "disputed")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(10406), got[0].OrderNumber)
	assert.Equal(t, "Disputed", got[0].Status)
	assert.Nil(t, got[0].ShippedDate)
	assert.Equal(t, "2005-05-13", got[0].OrderDate)
}

func TestService_FindByStatus_Blank(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.FindByStatus(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_FindByStatusIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("passes the status set through", func(t *testing.T) {
		f.orders.EXPECT().
			Find(gomock.Any(), order.ByStatusIn(order.StatusShipped, order.StatusDisputed)).
			Return([]*order.Order{}, nil)

		got, err := f.service.FindByStatusIn(ctx, []string{"Shipped", "Disputed"})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("empty set still reaches the repository as an empty filter", func(t *testing.T) {
		f.orders.EXPECT().
			Find(gomock.Any(), order.ByStatusIn()).
			Return([]*order.Order{}, nil)

		got, err := f.service.FindByStatusIn(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestService_CompoundFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	statuses := []string{"Disputed", "On Hold", "Cancelled"}
	name := "Euro+ Shopping Channel"

	want := order.ByStatusIn(order.StatusDisputed, order.StatusOnHold, order.StatusCancelled).
		WithCustomerName(name)
	rows := []*order.Order{
		newOrder(t, 10262, order.StatusCancelled, 141),
		newOrder(t, 10414, order.StatusOnHold, 141),
		newOrder(t, 10417, order.StatusDisputed, 141),
	}

	f.orders.EXPECT().Find(gomock.Any(), want).Return(rows, nil).Times(2)

	a, err := f.service.FindByStatusInAndCustomerName(ctx, statuses, name)
	require.NoError(t, err)
	b, err := f.service.FindByCustomerNameAndStatusIn(ctx, name, statuses)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = f.service.FindByStatusInAndCustomerName(ctx, statuses, "")
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_FindByStatusInAndCustomerNamePaged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := query.PageRequest{Number: 0, Size: 2}

	criteria := order.ByStatusIn(order.StatusDisputed).WithCustomerName("Euro+ Shopping Channel")
	f.orders.EXPECT().
		FindPage(gomock.Any(), criteria, req).
		Return(query.NewPage([]*order.Order{newOrder(t, 10417, order.StatusDisputed, 141)}, req, 1), nil)

	page, err := f.service.FindByStatusInAndCustomerNamePaged(ctx, []string{"Disputed"}, "Euro+ Shopping Channel", req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(10417), page.Content[0].OrderNumber)
}

func TestService_RankedLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := newOrder(t, 10406, order.StatusDisputed, 145)
	last := newOrder(t, 10417, order.StatusDisputed, 141)

	t.Run("first by status", func(t *testing.T) {
		f.orders.EXPECT().FindFirst(gomock.Any(), order.ByStatus("disputed")).Return(first, nil)

		got, err := f.service.FindFirstByStatus(ctx, "disputed")
		require.NoError(t, err)
		assert.Equal(t, int64(10406), got.OrderNumber)
	})

	t.Run("top by status", func(t *testing.T) {
		f.orders.EXPECT().Find(gomock.Any(), order.ByStatus("disputed").Top(1)).Return([]*order.Order{first}, nil)

		got, err := f.service.FindTopByStatus(ctx, "disputed")
		require.NoError(t, err)
		assert.Equal(t, int64(10406), got.OrderNumber)
	})

	t.Run("top by status with no match", func(t *testing.T) {
		f.orders.EXPECT().Find(gomock.Any(), order.ByStatus("lost").Top(1)).Return([]*order.Order{}, nil)

		_, err := f.service.FindTopByStatus(ctx, "lost")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("top by status descending", func(t *testing.T) {
		criteria := order.ByStatus("disputed").OrderBy(query.ByDesc(order.SortByNumber))
		f.orders.EXPECT().FindFirst(gomock.Any(), criteria).Return(last, nil)

		got, err := f.service.FindTopByStatusOrderByNumberDesc(ctx, "disputed")
		require.NoError(t, err)
		assert.Equal(t, int64(10417), got.OrderNumber)
	})

	t.Run("top n rejects out of range limits", func(t *testing.T) {
		for _, n := range []int{0, -1, 101} {
			_, err := f.service.FindTopNByStatus(ctx, "disputed", n)
			assert.True(t, apperrors.IsValidationError(err), "limit %d", n)
		}
	})
}

func TestService_GetByReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o := newOrder(t, 10417, order.StatusDisputed, 141)
	loaded := 0
	ref := shared.NewReference(int64(10417), func(ctx context.Context, key int64) (*order.Order, error) {
		loaded++
		return o, nil
	})
	missing := shared.NewReference(int64(1), func(ctx context.Context, key int64) (*order.Order, error) {
		return nil, apperrors.NewNotFoundError("order not found")
	})

	f.orders.EXPECT().GetReference(int64(10417)).Return(ref)
	f.orders.EXPECT().GetReference(int64(1)).Return(missing)

	got, err := f.service.GetByReference(ctx, 10417)
	require.NoError(t, err)
	assert.Equal(t, int64(10417), got.OrderNumber)
	assert.Equal(t, 1, loaded)

	_, err = f.service.GetByReference(ctx, 1)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestService_ResolveCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := customer.ReconstructCustomer(141, "Euro+ Shopping Channel",
		customer.Contact{FirstName: "Diego", LastName: "Freyre", Phone: "(91) 555 94 44"},
		customer.Address{Line1: "C/ Moralzarzal, 86", City: "Madrid", Country: "Spain"},
		nil, nil)
	require.NoError(t, err)

	f.orders.EXPECT().GetByNumber(gomock.Any(), int64(10417)).Return(newOrder(t, 10417, order.StatusDisputed, 141), nil)
	f.customers.EXPECT().GetByNumber(gomock.Any(), int64(141)).Return(c, nil)

	got, err := f.service.ResolveCustomer(ctx, 10417)
	require.NoError(t, err)
	assert.Equal(t, "Euro+ Shopping Channel", got.CustomerName)
	assert.Equal(t, "Spain", got.Country)
}

func TestService_ListDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("missing order", func(t *testing.T) {
		f.orders.EXPECT().GetByNumber(gomock.Any(), int64(1)).Return(nil, apperrors.NewNotFoundError("order not found"))

		_, err := f.service.ListDetails(ctx, 1)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("lines of an order", func(t *testing.T) {
		d, err := order.ReconstructDetail(order.DetailKey{OrderNumber: 10417, ProductCode: "S10_1678"}, 66, 79.43, 2)
		require.NoError(t, err)

		f.orders.EXPECT().GetByNumber(gomock.Any(), int64(10417)).Return(newOrder(t, 10417, order.StatusDisputed, 141), nil)
		f.details.EXPECT().ListByOrder(gomock.Any(), int64(10417)).Return([]*order.Detail{d}, nil)

		got, err := f.service.ListDetails(ctx, 10417)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "S10_1678", got[0].ProductCode)
		assert.InDelta(t, 66*79.43, got[0].LineTotal, 0.001)
	})
}

func TestService_StoreFailurePropagates(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("connection refused")

	f.orders.EXPECT().
		Find(gomock.Any(), order.All()).
		Return(nil, apperrors.NewStoreUnavailableError("failed to list orders", cause))

	_, err := f.service.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailableError(err))
	assert.ErrorIs(t, err, cause)
}
