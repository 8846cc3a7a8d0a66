package repository

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/infrastructure/persistence/seeds/seedtest"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

func orderNumbers(orders []*order.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Number())
	}
	return out
}

func mustPage(t *testing.T, number, size int) query.PageRequest {
	t.Helper()
	req, err := query.NewPageRequest(number, size)
	require.NoError(t, err)
	return req
}

func TestOrderRepository_FindAll(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	t.Run("defaults to order number ascending", func(t *testing.T) {
		orders, err := repo.FindAll(ctx, query.Sort{})
		require.NoError(t, err)
		require.Len(t, orders, 24)
		assert.Equal(t, int64(10104), orders[0].Number())
		assert.Equal(t, int64(10425), orders[len(orders)-1].Number())
	})

	t.Run("descending by number", func(t *testing.T) {
		orders, err := repo.FindAll(ctx, query.ByDesc(order.SortByNumber))
		require.NoError(t, err)
		require.Len(t, orders, 24)
		assert.Equal(t, int64(10425), orders[0].Number())
	})

	t.Run("ties on order date break by number", func(t *testing.T) {
		orders, err := repo.FindAll(ctx, query.ByDesc(order.SortByOrderDate))
		require.NoError(t, err)
		assert.Equal(t, []int64{10424, 10425, 10420, 10421}, orderNumbers(orders[:4]))
	})

	t.Run("unknown sort field is rejected", func(t *testing.T) {
		_, err := repo.FindAll(ctx, query.By("customerNumber; DROP TABLE orders"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestOrderRepository_Find(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria order.Criteria
		want     []int64
	}{
		{
			name:     "single status",
			criteria: order.ByStatus(order.StatusDisputed),
			want:     []int64{10406, 10415, 10417},
		},
		{
			name:     "status ignores case",
			criteria: order.ByStatus("dIsPuTeD"),
			want:     []int64{10406, 10415, 10417},
		},
		{
			name:     "either status",
			criteria: order.ByStatusOr(order.StatusResolved, order.StatusDisputed),
			want:     []int64{10164, 10406, 10415, 10417},
		},
		{
			name:     "unknown status matches nothing",
			criteria: order.ByStatus("Lost"),
			want:     []int64{},
		},
		{
			name:     "empty status set matches nothing",
			criteria: order.ByStatusIn(),
			want:     []int64{},
		},
		{
			name:     "customer name",
			criteria: order.ByCustomerName("Euro+ Shopping Channel"),
			want:     []int64{10104, 10262, 10412, 10414, 10417, 10424},
		},
		{
			name:     "customer name is exact",
			criteria: order.ByCustomerName("euro+ shopping channel"),
			want:     []int64{},
		},
		{
			name: "status set and customer name",
			criteria: order.ByStatusIn(order.StatusDisputed, order.StatusOnHold, order.StatusCancelled).
				WithCustomerName("Euro+ Shopping Channel"),
			want: []int64{10262, 10414, 10417},
		},
		{
			name:     "top n",
			criteria: order.ByStatus(order.StatusDisputed).Top(2),
			want:     []int64{10406, 10415},
		},
		{
			name:     "top n descending",
			criteria: order.ByStatus(order.StatusInProcess).OrderBy(query.ByDesc(order.SortByNumber)).Top(3),
			want:     []int64{10425, 10424, 10421},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.Find(ctx, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderNumbers(orders))
		})
	}
}

func TestOrderRepository_FindFreeTextStatus(t *testing.T) {
	gdb := seedtest.NewDB(t)
	require.NoError(t, gdb.Exec("UPDATE orders SET status = ? WHERE orderNumber = ?", "Ärger", 10406).Error)
	repo := NewOrderRepository(gdb)
	ctx := context.Background()

	for _, status := range []order.Status{"Ärger", " Ärger "} {
		orders, err := repo.Find(ctx, order.ByStatus(status))
		require.NoError(t, err)
		assert.Equal(t, []int64{10406}, orderNumbers(orders), "status %q", status)
	}

	orders, err := repo.Find(ctx, order.ByStatusIn("Ärger", order.StatusDisputed))
	require.NoError(t, err)
	assert.Equal(t, []int64{10406, 10415, 10417}, orderNumbers(orders))
}

func TestOrderRepository_StatusSetIsUnionOfSingleStatuses(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()
	known := order.KnownStatuses()

	single := make(map[order.Status][]int64, len(known))
	for _, status := range known {
		orders, err := repo.Find(ctx, order.ByStatus(status))
		require.NoError(t, err)
		single[status] = orderNumbers(orders)
	}

	for mask := 1; mask < 1<<len(known); mask++ {
		var subset []order.Status
		union := map[int64]struct{}{}
		for i, status := range known {
			if mask&(1<<i) == 0 {
				continue
			}
			subset = append(subset, status)
			for _, n := range single[status] {
				union[n] = struct{}{}
			}
		}

		orders, err := repo.Find(ctx, order.ByStatusIn(subset...))
		require.NoError(t, err)

		want := make([]int64, 0, len(union))
		for n := range union {
			want = append(want, n)
		}
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		assert.Equal(t, want, orderNumbers(orders), "statuses %v", subset)
	}
}

func TestOrderRepository_FindFirst(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	first, err := repo.FindFirst(ctx, order.ByStatus(order.StatusDisputed))
	require.NoError(t, err)
	assert.Equal(t, int64(10406), first.Number())

	last, err := repo.FindFirst(ctx, order.ByStatus(order.StatusDisputed).OrderBy(query.ByDesc(order.SortByNumber)))
	require.NoError(t, err)
	assert.Equal(t, int64(10417), last.Number())

	_, err = repo.FindFirst(ctx, order.ByStatus("Lost"))
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = repo.FindFirst(ctx, order.ByStatusIn())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestOrderRepository_FindPage(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	t.Run("pages concatenate to the full listing", func(t *testing.T) {
		all, err := repo.FindAll(ctx, query.Sort{})
		require.NoError(t, err)

		first, err := repo.FindPage(ctx, order.All(), mustPage(t, 0, 5))
		require.NoError(t, err)
		assert.Equal(t, int64(24), first.TotalElements)
		assert.Equal(t, 5, first.TotalPages)
		assert.True(t, first.First)
		assert.False(t, first.Last)

		var collected []int64
		for n := 0; n < first.TotalPages; n++ {
			page, err := repo.FindPage(ctx, order.All(), mustPage(t, n, 5))
			require.NoError(t, err)
			collected = append(collected, orderNumbers(page.Content)...)
			if n == first.TotalPages-1 {
				assert.True(t, page.Last)
				assert.Equal(t, 4, page.NumberOfElements)
			}
		}
		assert.Equal(t, orderNumbers(all), collected)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := repo.FindPage(ctx, order.All(), mustPage(t, 10, 5))
		require.NoError(t, err)
		assert.True(t, page.Empty)
		assert.Equal(t, int64(24), page.TotalElements)
	})

	t.Run("filtered page", func(t *testing.T) {
		page, err := repo.FindPage(ctx,
			order.ByStatusIn(order.StatusShipped, order.StatusCancelled),
			mustPage(t, 1, 4))
		require.NoError(t, err)
		assert.Equal(t, int64(12), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, []int64{10167, 10179, 10253, 10262}, orderNumbers(page.Content))
	})

	t.Run("empty status set", func(t *testing.T) {
		page, err := repo.FindPage(ctx, order.ByStatusIn(), mustPage(t, 0, 5))
		require.NoError(t, err)
		assert.True(t, page.Empty)
		assert.Zero(t, page.TotalElements)
		assert.Zero(t, page.TotalPages)
	})
}

func TestOrderRepository_GetByNumber(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	o, err := repo.GetByNumber(ctx, 10417)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDisputed, o.Status())
	assert.Equal(t, int64(141), o.CustomerNumber())
	require.NotNil(t, o.ShippedDate())
	assert.Equal(t, "2005-05-19", o.ShippedDate().Format("2006-01-02"))

	_, err = repo.GetByNumber(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestOrderRepository_GetReference(t *testing.T) {
	repo := NewOrderRepository(seedtest.NewDB(t))
	ctx := context.Background()

	ref := repo.GetReference(10406)
	assert.Equal(t, int64(10406), ref.Key())

	o, err := ref.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10406), o.Number())
	assert.Equal(t, int64(145), o.CustomerNumber())

	_, err = repo.GetReference(42).Resolve(ctx)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestOrderDetailRepository(t *testing.T) {
	repo := NewOrderDetailRepository(seedtest.NewDB(t))
	ctx := context.Background()

	details, err := repo.ListByOrder(ctx, 10417)
	require.NoError(t, err)
	require.Len(t, details, 4)
	codes := make([]string, 0, len(details))
	for _, d := range details {
		codes = append(codes, d.ProductCode())
	}
	assert.Equal(t, []string{"S700_2824", "S10_1678", "S12_1099", "S10_1949"}, codes)

	d, err := repo.GetByKey(ctx, order.DetailKey{OrderNumber: 10417, ProductCode: "S10_1678"})
	require.NoError(t, err)
	assert.Equal(t, 66, d.QuantityOrdered())
	assert.InDelta(t, 79.43, d.PriceEach(), 0.001)

	_, err = repo.GetByKey(ctx, order.DetailKey{OrderNumber: 10417, ProductCode: "S18_1749"})
	assert.True(t, apperrors.IsNotFoundError(err))

	none, err := repo.ListByOrder(ctx, 10425)
	require.NoError(t, err)
	assert.Empty(t, none)
}
