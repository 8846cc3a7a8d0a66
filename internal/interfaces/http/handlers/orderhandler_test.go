package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdto "classicmodels/internal/application/customer/dto"
	orderdto "classicmodels/internal/application/order/dto"
	"classicmodels/internal/interfaces/http/handlers/testutil"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

// =====================================================================
// Fake order service
// =====================================================================

type fakeOrderService struct {
	orders   []*orderdto.OrderDTO
	order    *orderdto.OrderDTO
	customer *customerdto.CustomerDTO
	details  []*orderdto.OrderDetailDTO
	detail   *orderdto.OrderDetailDTO
	err      error

	called       string
	gotNumber    int64
	gotStatus    string
	gotStatuses  []string
	gotCustomer  string
	gotLimit     int
	gotPage      query.PageRequest
	gotProduct   string
	gotSecondary string
}

func (f *fakeOrderService) list(name string) ([]*orderdto.OrderDTO, error) {
	f.called = name
	return f.orders, f.err
}

func (f *fakeOrderService) paged(name string, page query.PageRequest) (*query.Page[*orderdto.OrderDTO], error) {
	f.called = name
	f.gotPage = page
	if f.err != nil {
		return nil, f.err
	}
	return query.NewPage(f.orders, page, int64(len(f.orders))), nil
}

func (f *fakeOrderService) single(name string) (*orderdto.OrderDTO, error) {
	f.called = name
	return f.order, f.err
}

func (f *fakeOrderService) FindAll(ctx context.Context) ([]*orderdto.OrderDTO, error) {
	return f.list("FindAll")
}

func (f *fakeOrderService) FindAllSortedDesc(ctx context.Context) ([]*orderdto.OrderDTO, error) {
	return f.list("FindAllSortedDesc")
}

func (f *fakeOrderService) FindPage(ctx context.Context, page query.PageRequest) (*query.Page[*orderdto.OrderDTO], error) {
	return f.paged("FindPage", page)
}

func (f *fakeOrderService) FindByStatus(ctx context.Context, status string) ([]*orderdto.OrderDTO, error) {
	f.gotStatus = status
	return f.list("FindByStatus")
}

func (f *fakeOrderService) FindByStatusOrStatus(ctx context.Context, first, second string) ([]*orderdto.OrderDTO, error) {
	f.gotStatus, f.gotSecondary = first, second
	return f.list("FindByStatusOrStatus")
}

func (f *fakeOrderService) FindByStatusIn(ctx context.Context, statuses []string) ([]*orderdto.OrderDTO, error) {
	f.gotStatuses = statuses
	return f.list("FindByStatusIn")
}

func (f *fakeOrderService) FindByStatusInPaged(
	ctx context.Context,
	statuses []string,
	page query.PageRequest,
) (*query.Page[*orderdto.OrderDTO], error) {
	f.gotStatuses = statuses
	return f.paged("FindByStatusInPaged", page)
}

func (f *fakeOrderService) FindByCustomerName(ctx context.Context, name string) ([]*orderdto.OrderDTO, error) {
	f.gotCustomer = name
	return f.list("FindByCustomerName")
}

func (f *fakeOrderService) FindByStatusInAndCustomerName(
	ctx context.Context,
	statuses []string,
	name string,
) ([]*orderdto.OrderDTO, error) {
	f.gotStatuses, f.gotCustomer = statuses, name
	return f.list("FindByStatusInAndCustomerName")
}

func (f *fakeOrderService) FindByCustomerNameAndStatusIn(
	ctx context.Context,
	name string,
	statuses []string,
) ([]*orderdto.OrderDTO, error) {
	f.gotStatuses, f.gotCustomer = statuses, name
	return f.list("FindByCustomerNameAndStatusIn")
}

func (f *fakeOrderService) FindByStatusInAndCustomerNamePaged(
	ctx context.Context,
	statuses []string,
	name string,
	page query.PageRequest,
) (*query.Page[*orderdto.OrderDTO], error) {
	f.gotStatuses, f.gotCustomer = statuses, name
	return f.paged("FindByStatusInAndCustomerNamePaged", page)
}

func (f *fakeOrderService) FindFirstByStatus(ctx context.Context, status string) (*orderdto.OrderDTO, error) {
	f.gotStatus = status
	return f.single("FindFirstByStatus")
}

func (f *fakeOrderService) FindTopByStatus(ctx context.Context, status string) (*orderdto.OrderDTO, error) {
	f.gotStatus = status
	return f.single("FindTopByStatus")
}

func (f *fakeOrderService) FindTopByStatusOrderByNumberDesc(ctx context.Context, status string) (*orderdto.OrderDTO, error) {
	f.gotStatus = status
	return f.single("FindTopByStatusOrderByNumberDesc")
}

func (f *fakeOrderService) FindTopNByStatus(ctx context.Context, status string, n int) ([]*orderdto.OrderDTO, error) {
	f.gotStatus, f.gotLimit = status, n
	return f.list("FindTopNByStatus")
}

func (f *fakeOrderService) GetByNumber(ctx context.Context, number int64) (*orderdto.OrderDTO, error) {
	f.gotNumber = number
	return f.single("GetByNumber")
}

func (f *fakeOrderService) GetByReference(ctx context.Context, number int64) (*orderdto.OrderDTO, error) {
	f.gotNumber = number
	return f.single("GetByReference")
}

func (f *fakeOrderService) ResolveCustomer(ctx context.Context, number int64) (*customerdto.CustomerDTO, error) {
	f.called, f.gotNumber = "ResolveCustomer", number
	return f.customer, f.err
}

func (f *fakeOrderService) ListDetails(ctx context.Context, number int64) ([]*orderdto.OrderDetailDTO, error) {
	f.called, f.gotNumber = "ListDetails", number
	return f.details, f.err
}

func (f *fakeOrderService) GetDetail(ctx context.Context, number int64, productCode string) (*orderdto.OrderDetailDTO, error) {
	f.called, f.gotNumber, f.gotProduct = "GetDetail", number, productCode
	return f.detail, f.err
}

// =====================================================================
// Test helpers
// =====================================================================

func testOrderDTO(number int64, status string) *orderdto.OrderDTO {
	return &orderdto.OrderDTO{
		OrderNumber:    number,
		OrderDate:      "2005-04-03",
		RequiredDate:   "2005-04-14",
		Status:         status,
		CustomerNumber: 141,
	}
}

func newTestOrderHandler(svc *fakeOrderService) *OrderHandler {
	return NewOrderHandler(svc, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := &fakeOrderService{orders: []*orderdto.OrderDTO{testOrderDTO(10104, "Shipped"), testOrderDTO(10107, "Shipped")}}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders")

	handler.ListOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []orderdto.OrderDTO
	resp, err := testutil.ParseData(w, &got)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, got, 2)
	assert.Equal(t, int64(10104), got[0].OrderNumber)
}

func TestOrderHandler_ListOrders_StoreUnavailable(t *testing.T) {
	svc := &fakeOrderService{err: errors.NewStoreUnavailableError("failed to query orders", assert.AnError)}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders")

	handler.ListOrders(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "store_unavailable", resp.Error.Type)
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
}

func TestOrderHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		svc        *fakeOrderService
		wantStatus int
	}{
		{"found", "10406", &fakeOrderService{order: testOrderDTO(10406, "Disputed")}, http.StatusOK},
		{"not found", "99999", &fakeOrderService{err: errors.NewNotFoundError("order not found")}, http.StatusNotFound},
		{"non numeric", "abc", &fakeOrderService{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestOrderHandler(tt.svc)
			c, w := testutil.NewTestContext("/orders/" + tt.id)
			testutil.SetURLParam(c, "id", tt.id)

			handler.GetOrder(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Empty(t, tt.svc.called, "service must not be reached")
			}
		})
	}
}

func TestOrderHandler_GetOrderByReference_Missing(t *testing.T) {
	svc := &fakeOrderService{err: errors.NewNotFoundError("order not found")}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders/reference/1")
	testutil.SetURLParam(c, "id", "1")

	handler.GetOrderByReference(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "GetByReference", svc.called)
	assert.Equal(t, int64(1), svc.gotNumber)
}

func TestOrderHandler_PageOrders(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := &fakeOrderService{orders: []*orderdto.OrderDTO{testOrderDTO(10104, "Shipped")}}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/paged")

		handler.PageOrders(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, svc.gotPage.Number)
		assert.Equal(t, 10, svc.gotPage.Size)

		var got query.Page[orderdto.OrderDTO]
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.TotalElements)
		assert.True(t, got.First)
	})

	t.Run("oversized page capped", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/paged")
		testutil.SetQueryParams(c, map[string]string{"pageNumber": "2", "perPage": "500"})

		handler.PageOrders(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, svc.gotPage.Number)
		assert.Equal(t, 100, svc.gotPage.Size)
	})

	t.Run("negative page rejected", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/paged")
		testutil.SetQueryParams(c, map[string]string{"pageNumber": "-1"})

		handler.PageOrders(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.called)
	})

	t.Run("non numeric size rejected", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/paged")
		testutil.SetQueryParams(c, map[string]string{"perPage": "ten"})

		handler.PageOrders(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_RankedByStatus(t *testing.T) {
	tests := []struct {
		name     string
		call     func(h *OrderHandler) func(c *gin.Context)
		wantCall string
	}{
		{"first", func(h *OrderHandler) func(c *gin.Context) { return h.GetFirstOrderByStatus }, "FindFirstByStatus"},
		{"top", func(h *OrderHandler) func(c *gin.Context) { return h.GetTopOrderByStatus }, "FindTopByStatus"},
		{"last", func(h *OrderHandler) func(c *gin.Context) { return h.GetLastOrderByStatus }, "FindTopByStatusOrderByNumberDesc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{order: testOrderDTO(10406, "Disputed")}
			handler := newTestOrderHandler(svc)
			c, w := testutil.NewTestContext("/orders/status/disputed")
			testutil.SetURLParam(c, "status", "disputed")

			tt.call(handler)(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantCall, svc.called)
			assert.Equal(t, "disputed", svc.gotStatus)
		})
	}
}

func TestOrderHandler_ListTopOrdersByStatus(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/status/shipped/top")
		testutil.SetURLParam(c, "status", "shipped")

		handler.ListTopOrdersByStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, svc.gotLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/status/shipped/top")
		testutil.SetURLParam(c, "status", "shipped")
		testutil.SetQueryParams(c, map[string]string{"limit": "3"})

		handler.ListTopOrdersByStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, svc.gotLimit)
	})

	for _, limit := range []string{"0", "101", "many"} {
		t.Run("rejects limit "+limit, func(t *testing.T) {
			svc := &fakeOrderService{}
			handler := newTestOrderHandler(svc)
			c, w := testutil.NewTestContext("/orders/status/shipped/top")
			testutil.SetURLParam(c, "status", "shipped")
			testutil.SetQueryParams(c, map[string]string{"limit": limit})

			handler.ListTopOrdersByStatus(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, svc.called)
		})
	}
}

func TestOrderHandler_ListOrdersByStatuses(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/statuses")
		testutil.SetQueryParams(c, map[string]string{"statuses": " disputed, shipped ,,"})

		handler.ListOrdersByStatuses(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"disputed", "shipped"}, svc.gotStatuses)
	})

	t.Run("blank list reaches service empty", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/statuses")
		testutil.SetQueryParams(c, map[string]string{"statuses": ""})

		handler.ListOrdersByStatuses(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "FindByStatusIn", svc.called)
		assert.Empty(t, svc.gotStatuses)
	})

	t.Run("missing parameter", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := newTestOrderHandler(svc)
		c, w := testutil.NewTestContext("/orders/statuses")

		handler.ListOrdersByStatuses(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Details, "statuses is required")
	})
}

func TestOrderHandler_PageOrdersByStatusesAndCustomer(t *testing.T) {
	svc := &fakeOrderService{orders: []*orderdto.OrderDTO{testOrderDTO(10262, "Cancelled")}}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders/statuses/customer/paged")
	testutil.SetQueryParams(c, map[string]string{
		"customer":   "Euro+ Shopping Channel",
		"statuses":   "Disputed,On Hold,Cancelled",
		"pageNumber": "0",
		"perPage":    "2",
	})

	handler.PageOrdersByStatusesAndCustomer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Euro+ Shopping Channel", svc.gotCustomer)
	assert.Equal(t, []string{"Disputed", "On Hold", "Cancelled"}, svc.gotStatuses)
	assert.Equal(t, 2, svc.gotPage.Size)
}

func TestOrderHandler_CustomerStatusesVariants(t *testing.T) {
	params := map[string]string{"customer": "Euro+ Shopping Channel", "statuses": "Disputed"}

	svc := &fakeOrderService{}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders/statuses/customer")
	testutil.SetQueryParams(c, params)
	handler.ListOrdersByStatusesAndCustomer(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FindByStatusInAndCustomerName", svc.called)

	c, w = testutil.NewTestContext("/orders/customer/statuses")
	testutil.SetQueryParams(c, params)
	handler.ListOrdersByCustomerAndStatuses(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FindByCustomerNameAndStatusIn", svc.called)
}

func TestOrderHandler_ListOrdersByStatusesAndCustomer_MissingParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"no customer", map[string]string{"statuses": "Disputed"}},
		{"no statuses", map[string]string{"customer": "Euro+ Shopping Channel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{}
			handler := newTestOrderHandler(svc)
			c, w := testutil.NewTestContext("/orders/statuses/customer")
			testutil.SetQueryParams(c, tt.params)

			handler.ListOrdersByStatusesAndCustomer(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, svc.called)
		})
	}
}

func TestOrderHandler_ListOrdersByCustomer(t *testing.T) {
	svc := &fakeOrderService{}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders/customer")
	testutil.SetQueryParams(c, map[string]string{"customer": "Atelier graphique"})

	handler.ListOrdersByCustomer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Atelier graphique", svc.gotCustomer)
}

func TestOrderHandler_ListOrdersByEitherStatus(t *testing.T) {
	svc := &fakeOrderService{}
	handler := newTestOrderHandler(svc)
	c, w := testutil.NewTestContext("/orders/status/shipped/or/cancelled")
	testutil.SetURLParam(c, "status", "shipped")
	testutil.SetURLParam(c, "other", "cancelled")

	handler.ListOrdersByEitherStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shipped", svc.gotStatus)
	assert.Equal(t, "cancelled", svc.gotSecondary)
}

func TestOrderHandler_Associations(t *testing.T) {
	svc := &fakeOrderService{
		customer: &customerdto.CustomerDTO{CustomerNumber: 141, CustomerName: "Euro+ Shopping Channel"},
		details:  []*orderdto.OrderDetailDTO{{OrderNumber: 10417, ProductCode: "S10_1678", QuantityOrdered: 66, PriceEach: 79.43, OrderLineNumber: 2}},
		detail:   &orderdto.OrderDetailDTO{OrderNumber: 10417, ProductCode: "S10_1678"},
	}
	handler := newTestOrderHandler(svc)

	c, w := testutil.NewTestContext("/orders/10417/customer")
	testutil.SetURLParam(c, "id", "10417")
	handler.GetOrderCustomer(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var cust customerdto.CustomerDTO
	_, err := testutil.ParseData(w, &cust)
	require.NoError(t, err)
	assert.Equal(t, int64(141), cust.CustomerNumber)

	c, w = testutil.NewTestContext("/orders/10417/details")
	testutil.SetURLParam(c, "id", "10417")
	handler.ListOrderDetails(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ListDetails", svc.called)

	c, w = testutil.NewTestContext("/orders/10417/details/S10_1678")
	testutil.SetURLParam(c, "id", "10417")
	testutil.SetURLParam(c, "productCode", "S10_1678")
	handler.GetOrderDetail(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S10_1678", svc.gotProduct)
}
