package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "classicmodels/internal/application/catalog/dto"
	"classicmodels/internal/domain/product"
	"classicmodels/internal/interfaces/http/handlers/testutil"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

type fakeCatalogService struct {
	products []*catalogdto.ProductDTO
	product  *catalogdto.ProductDTO
	lines    []*catalogdto.ProductLineDTO
	line     *catalogdto.ProductLineDTO
	err      error

	called    string
	gotFilter product.Filter
	gotPage   query.PageRequest
	gotKey    string
}

func (f *fakeCatalogService) FindProducts(
	ctx context.Context,
	filter product.Filter,
	page query.PageRequest,
) (*query.Page[*catalogdto.ProductDTO], error) {
	f.called, f.gotFilter, f.gotPage = "FindProducts", filter, page
	if f.err != nil {
		return nil, f.err
	}
	return query.NewPage(f.products, page, int64(len(f.products))), nil
}

func (f *fakeCatalogService) GetProduct(ctx context.Context, code string) (*catalogdto.ProductDTO, error) {
	f.called, f.gotKey = "GetProduct", code
	return f.product, f.err
}

func (f *fakeCatalogService) GetProductLineOf(ctx context.Context, code string) (*catalogdto.ProductLineDTO, error) {
	f.called, f.gotKey = "GetProductLineOf", code
	return f.line, f.err
}

func (f *fakeCatalogService) ListProductLines(ctx context.Context) ([]*catalogdto.ProductLineDTO, error) {
	f.called = "ListProductLines"
	return f.lines, f.err
}

func (f *fakeCatalogService) GetProductLine(ctx context.Context, id string) (*catalogdto.ProductLineDTO, error) {
	f.called, f.gotKey = "GetProductLine", id
	return f.line, f.err
}

func newTestCatalogHandler(svc *fakeCatalogService) *CatalogHandler {
	return NewCatalogHandler(svc, testutil.NewMockLogger())
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("filtered by line", func(t *testing.T) {
		svc := &fakeCatalogService{products: []*catalogdto.ProductDTO{{ProductCode: "S10_1678", ProductLine: "Motorcycles"}}}
		handler := newTestCatalogHandler(svc)
		c, w := testutil.NewTestContext("/products")
		testutil.SetQueryParams(c, map[string]string{"productLine": "Motorcycles", "perPage": "5"})

		handler.ListProducts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Motorcycles", svc.gotFilter.ProductLine)
		assert.Equal(t, 5, svc.gotPage.Size)

		var got query.Page[catalogdto.ProductDTO]
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		require.Len(t, got.Content, 1)
		assert.Equal(t, "S10_1678", got.Content[0].ProductCode)
	})

	t.Run("over-long line rejected", func(t *testing.T) {
		svc := &fakeCatalogService{}
		handler := newTestCatalogHandler(svc)
		c, w := testutil.NewTestContext("/products")
		testutil.SetQueryParams(c, map[string]string{"productLine": strings.Repeat("x", 51)})

		handler.ListProducts(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.called)
	})
}

func TestCatalogHandler_ProductLines(t *testing.T) {
	svc := &fakeCatalogService{
		lines: []*catalogdto.ProductLineDTO{{ProductLine: "Planes", HTMLDescription: "<p>Planes</p>"}},
		line:  &catalogdto.ProductLineDTO{ProductLine: "Planes", HTMLDescription: "<p>Planes</p>", HasImage: false},
	}
	handler := newTestCatalogHandler(svc)

	c, w := testutil.NewTestContext("/product-lines")
	handler.ListProductLines(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext("/product-lines/Planes")
	testutil.SetURLParam(c, "id", "Planes")
	handler.GetProductLine(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var line catalogdto.ProductLineDTO
	_, err := testutil.ParseData(w, &line)
	require.NoError(t, err)
	assert.Equal(t, "<p>Planes</p>", line.HTMLDescription)

	c, w = testutil.NewTestContext("/products/S18_1662/product-line")
	testutil.SetURLParam(c, "code", "S18_1662")
	handler.GetProductProductLine(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S18_1662", svc.gotKey)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	svc := &fakeCatalogService{err: errors.NewNotFoundError("product not found")}
	handler := newTestCatalogHandler(svc)
	c, w := testutil.NewTestContext("/products/NOPE")
	testutil.SetURLParam(c, "code", "NOPE")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}
