package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/infrastructure/persistence/models"
)

func TestOrderMapperRoundTrip(t *testing.T) {
	m := NewOrderMapper()
	shipped := datatypes.Date(time.Date(2005, 5, 2, 0, 0, 0, 0, time.UTC))
	comment := "Customer claims the shipment was damaged."

	row := &models.OrderModel{
		OrderNumber:    10417,
		OrderDate:      datatypes.Date(time.Date(2005, 5, 13, 0, 0, 0, 0, time.UTC)),
		RequiredDate:   datatypes.Date(time.Date(2005, 5, 19, 0, 0, 0, 0, time.UTC)),
		ShippedDate:    &shipped,
		Status:         "Disputed",
		Comments:       &comment,
		CustomerNumber: 141,
	}

	o, err := m.ToDomain(row)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDisputed, o.Status())
	assert.True(t, o.IsShipped())

	back := m.ToModel(o)
	assert.Equal(t, row.OrderNumber, back.OrderNumber)
	require.NotNil(t, back.ShippedDate)
	assert.Equal(t, time.Time(shipped), time.Time(*back.ShippedDate))
}

func TestOrderMapperListNamesFailingRow(t *testing.T) {
	_, err := NewOrderMapper().ToDomainList([]models.OrderModel{
		{OrderNumber: 10100, CustomerNumber: 363},
		{OrderNumber: 10101, CustomerNumber: 0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10101")
}

func TestProductLineMapperDereferencesDescriptions(t *testing.T) {
	text := "Our motorcycles are state of the art replicas"
	line, err := NewProductMapper().LineToDomain(&models.ProductLineModel{
		ProductLine:     "Motorcycles",
		TextDescription: &text,
	})
	require.NoError(t, err)
	assert.Equal(t, text, line.TextDescription())
	assert.Empty(t, line.HTMLDescription())
}
