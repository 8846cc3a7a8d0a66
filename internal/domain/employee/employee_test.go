package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructEmployee(t *testing.T) {
	manager := int64(1102)

	e, err := ReconstructEmployee(1501, "Bott", "Larry", "x2311", "lbott@classicmodelcars.com", "7", &manager, "Sales Rep")
	require.NoError(t, err)
	assert.Equal(t, "Larry Bott", e.FullName())
	assert.True(t, e.HasManager())
	assert.Equal(t, int64(1102), *e.ReportsTo())

	president, err := ReconstructEmployee(1002, "Murphy", "Diane", "x5800", "dmurphy@classicmodelcars.com", "1", nil, "President")
	require.NoError(t, err)
	assert.False(t, president.HasManager())
}

func TestReconstructEmployeeRejectsInvalidState(t *testing.T) {
	self := int64(1501)

	_, err := ReconstructEmployee(1501, "Bott", "Larry", "", "", "7", &self, "")
	assert.Error(t, err)

	_, err = ReconstructEmployee(1501, "Bott", "Larry", "", "", "", nil, "")
	assert.Error(t, err)

	_, err = ReconstructEmployee(0, "Bott", "Larry", "", "", "7", nil, "")
	assert.Error(t, err)
}
