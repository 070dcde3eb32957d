package carbon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecohub/internal/factors"
)

func TestCategory_Name(t *testing.T) {
	assert.Equal(t, "Goods & Waste", CategoryGoodsWaste.Name())
	assert.Equal(t, "Residential", CategoryResidential.Name())
	assert.Equal(t, "bogus", Category("bogus").Name())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("bogus").Valid())
	assert.False(t, Category("").Valid())
}

// panicInput triggers the estimation recovery path.
type panicInput struct{}

func (panicInput) Category() Category      { return CategoryTravel }
func (panicInput) Validate() []string      { return nil }
func (panicInput) Details() map[string]any { return nil }
func (panicInput) Estimate(*factors.Table) (float64, error) {
	panic("arithmetic blew up")
}

func TestEstimate_RecoversPanics(t *testing.T) {
	result, err := Estimate(panicInput{}, testTable(t))
	assert.Zero(t, result)
	require.Error(t, err)

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, CategoryTravel, calcErr.Category)
	assert.Contains(t, calcErr.Error(), "Travel")
	assert.Contains(t, calcErr.Error(), "arithmetic blew up")
}

func TestEstimate_DelegatesToInput(t *testing.T) {
	in := &TravelInput{
		Mode:     ModeCar,
		Distance: "50",
		Period:   PeriodPerTrip,
		CarFuel:  FuelGasoline,
	}
	got, err := Estimate(in, testTable(t))
	require.NoError(t, err)
	assert.InDelta(t, 9.75, got, 0.001)
}
