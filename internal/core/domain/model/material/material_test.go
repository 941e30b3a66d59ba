package material_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/material"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterial(t *testing.T) {
	dims, err := kernel.NewMeasurements(kernel.Dimensions{Thool: decimal.NewFromInt(140)})
	require.NoError(t, err)

	m, err := material.NewMaterial("04211", "Cotton white", dims, decimal.RequireFromString("35.5"))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, "04211", m.SKU())
	assert.Equal(t, "35.50", m.Price().StringFixed(2))
	assert.True(t, m.Measurements().Thool().Equal(decimal.NewFromInt(140)))

	var unconstructed kernel.Measurements
	_, err = material.NewMaterial("", "", unconstructed, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "sku")
	assert.Contains(t, err.Error(), "price")
}
