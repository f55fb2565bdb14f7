package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Ração Premium 10kg", decimal.NewFromFloat(149.90))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, StatusActive, p.Status)
	assert.Equal(t, 0, p.Stock)
	assert.True(t, p.IsActive())
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", decimal.NewFromFloat(10.00))
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Coleira", decimal.NewFromFloat(-1.00))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestProduct_AdjustStock(t *testing.T) {
	p := &Product{Stock: 10}

	require.NoError(t, p.AdjustStock(5))
	assert.Equal(t, 15, p.Stock)

	require.NoError(t, p.AdjustStock(-15))
	assert.Equal(t, 0, p.Stock)
}

func TestProduct_AdjustStock_Insufficient(t *testing.T) {
	p := &Product{Stock: 3}

	err := p.AdjustStock(-4)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, p.Stock, "o estoque não deve mudar quando o ajuste falha")
}

func TestProduct_HasStock(t *testing.T) {
	p := &Product{Stock: 5}

	assert.True(t, p.HasStock(5))
	assert.True(t, p.HasStock(1))
	assert.False(t, p.HasStock(6))
}

func TestProduct_IsLowStock(t *testing.T) {
	p := &Product{Stock: 5, MinStock: 5}
	assert.True(t, p.IsLowStock(), "estoque igual ao mínimo conta como baixo")

	p.Stock = 6
	assert.False(t, p.IsLowStock())

	p.Stock = 2
	assert.True(t, p.IsLowStock())
}
