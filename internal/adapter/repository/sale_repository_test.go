package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
)

func TestSortItemsByProduct(t *testing.T) {
	items := []sale.NewItemInput{
		{ProductID: "p3", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3, Discount: decimal.NewFromFloat(1.50)},
	}

	sorted := sortItemsByProduct(items)

	assert.Equal(t, "p1", sorted[0].ProductID)
	assert.Equal(t, "p2", sorted[1].ProductID)
	assert.Equal(t, "p3", sorted[2].ProductID)
	assert.True(t, sorted[1].Discount.Equal(decimal.NewFromFloat(1.50)))
}

func TestSortItemsByProduct_KeepsInputOrder(t *testing.T) {
	items := []sale.NewItemInput{
		{ProductID: "p2"},
		{ProductID: "p1"},
	}

	_ = sortItemsByProduct(items)

	assert.Equal(t, "p2", items[0].ProductID, "a ordem da requisição não deve ser alterada")
	assert.Equal(t, "p1", items[1].ProductID)
}

func TestSortItemsByProduct_InvertedOrdersConverge(t *testing.T) {
	first := sortItemsByProduct([]sale.NewItemInput{{ProductID: "a"}, {ProductID: "b"}})
	second := sortItemsByProduct([]sale.NewItemInput{{ProductID: "b"}, {ProductID: "a"}})

	assert.Equal(t, first[0].ProductID, second[0].ProductID)
	assert.Equal(t, first[1].ProductID, second[1].ProductID)
}
