package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTotal(t *testing.T) {
	price := decimal.NewFromFloat(19.90)

	total := ItemTotal(price, 3, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromFloat(59.70)), "total %s", total)

	total = ItemTotal(price, 3, decimal.NewFromFloat(9.70))
	assert.True(t, total.Equal(decimal.NewFromFloat(50.00)), "total %s", total)
}

func TestNewItem(t *testing.T) {
	item, err := NewItem("v1", "p1", 2, decimal.NewFromFloat(10.50), decimal.NewFromFloat(1.00))
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "v1", item.SaleID)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Total.Equal(decimal.NewFromFloat(20.00)), "total %s", item.Total)
}

func TestNewItem_InvalidQuantity(t *testing.T) {
	_, err := NewItem("v1", "p1", 0, decimal.NewFromFloat(10.00), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewItem("v1", "p1", -1, decimal.NewFromFloat(10.00), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewItem_NegativeDiscount(t *testing.T) {
	_, err := NewItem("v1", "p1", 1, decimal.NewFromFloat(10.00), decimal.NewFromFloat(-0.01))
	assert.ErrorIs(t, err, ErrNegativeDiscount)
}

func TestItem_Recalculate(t *testing.T) {
	item, err := NewItem("v1", "p1", 1, decimal.NewFromFloat(10.00), decimal.Zero)
	require.NoError(t, err)

	item.Quantity = 4
	item.Discount = decimal.NewFromFloat(5.00)
	item.Recalculate()

	assert.True(t, item.Total.Equal(decimal.NewFromFloat(35.00)), "total %s", item.Total)
}

func TestNewSale(t *testing.T) {
	s, err := NewSale("c1", nil, decimal.Zero, PaymentPix, "primeira compra")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StatusCompleted, s.Status)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, PaymentPix, s.PaymentMethod)
	assert.False(t, s.IsCancelled())
}

func TestNewSale_EmptyClient(t *testing.T) {
	_, err := NewSale("", nil, decimal.Zero, PaymentCash, "")
	assert.ErrorIs(t, err, ErrEmptyClientID)
}

func TestNewSale_NegativeDiscount(t *testing.T) {
	_, err := NewSale("c1", nil, decimal.NewFromFloat(-1.00), PaymentCash, "")
	assert.ErrorIs(t, err, ErrNegativeDiscount)
}

func TestNewSale_InvalidPayment(t *testing.T) {
	_, err := NewSale("c1", nil, decimal.Zero, "cheque", "")
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestSale_AddItemAndDiscount(t *testing.T) {
	s, err := NewSale("c1", nil, decimal.NewFromFloat(5.00), PaymentCredit, "")
	require.NoError(t, err)

	first, err := NewItem("", "p1", 2, decimal.NewFromFloat(10.00), decimal.Zero)
	require.NoError(t, err)
	second, err := NewItem("", "p2", 1, decimal.NewFromFloat(30.00), decimal.NewFromFloat(2.00))
	require.NoError(t, err)

	s.AddItem(first)
	s.AddItem(second)

	assert.Equal(t, s.ID, first.SaleID)
	assert.Equal(t, s.ID, second.SaleID)
	assert.True(t, s.Total.Equal(decimal.NewFromFloat(48.00)), "total %s", s.Total)
	assert.True(t, s.SumItems().Equal(s.Total))

	s.ApplyDiscount()
	assert.True(t, s.Total.Equal(decimal.NewFromFloat(43.00)), "total %s", s.Total)
}

func TestSale_IsCancelled(t *testing.T) {
	s := &Sale{Status: StatusCancelled}
	assert.True(t, s.IsCancelled())

	s.Status = StatusCompleted
	assert.False(t, s.IsCancelled())
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentCash))
	assert.True(t, IsValidPaymentMethod(PaymentCredit))
	assert.True(t, IsValidPaymentMethod(PaymentDebit))
	assert.True(t, IsValidPaymentMethod(PaymentPix))
	assert.True(t, IsValidPaymentMethod(PaymentBankSlip))
	assert.False(t, IsValidPaymentMethod("fiado"))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("estornada"))
}
