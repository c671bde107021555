package offer

import (
	"strings"

	"github.com/shopspring/decimal"

	"issuance-engine/internal/pkg/errs"
)

var (
	ErrNoItems          = errs.New("offer must have at least one item")
	ErrInvalidQuantity  = errs.New("item quantity must be positive")
	ErrNegativePrice    = errs.New("item price cannot be negative")
	ErrInvalidDiscount  = errs.New("item discount must be between 0 and 100")
	ErrInvalidTaxRate   = errs.New("item tax rate must be between 0 and 100")
	ErrEmptyDescription = errs.New("item description is required")
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Discount    decimal.Decimal // percent
	TaxRate     decimal.Decimal // percent
}

func NewLineItem(description string, quantity, price, discount, taxRate decimal.Decimal) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, errs.InvalidArgument(ErrEmptyDescription)
	}
	if !quantity.IsPositive() {
		return LineItem{}, errs.InvalidArgument(ErrInvalidQuantity)
	}
	if price.IsNegative() {
		return LineItem{}, errs.InvalidArgument(ErrNegativePrice)
	}
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return LineItem{}, errs.InvalidArgument(ErrInvalidDiscount)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return LineItem{}, errs.InvalidArgument(ErrInvalidTaxRate)
	}
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Discount:    discount,
		TaxRate:     taxRate,
	}, nil
}

// Subtotal is quantity*price*(1-discount/100), rounded to cents.
func (i LineItem) Subtotal() decimal.Decimal {
	factor := hundred.Sub(i.Discount).Div(hundred)
	return i.Quantity.Mul(i.Price).Mul(factor).Round(moneyPlaces)
}

// Tax is computed on the already rounded subtotal.
func (i LineItem) Tax() decimal.Decimal {
	return i.Subtotal().Mul(i.TaxRate).Div(hundred).Round(moneyPlaces)
}

func (i LineItem) Total() decimal.Decimal {
	return i.Subtotal().Add(i.Tax())
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func ComputeTotals(items []LineItem) Totals {
	t := Totals{Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero}
	for _, it := range items {
		t.Subtotal = t.Subtotal.Add(it.Subtotal())
		t.Tax = t.Tax.Add(it.Tax())
	}
	t.Total = t.Subtotal.Add(t.Tax)
	return t
}

// EffectiveTaxRate is tax/subtotal as a percentage, 0 for a zero subtotal.
func (t Totals) EffectiveTaxRate() decimal.Decimal {
	if t.Subtotal.IsZero() {
		return decimal.Zero
	}
	return t.Tax.Div(t.Subtotal).Mul(hundred).Round(moneyPlaces)
}
