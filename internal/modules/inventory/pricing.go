package inventory

import "math"

// PriceWithTax returns the tax-inclusive unit price. taxRate is a percentage.
func PriceWithTax(price, taxRate float64) float64 {
	return saturate(price * (1 + taxRate/100))
}

// LineValue returns the tax-inclusive value of stock units.
func LineValue(price, taxRate, stock float64) float64 {
	return saturate(PriceWithTax(price, taxRate) * stock)
}

// Stats aggregates a product list. Nothing is rounded here.
type Stats struct {
	TotalProducts int     `json:"totalProducts" yaml:"totalProducts"`
	TotalStock    float64 `json:"totalStock" yaml:"totalStock"`
	TotalValue    float64 `json:"totalValue" yaml:"totalValue"`
}

// ComputeStats sums stock and line values. Totals that overflow are capped
// at the largest finite float64 so they stay encodable.
func ComputeStats(products []Product, taxRate float64) Stats {
	st := Stats{TotalProducts: len(products)}
	for _, p := range products {
		st.TotalStock = saturate(st.TotalStock + p.Stock.Float())
		st.TotalValue = saturate(st.TotalValue + LineValue(p.Price.Float(), taxRate, p.Stock.Float()))
	}
	return st
}

// saturate clamps infinities to ±math.MaxFloat64 and maps NaN to 0.
func saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
