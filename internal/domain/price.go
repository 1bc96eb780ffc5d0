package domain

// PriceRange represents an inclusive price filter over a tutor's
// lowest-priced lesson. Invariant: 0 <= Min <= Max, enforced by Normalized
type PriceRange struct {
	Min float64
	Max float64
}

// UnconstrainedPriceRange returns the full default bounds
// При таких границах фильтр цены считается выключенным
func UnconstrainedPriceRange() PriceRange {
	return PriceRange{Min: MinPriceBound, Max: MaxPriceBound}
}

// Normalized enforces the range invariant on every mutation:
// negative bounds are clamped to zero, inverted bounds are swapped.
// Своп, а не односторонний кламп: обе введенные границы сохраняются
func (r PriceRange) Normalized() PriceRange {
	min, max := r.Min, r.Max

	if min < MinPriceBound {
		min = MinPriceBound
	}
	if max < MinPriceBound {
		max = MinPriceBound
	}
	if min > max {
		min, max = max, min
	}

	return PriceRange{Min: min, Max: max}
}

// IsUnconstrained returns true if the range covers the full default bounds
func (r PriceRange) IsUnconstrained() bool {
	return r.Min <= MinPriceBound && r.Max >= MaxPriceBound
}

// InRange returns true if min <= price <= max
func (r PriceRange) InRange(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// MatchesPrice applies the filter to a possibly unknown price.
// Репетитор без цены исключается из результатов с ценовым ограничением:
// фильтр цены не проходится вакуумно. Без ограничения - включается
func (r PriceRange) MatchesPrice(price *float64) bool {
	if price == nil {
		return r.IsUnconstrained()
	}
	return r.InRange(*price)
}
