package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SearchService/pkg/ptr"
)

func TestPriceRangeInRangeBoundaries(t *testing.T) {
	r := UnconstrainedPriceRange()

	require.True(t, r.InRange(0))
	require.True(t, r.InRange(500))
	require.True(t, r.InRange(1_000_000))
	require.False(t, r.InRange(-1))
	require.False(t, r.InRange(1_000_001))
}

func TestPriceRangeNormalizedSwapsInvertedBounds(t *testing.T) {
	r := PriceRange{Min: 300, Max: 100}.Normalized()

	require.Equal(t, PriceRange{Min: 100, Max: 300}, r)
}

func TestPriceRangeNormalizedClampsNegative(t *testing.T) {
	r := PriceRange{Min: -50, Max: 200}.Normalized()

	require.Equal(t, PriceRange{Min: 0, Max: 200}, r)
}

func TestPriceRangeIsUnconstrained(t *testing.T) {
	require.True(t, UnconstrainedPriceRange().IsUnconstrained())
	require.False(t, PriceRange{Min: 0, Max: 500}.IsUnconstrained())
	require.False(t, PriceRange{Min: 10, Max: MaxPriceBound}.IsUnconstrained())
}

func TestMatchesPriceUnknownPricePolicy(t *testing.T) {
	// Репетитор без цены проходит только безлимитный фильтр
	require.True(t, UnconstrainedPriceRange().MatchesPrice(nil))
	require.False(t, PriceRange{Min: 0, Max: 500}.MatchesPrice(nil))
}

func TestMatchesPriceKnownPrice(t *testing.T) {
	r := PriceRange{Min: 100, Max: 500}

	require.True(t, r.MatchesPrice(ptr.Ptr(100.0)))
	require.True(t, r.MatchesPrice(ptr.Ptr(500.0)))
	require.False(t, r.MatchesPrice(ptr.Ptr(99.99)))
	require.False(t, r.MatchesPrice(ptr.Ptr(500.01)))
}
