package wager

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fortunabot/fortuna/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		balance float64
		want    float64
		wantErr error
	}{
		{name: "all resolves to full balance", expr: "all", balance: 1000, want: 1000},
		{name: "half resolves to half", expr: "half", balance: 1000, want: 500},
		{name: "quarter resolves to a quarter", expr: "quarter", balance: 1000, want: 250},
		{name: "half rounds to cents", expr: "half", balance: 333.33, want: 166.67},
		{name: "literal amount", expr: "250.50", balance: 1000, want: 250.50},
		{name: "keyword case insensitive", expr: "  ALL ", balance: 42, want: 42},
		{name: "zero literal rejected", expr: "0", balance: 1000, wantErr: ErrNonPositive},
		{name: "negative literal rejected", expr: "-5", balance: 1000, wantErr: ErrNonPositive},
		{name: "over balance rejected", expr: "1001", balance: 1000, wantErr: ErrInsufficientFunds},
		{name: "garbage rejected", expr: "lots", balance: 1000, wantErr: ErrInvalidExpression},
		{name: "nan rejected", expr: "nan", balance: 1000, wantErr: ErrInvalidExpression},
		{name: "inf rejected", expr: "+Inf", balance: 1000, wantErr: ErrInvalidExpression},
		{name: "negative inf rejected", expr: "-inf", balance: 1000, wantErr: ErrInvalidExpression},
		{name: "all on empty wallet rejected", expr: "all", balance: 0, wantErr: ErrNonPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.expr, tt.balance)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_NeverExceedsBalance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.Float64Range(0.01, 1_000_000).Draw(t, "balance")
		expr := rapid.SampledFrom([]string{
			"quarter", "half", "all", "nan", "inf", "-inf",
			fmt.Sprintf("%.2f", rapid.Float64Range(0.01, 1_000_000).Draw(t, "literal")),
		}).Draw(t, "expr")

		amount, err := Resolve(expr, balance)
		if err != nil {
			return
		}
		if math.IsNaN(amount) || amount <= 0 || amount > balance {
			t.Fatalf("resolved %v outside (0, %v]", amount, balance)
		}
	})
}

func TestResolveSplit(t *testing.T) {
	t.Run("two literal bands", func(t *testing.T) {
		amounts, total, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "100",
			models.BandGold:   "50",
		}, 1000)
		require.NoError(t, err)
		assert.Equal(t, float64(150), total)
		assert.Equal(t, float64(100), amounts[models.BandBronze])
		assert.Equal(t, float64(50), amounts[models.BandGold])
	})

	t.Run("relative plus literal", func(t *testing.T) {
		amounts, total, err := ResolveSplit(map[models.Band]string{
			models.BandSilver: "half",
			models.BandGold:   "100",
		}, 1000)
		require.NoError(t, err)
		assert.Equal(t, float64(600), total)
		assert.Equal(t, float64(500), amounts[models.BandSilver])
	})

	t.Run("relative on bronze and silver rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "half",
			models.BandSilver: "half",
		}, 1000)
		assert.ErrorIs(t, err, ErrRelativeBandClash)
	})

	t.Run("relative on bronze and gold allowed", func(t *testing.T) {
		_, total, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "half",
			models.BandGold:   "quarter",
		}, 1000)
		require.NoError(t, err)
		assert.Equal(t, float64(750), total)
	})

	t.Run("relative fractions over one rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandSilver: "all",
			models.BandGold:   "half",
		}, 1000)
		assert.ErrorIs(t, err, ErrRelativeOverspend)
	})

	t.Run("three bands rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "10",
			models.BandSilver: "10",
			models.BandGold:   "10",
		}, 1000)
		assert.ErrorIs(t, err, ErrTooManyBands)
	})

	t.Run("total over balance rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "600",
			models.BandGold:   "600",
		}, 1000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("empty bets rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(nil, 1000)
		assert.ErrorIs(t, err, ErrNonPositive)
	})

	t.Run("zero band rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandGold: "0",
		}, 1000)
		assert.ErrorIs(t, err, ErrNonPositive)
	})

	t.Run("nan band rejected", func(t *testing.T) {
		_, _, err := ResolveSplit(map[models.Band]string{
			models.BandBronze: "nan",
			models.BandGold:   "100",
		}, 1000)
		assert.ErrorIs(t, err, ErrInvalidExpression)
	})
}

func TestResolveSplit_TotalWithinBalance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.Float64Range(1, 100_000).Draw(t, "balance")
		bands := rapid.SampledFrom([][]models.Band{
			{models.BandBronze},
			{models.BandGold},
			{models.BandBronze, models.BandGold},
			{models.BandSilver, models.BandGold},
		}).Draw(t, "bands")

		bets := make(map[models.Band]string, len(bands))
		for i, band := range bands {
			bets[band] = rapid.SampledFrom([]string{
				"quarter", "half", "nan", "inf",
				fmt.Sprintf("%.2f", rapid.Float64Range(0.01, 100_000).Draw(t, fmt.Sprintf("literal%d", i))),
			}).Draw(t, fmt.Sprintf("expr%d", i))
		}

		amounts, total, err := ResolveSplit(bets, balance)
		if err != nil {
			return
		}
		if math.IsNaN(total) || total <= 0 || total > balance {
			t.Fatalf("total %v outside (0, %v]", total, balance)
		}
		var sum float64
		for _, a := range amounts {
			sum += a
		}
		if diff := sum - total; diff > 0.005 || diff < -0.005 {
			t.Fatalf("per-band sum %v disagrees with total %v", sum, total)
		}
	})
}
