package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNumbers(t *testing.T) {
	t.Run("two hundred and five is an integer", func(t *testing.T) {
		v, err := ComposeNumbers(Integer{Val: 200, Grain: 2, HasGrain: true}, Integer{Val: 5})
		require.NoError(t, err)
		assert.Equal(t, Integer{Val: 205}, v)
	})

	t.Run("float operand yields a float", func(t *testing.T) {
		v, err := ComposeNumbers(Integer{Val: 200, Grain: 2, HasGrain: true}, Float{Val: 5.5})
		require.NoError(t, err)
		assert.Equal(t, Float{Val: 205.5}, v)
	})

	t.Run("rejects composition that overflows the grain", func(t *testing.T) {
		_, err := ComposeNumbers(Integer{Val: 200, Grain: 2, HasGrain: true}, Integer{Val: 500})
		assert.Error(t, err)
	})

	t.Run("rejects a non-number operand", func(t *testing.T) {
		_, err := ComposeNumbers(AmountOfMoney{Val: 1}, Integer{Val: 1})
		assert.Error(t, err)
	})
}

func TestComposeMoney(t *testing.T) {
	got := ComposeMoney(AmountOfMoney{Val: 20, Unit: "$"}, AmountOfMoney{Val: 50, Unit: "$"})
	assert.Equal(t, AmountOfMoney{Val: 20.5, Unit: "$"}, got)
}

func TestComposeMoneyNumber(t *testing.T) {
	got, err := ComposeMoneyNumber(AmountOfMoney{Val: 20, Unit: "$"}, Integer{Val: 50})
	require.NoError(t, err)
	assert.Equal(t, AmountOfMoney{Val: 20.5, Unit: "$"}, got)

	_, err = ComposeMoneyNumber(AmountOfMoney{Val: 20, Unit: "$"}, AmountOfMoney{Val: 1})
	assert.Error(t, err)
}

func TestDecimalHourInMinute(t *testing.T) {
	for _, tt := range []struct {
		hour, frac string
		want       int64
	}{
		{"1", "5", 90},
		{"1", "55", 93},
		{"2", "25", 135},
	} {
		got, err := DecimalHourInMinute(tt.hour, tt.frac)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s.%s", tt.hour, tt.frac)
	}
}

func TestHourRelativeMinute(t *testing.T) {
	for _, tt := range []struct {
		name               string
		hour, minute       int
		is12Clock          bool
		wantHour, wantMin  int
	}{
		{"non-negative minute passes through", 9, 15, false, 9, 15},
		{"24-clock borrows across hour 1", 1, -5, false, 0, 55},
		{"24-clock borrows across hour 0", 0, -5, false, 23, 55},
		{"12-clock wraps hour 1 to noon", 1, -5, true, 12, 55},
		{"mid-range borrow", 9, -10, false, 8, 50},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, m := HourRelativeMinute(tt.hour, tt.minute, tt.is12Clock)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMin, m)
		})
	}
}

func TestComputerEaster(t *testing.T) {
	for _, tt := range []struct {
		year, month, day int
	}{
		{2017, 4, 16},
		{2018, 4, 1},
		{2019, 4, 21},
	} {
		y, m, d := ComputerEaster(tt.year)
		assert.Equal(t, tt.year, y)
		assert.Equal(t, tt.month, m)
		assert.Equal(t, tt.day, d)
	}
}
