package value

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// numVal extracts the numeric value and optional grain out of an
// Integer or Float, for use by ComposeNumbers.
func numVal(v Value) (val float64, grain int, hasGrain bool, isInt bool, intVal int64, ok bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n.Val), n.Grain, n.HasGrain, true, n.Val, true
	case Float:
		return n.Val, 0, false, false, 0, true
	default:
		return 0, 0, false, false, 0, false
	}
}

// ComposeNumbers implements the grammar's "compose_numbers" helper
// (spec.md §4.3, ported from original_source/values/src/helpers.rs):
// valid only if 10^grain(a) > b.Val(); the result is an Integer when
// both operands are integers, else a Float.
func ComposeNumbers(a, b Value) (Value, error) {
	aVal, aGrain, aHasGrain, aIsInt, aIntVal, aOK := numVal(a)
	bVal, _, _, bIsInt, bIntVal, bOK := numVal(b)
	if !aOK || !bOK {
		return nil, errors.New("compose_numbers: operand is not a number")
	}

	grain := 0
	if aHasGrain {
		grain = aGrain
	}
	if math.Pow(10, float64(grain)) <= bVal {
		return nil, errors.Errorf("compose_numbers: invalid composition of %v and %v", a, b)
	}

	if aIsInt && bIsInt {
		return Integer{Val: aIntVal + bIntVal}, nil
	}
	return Float{Val: aVal + bVal}, nil
}

// ComposeMoney implements "compose_money": b is interpreted as cents.
func ComposeMoney(a AmountOfMoney, b AmountOfMoney) AmountOfMoney {
	return AmountOfMoney{Val: a.Val + b.Val/100, Unit: a.Unit}
}

// ComposeMoneyNumber implements "compose_money_number": like
// ComposeMoney, but b is a bare number value already scaled by the
// grammar (e.g. "20 dollars and 50" parses 50 via the numbers
// grammar, not as a money literal).
func ComposeMoneyNumber(a AmountOfMoney, b Value) (AmountOfMoney, error) {
	bVal, _, _, _, _, ok := numVal(b)
	if !ok {
		return AmountOfMoney{}, errors.New("compose_money_number: b is not a number")
	}
	return AmountOfMoney{Val: a.Val + bVal/100, Unit: a.Unit}, nil
}

// DecimalHourInMinute implements "decimal_hour_in_minute": total
// minutes = frac*6/10^(len(frac)-1) + h*60, e.g. ("1","5") -> 90,
// ("1","55") -> 93.
func DecimalHourInMinute(hourStr, fracStr string) (int64, error) {
	h, err := strconv.ParseInt(hourStr, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "decimal_hour_in_minute: invalid hour")
	}
	f, err := strconv.ParseInt(fracStr, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "decimal_hour_in_minute: invalid fraction")
	}
	return (f*6)/int64(math.Pow10(len(fracStr)-1)) + h*60, nil
}

// HourRelativeMinute implements spec.md §3's hour_relative_minute:
// given an hour and a minute offset m in [-59, 59], normalizes to a
// valid (hour, minute) by borrowing an hour when m<0, with clock-wrap
// rules at the boundary: on a 12-clock, hour 0 wraps to 23 and hour 1
// wraps to 12; on a 24-clock, hour 0 wraps to 23 and hour 1 wraps to 0.
func HourRelativeMinute(hour, minute int, is12Clock bool) (int, int) {
	if minute >= 0 {
		return hour, minute
	}

	m := minute + 60
	switch hour {
	case 0:
		return 23, m
	case 1:
		if is12Clock {
			return 12, m
		}
		return 0, m
	default:
		return hour - 1, m
	}
}

// ComputerEaster implements spec.md §4.3's Gauss/Butcher algorithm for
// the date of Easter Sunday in the Western (Gregorian) calendar.
// computer_easter(2017) == (2017, 4, 16); (2018) == (2018, 4, 1);
// (2019) == (2019, 4, 21).
func ComputerEaster(year int) (y, month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = ((h+l-7*m+114)%31 + 1)
	return year, month, day
}
