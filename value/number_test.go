package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerTooAmbiguous(t *testing.T) {
	for _, tt := range []struct {
		name string
		i    Integer
		want bool
	}{
		{"bare single digit", Integer{Val: 5}, true},
		{"bare twelve", Integer{Val: 12}, true},
		{"thirteen is not ambiguous", Integer{Val: 13}, false},
		{"grained five is not ambiguous", Integer{Val: 5, Grain: 1, HasGrain: true}, false},
		{"grouped five is not ambiguous", Integer{Val: 5, Group: true}, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.i.TooAmbiguous())
		})
	}
}

func TestDurationAdd(t *testing.T) {
	d1 := Duration{Prec: Approximate}
	d2 := Duration{Prec: Exact}
	got := d1.Add(d2)
	assert.Equal(t, Approximate, got.Prec)
}
