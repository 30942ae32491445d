package smemlayout

import (
	"math"
	"math/bits"

	"github.com/QuangTung97/smemlayout/errors"
)

// Rational ...
type Rational struct {
	Nominator   uint64
	Denominator uint64
}

// NewRational ...
func NewRational(nominator uint64, denominator uint64) Rational {
	return Rational{
		Nominator:   nominator,
		Denominator: denominator,
	}
}

// MulInt scales v by the ratio, truncating toward zero. The product is
// computed in 128 bits, so only a result that does not fit in int overflows.
func (r Rational) MulInt(v int) (int, error) {
	if v < 0 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidSize).
			Value(v).
			Detail("value %d is negative", v).
			Build()
	}
	if r.Denominator == 0 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidSize).
			Detail("ratio %d/0 has a zero denominator", r.Nominator).
			Build()
	}

	hi, lo := bits.Mul64(uint64(v), r.Nominator)
	if hi >= r.Denominator {
		return 0, mulOverflowError(v, r)
	}
	q, _ := bits.Div64(hi, lo, r.Denominator)
	if q > math.MaxInt {
		return 0, mulOverflowError(v, r)
	}
	return int(q), nil
}

func mulOverflowError(v int, r Rational) error {
	return errors.New(errors.PhaseConfig, errors.KindOverflow).
		Value(v).
		Detail("%d * %d / %d overflows int", v, r.Nominator, r.Denominator).
		Build()
}
