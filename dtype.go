package smemlayout

import (
	"strings"

	"github.com/QuangTung97/smemlayout/errors"
)

// Dtype is an element type stored in a pool
type Dtype uint8

const (
	DtypeFp32 Dtype = iota + 1
	DtypeFp16
	DtypeBf16
	DtypeE4m3
	DtypeE2m1
	DtypeUInt32
)

var dtypeNames = map[Dtype]string{
	DtypeFp32:   "fp32",
	DtypeFp16:   "fp16",
	DtypeBf16:   "bf16",
	DtypeE4m3:   "e4m3",
	DtypeE2m1:   "e2m1",
	DtypeUInt32: "uint32",
}

var dtypeBits = map[Dtype]int{
	DtypeFp32:   32,
	DtypeFp16:   16,
	DtypeBf16:   16,
	DtypeE4m3:   8,
	DtypeE2m1:   4,
	DtypeUInt32: 32,
}

// Bits returns the width of one element, or 0 for an unknown dtype
func (d Dtype) Bits() int {
	return dtypeBits[d]
}

func (d Dtype) String() string {
	if name, ok := dtypeNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDtype ...
func ParseDtype(s string) (Dtype, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range dtypeNames {
		if n == name {
			return d, nil
		}
	}
	return 0, errors.New(errors.PhaseLoad, errors.KindInvalidData).
		Value(s).
		Detail("unknown dtype %q", s).
		Build()
}

// UnitsFor returns how many pool units count elements of dt occupy, rounding
// down. unitBits is 8 for byte-addressed pools and 32 for column-addressed
// tensor memory.
func UnitsFor(count int, dt Dtype, unitBits int) (int, error) {
	if unitBits <= 0 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidSize).
			Value(unitBits).
			Detail("unit bits %d must be positive", unitBits).
			Build()
	}
	if dt.Bits() == 0 {
		return 0, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Value(dt).
			Detail("unknown dtype %d", uint8(dt)).
			Build()
	}
	return NewRational(uint64(dt.Bits()), uint64(unitBits)).MulInt(count)
}

// MustUnitsFor is like UnitsFor but panics on error
func MustUnitsFor(count int, dt Dtype, unitBits int) int {
	units, err := UnitsFor(count, dt, unitBits)
	if err != nil {
		panic(err)
	}
	return units
}
