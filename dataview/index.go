package dataview

import (
	"math"

	"github.com/shaunstanislauslau/hermes"
	"github.com/shaunstanislauslau/hermes/errors"
)

// MaxIndex is the largest valid index argument, 2^53-1.
const MaxIndex = 1<<53 - 1

// toNumber performs the observable numeric coercion of an argument.
// Plain Go numerics convert directly; a NumberCoercer runs to completion,
// side effects and all, before the caller validates anything; everything
// else coerces to NaN.
func toNumber(v hermes.Value) (float64, error) {
	switch n := v.(type) {
	case hermes.NumberCoercer:
		return n.ToNumber()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return math.NaN(), nil
}

// ToIndex converts an arbitrary argument into a safe non-negative integer
// index. Coercion runs first and may execute arbitrary re-entrant code; the
// caller must not have performed any liveness or bounds check it intends to
// rely on afterwards. nil stands for an absent argument and yields 0.
//
// The coerced number is rejected with an index_range error when it is NaN,
// negative, non-integral, or above MaxIndex. Coercer failures propagate
// unchanged.
func ToIndex(v hermes.Value) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	n, err := toNumber(v)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(n):
		return 0, errors.IndexRange(n, "index is NaN")
	case n < 0:
		return 0, errors.IndexRange(n, "index must be non-negative")
	case n != math.Trunc(n):
		return 0, errors.IndexRange(n, "index must be an integer")
	case n > MaxIndex:
		return 0, errors.IndexRange(n, "index exceeds 2^53-1")
	}
	return uint64(n), nil
}
