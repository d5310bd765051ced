package api

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/dynprog/knapsack"
)

var (
	// ErrMalformed indicates a request body or argument that is not the
	// expected JSON shape.
	ErrMalformed = errors.New("api: malformed input")

	// ErrLimitExceeded indicates an input larger than the configured limits.
	ErrLimitExceeded = errors.New("api: input exceeds configured limit")
)

// DecodeItems parses a JSON array of knapsack items. Each element is
// either an object {"weight": w, "value": v} or a pair [w, v]. Weights
// must be integral; sign checks are left to the knapsack package.
func DecodeItems(raw gjson.Result) ([]knapsack.Item, error) {
	if !raw.Exists() {
		return nil, nil
	}
	if !raw.IsArray() {
		return nil, fmt.Errorf("items must be an array: %w", ErrMalformed)
	}

	elems := raw.Array()
	items := make([]knapsack.Item, 0, len(elems))
	for i, v := range elems {
		var w, val gjson.Result
		switch {
		case v.IsObject():
			w, val = v.Get("weight"), v.Get("value")
		case v.IsArray() && len(v.Array()) == 2:
			pair := v.Array()
			w, val = pair[0], pair[1]
		default:
			return nil, fmt.Errorf("items[%d]: want {weight,value} or [weight,value]: %w", i, ErrMalformed)
		}

		weight, err := integer(w)
		if err != nil {
			return nil, fmt.Errorf("items[%d].weight: %w", i, err)
		}
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("items[%d].value: not a number: %w", i, ErrMalformed)
		}
		items = append(items, knapsack.Item{Weight: weight, Value: val.Num})
	}

	return items, nil
}

// integer converts a JSON number without a fractional part to int.
func integer(v gjson.Result) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("not a number: %w", ErrMalformed)
	}
	if v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > math.MaxInt32 {
		return 0, fmt.Errorf("%v is not a valid integer: %w", v.Num, ErrMalformed)
	}

	return int(v.Num), nil
}
