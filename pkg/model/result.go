package model

import "fmt"

// Scalar converts a FirstChild result to T. It reports false when the result
// is absent or has a different type.
func Scalar[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// Sequence converts a list result to []T. A nil result is an empty sequence.
func Sequence[T any](v any) ([]T, error) {
	if v == nil {
		return []T{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("result is %T, not a sequence", v)
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		t, ok := item.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("element %d is %T, not %T", i, item, zero)
		}
		out = append(out, t)
	}
	return out, nil
}

// Positional returns values[i] as T for Constructor implementations. A
// missing index or nil value yields the zero T; any other type mismatch is an
// error.
func Positional[T any](values []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(values) || values[i] == nil {
		return zero, nil
	}
	t, ok := values[i].(T)
	if !ok {
		return zero, fmt.Errorf("argument %d is %T, want %T", i, values[i], zero)
	}
	return t, nil
}
