package mapper

import "fmt"

// MapSlice applies a mapper function to each element of a slice.
// A nil input yields an empty, non-nil slice so JSON renders [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper function that may return an error to each element.
// Returns early if any mapping fails.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

// MapSliceWithKey maps like MapSliceWithError and includes the item key in
// error messages.
func MapSliceWithKey[T any, R any, K any](
	items []T,
	mapFunc func(T) (R, error),
	getKey func(T) K,
) ([]R, error) {
	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item %v: %w", getKey(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
