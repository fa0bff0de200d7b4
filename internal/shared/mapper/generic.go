// Package mapper holds small generic helpers for converting between layers.
package mapper

// MapSlice applies fn to every item. A nil input yields an empty, non-nil
// slice so JSON renders [] instead of null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapRefs is MapSlice over pointers into items, for converting value slices
// loaded by GORM without copying each row.
func MapRefs[T any, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
