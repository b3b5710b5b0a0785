// Package ptr builds pointers for optional model fields such as resource limits.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Int returns a pointer to the given int, for limits like Server.CPULimit.
func Int(i int) *int {
	return &i
}
