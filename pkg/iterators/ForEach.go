package iterators

import "go.llib.dev/frameless/pkg/errorkit"

const Break errorkit.Error = `iterators:break`

// ForEach calls fn with every element from first until last.
// Returning Break from fn stops the iteration without an error.
func ForEach[T any](first Iterator[T], last Sentinel[T], fn func(T) error) error {
	for ; !last.Equal(first); first.Next() {
		err := fn(first.Value())
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}
