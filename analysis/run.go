package analysis

import (
	"golang.org/x/sync/errgroup"
)

// runIndexed calls fn for every index in [0, n) and returns the results by index.
//
// In parallel mode every call runs in its own goroutine. When several calls fail the
// error of the lowest index is returned, matching the sequential path.
func runIndexed[T any](parallel bool, n int, fn func(i int) (T, error)) ([]T, error) {
	results := make([]T, n)

	if !parallel || n < 2 {
		for i := range n {
			r, err := fn(i)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}

		return results, nil
	}

	errs := make([]error, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			results[i], errs[i] = fn(i)
			return errs[i]
		})
	}

	if g.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}
