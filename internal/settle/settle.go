// Package settle runs independent operations concurrently and waits for all of
// them, reporting each one's result or error instead of failing fast.
package settle

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Outcome is the settled result of one operation.
type Outcome[R any] struct {
	Value R
	Err   error
}

// OK reports whether the operation succeeded.
func (o Outcome[R]) OK() bool {
	return o.Err == nil
}

// All calls fn for every item and waits for every call to return.
// Outcomes are index-aligned with items. A failing or panicking call never
// cancels the others. limit bounds concurrency; limit <= 0 means unbounded.
func All[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			outcomes[i] = run(ctx, item, fn)
			// Never report the error to the group; that would only surface the first one.
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func run[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (out Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome[R]{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Outcome[R]{Err: err}
	}
	v, err := fn(ctx, item)
	return Outcome[R]{Value: v, Err: err}
}

// Fulfilled returns the values of the successful outcomes, in order.
func Fulfilled[R any](outcomes []Outcome[R]) []R {
	values := make([]R, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			values = append(values, o.Value)
		}
	}
	return values
}

// Rejected returns the errors of the failed outcomes, in order.
func Rejected[R any](outcomes []Outcome[R]) []error {
	var errs []error
	for _, o := range outcomes {
		if !o.OK() {
			errs = append(errs, o.Err)
		}
	}
	return errs
}
