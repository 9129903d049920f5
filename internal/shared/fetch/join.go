// Package fetch runs independent store lookups concurrently and joins
// them into a single result or a single failure.
package fetch

import (
	"context"
	"fmt"
)

// Task is one independent lookup. Tasks must not depend on one
// another's results.
type Task func(ctx context.Context) (any, error)

// Results maps task name to that task's result.
type Results map[string]any

// Join dispatches every task at once and waits for all of them, or
// returns the first error it observes without waiting for the rest.
// Late finishers drain into buffered channel capacity and are
// discarded, so an early return neither blocks them nor leaks.
func Join(ctx context.Context, tasks map[string]Task) (Results, error) {
	type outcome struct {
		name string
		val  any
		err  error
	}

	ch := make(chan outcome, len(tasks))
	for name, task := range tasks {
		go func(name string, task Task) {
			val, err := task(ctx)
			ch <- outcome{name: name, val: val, err: err}
		}(name, task)
	}

	results := make(Results, len(tasks))
	for range tasks {
		o := <-ch
		if o.err != nil {
			return nil, o.err
		}
		results[o.name] = o.val
	}
	return results, nil
}

// Get pulls a named result out of the join with its concrete type.
// Panics on a name or type mismatch, which can only be a programming
// error: Join never yields a partial map.
func Get[T any](r Results, name string) T {
	val, ok := r[name]
	if !ok {
		panic(fmt.Sprintf("fetch: no task named %q", name))
	}
	typed, ok := val.(T)
	if !ok {
		panic(fmt.Sprintf("fetch: task %q holds %T, not the requested type", name, val))
	}
	return typed
}
