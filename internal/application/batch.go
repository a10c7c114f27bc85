package application

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/qoocca/parent-pay/internal/domain"
)

// BatchOutcome is the consolidated result of a fan-out batch. Results holds
// successful values re-sorted into the caller's input ID order, with failed
// IDs omitted. Errors holds one classified error per failed ID in completion
// order. HasAuthFailure is true when any error invalidates the session.
type BatchOutcome[T any] struct {
	Results        []T
	FailedCount    int
	HasAuthFailure bool
	Errors         []*domain.AppError
}

// BatchOperation runs one independent unit of a batch.
type BatchOperation[ID comparable, T any] func(ctx context.Context, id ID) (T, error)

// RunBatch launches op once per ID, all concurrently, waits for every
// operation to terminate, and returns exactly one outcome. Individual
// failures are captured, never propagated; there is no cancellation of
// in-flight siblings. keyOf maps a successful value back to its input ID so
// results can be restored to input order at the join point.
func RunBatch[ID comparable, T any](ctx context.Context, ids []ID, keyOf func(T) ID, op BatchOperation[ID, T]) BatchOutcome[T] {
	if len(ids) == 0 {
		return BatchOutcome[T]{Results: []T{}, Errors: []*domain.AppError{}}
	}

	var (
		mu         sync.Mutex
		successes  []T
		failures   []*domain.AppError
		authFailed atomic.Int64
		wg         sync.WaitGroup
	)

	batchID := uuid.NewString()
	started := time.Now()

	for _, id := range ids {
		wg.Add(1)
		go func(id ID) {
			defer wg.Done()

			value, err := op(ctx, id)
			if err != nil {
				appErr := domain.AsAppError(err)
				if appErr.AuthFailure() {
					authFailed.Add(1)
				}
				mu.Lock()
				failures = append(failures, appErr)
				mu.Unlock()
				return
			}

			mu.Lock()
			successes = append(successes, value)
			mu.Unlock()
		}(id)
	}

	wg.Wait()

	// Join point: all operations have terminated, ordering and
	// classification run single-threaded from here.
	position := make(map[ID]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	sort.SliceStable(successes, func(i, j int) bool {
		return rankOf(position, keyOf(successes[i])) < rankOf(position, keyOf(successes[j]))
	})

	outcome := BatchOutcome[T]{
		Results:        successes,
		FailedCount:    len(failures),
		HasAuthFailure: authFailed.Load() > 0,
		Errors:         failures,
	}
	if outcome.Results == nil {
		outcome.Results = []T{}
	}
	if outcome.Errors == nil {
		outcome.Errors = []*domain.AppError{}
	}

	log.Debug().
		Str("batchId", batchID).
		Int("total", len(ids)).
		Int("failed", outcome.FailedCount).
		Bool("authFailure", outcome.HasAuthFailure).
		Dur("elapsed", time.Since(started)).
		Msg("batch completed")

	return outcome
}

func rankOf[ID comparable](position map[ID]int, id ID) int {
	if rank, ok := position[id]; ok {
		return rank
	}
	return int(^uint(0) >> 1)
}
