package application

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoocca/parent-pay/internal/domain"
)

func identity(id int64) int64 { return id }

func TestRunBatchEmptyInputSkipsOperation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	outcome := RunBatch(context.Background(), nil, identity,
		func(_ context.Context, id int64) (int64, error) {
			calls.Add(1)
			return id, nil
		})

	assert.Empty(t, outcome.Results)
	assert.Zero(t, outcome.FailedCount)
	assert.False(t, outcome.HasAuthFailure)
	assert.Empty(t, outcome.Errors)
	assert.Zero(t, calls.Load(), "operation must not run for an empty batch")
}

func TestRunBatchPreservesInputOrderAndOmitsFailures(t *testing.T) {
	t.Parallel()

	ids := []int64{30, 20, 10}
	outcome := RunBatch(context.Background(), ids, identity,
		func(_ context.Context, id int64) (int64, error) {
			switch id {
			case 20:
				return 0, domain.ErrUnauthorized()
			case 30:
				// Completes last so arrival order differs from input order.
				time.Sleep(30 * time.Millisecond)
			}
			return id, nil
		})

	assert.Equal(t, []int64{30, 10}, outcome.Results)
	assert.Equal(t, 1, outcome.FailedCount)
	assert.True(t, outcome.HasAuthFailure)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, domain.ErrorKindUnauthorized, outcome.Errors[0].Kind)
}

func TestRunBatchCountsInvariant(t *testing.T) {
	t.Parallel()

	ids := []int64{1, 2, 3, 4, 5, 6, 7}
	outcome := RunBatch(context.Background(), ids, identity,
		func(_ context.Context, id int64) (int64, error) {
			if id%2 == 0 {
				return 0, domain.ErrServer(500)
			}
			return id, nil
		})

	assert.Equal(t, len(ids), len(outcome.Results)+outcome.FailedCount)
	assert.Equal(t, []int64{1, 3, 5, 7}, outcome.Results)
	assert.Equal(t, 3, outcome.FailedCount)
	assert.False(t, outcome.HasAuthFailure)
}

func TestRunBatchAuthFailureOnlyForAuthKinds(t *testing.T) {
	t.Parallel()

	outcome := RunBatch(context.Background(), []int64{1, 2, 3}, identity,
		func(_ context.Context, id int64) (int64, error) {
			return 0, domain.ErrNetwork()
		})

	assert.Equal(t, 3, outcome.FailedCount)
	assert.False(t, outcome.HasAuthFailure, "network-only failures must not invalidate the session")
	assert.Empty(t, outcome.Results)

	outcome = RunBatch(context.Background(), []int64{1, 2, 3}, identity,
		func(_ context.Context, id int64) (int64, error) {
			if id == 2 {
				return 0, domain.ErrForbidden()
			}
			return id, nil
		})

	assert.True(t, outcome.HasAuthFailure, "one forbidden item poisons the batch flag")
}

func TestRunBatchRejectingEveryIDLeavesResultsEmpty(t *testing.T) {
	t.Parallel()

	ids := []int64{11, 22, 33}
	outcome := RunBatch(context.Background(), ids, identity,
		func(_ context.Context, _ int64) (int64, error) {
			return 0, domain.ErrServer(503)
		})

	assert.Empty(t, outcome.Results)
	assert.Equal(t, len(ids), outcome.FailedCount)
	assert.Len(t, outcome.Errors, len(ids))
}

func TestRunBatchUnclassifiedErrorsFoldIntoUnknown(t *testing.T) {
	t.Parallel()

	outcome := RunBatch(context.Background(), []int64{1}, identity,
		func(_ context.Context, _ int64) (int64, error) {
			return 0, assert.AnError
		})

	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, domain.ErrorKindUnknown, outcome.Errors[0].Kind)
	assert.ErrorIs(t, outcome.Errors[0].Cause, assert.AnError)
}

func TestRunBatchManyConcurrentOperations(t *testing.T) {
	t.Parallel()

	const total = 200
	ids := make([]int64, 0, total)
	for i := int64(1); i <= total; i++ {
		ids = append(ids, i)
	}

	var invocations atomic.Int64
	outcome := RunBatch(context.Background(), ids, identity,
		func(_ context.Context, id int64) (int64, error) {
			invocations.Add(1)
			time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
			if id%10 == 0 {
				return 0, domain.ErrServer(500)
			}
			return id, nil
		})

	assert.Equal(t, int64(total), invocations.Load(), "every ID runs exactly once")
	assert.Equal(t, total, len(outcome.Results)+outcome.FailedCount)
	assert.Equal(t, total/10, outcome.FailedCount)

	// Survivors keep strict input order.
	for i := 1; i < len(outcome.Results); i++ {
		assert.Less(t, outcome.Results[i-1], outcome.Results[i])
	}
}
