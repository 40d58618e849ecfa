package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather_PreservesTaskOrder(t *testing.T) {
	tasks := []Task[item]{
		{Source: "slow", Fetch: func(ctx context.Context) ([]item, error) {
			time.Sleep(30 * time.Millisecond)
			return []item{{Name: "A"}}, nil
		}},
		{Source: "fast", Fetch: func(ctx context.Context) ([]item, error) {
			return []item{{Name: "B"}}, nil
		}},
	}

	outcomes := Gather(context.Background(), time.Second, tasks)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "slow", outcomes[0].Source)
	assert.Equal(t, "fast", outcomes[1].Source)
	assert.Equal(t, ResultSet[item]{{Name: "A"}}, outcomes[0].Items)
}

func TestGather_FailureIsIsolated(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task[item]{
		{Source: "broken", Fetch: func(ctx context.Context) ([]item, error) {
			return nil, boom
		}},
		{Source: "panicky", Fetch: func(ctx context.Context) ([]item, error) {
			panic("nil map")
		}},
		{Source: "healthy", Fetch: func(ctx context.Context) ([]item, error) {
			return []item{{Name: "Lamp", Relevance: 0.6}}, nil
		}},
	}

	outcomes := Gather(context.Background(), time.Second, tasks)

	assert.ErrorIs(t, outcomes[0].Err, boom)
	assert.ErrorContains(t, outcomes[1].Err, "panic")
	assert.NoError(t, outcomes[2].Err)

	res := Reconcile(Spec{Score: ScoreRelevance, MaxResults: 5}, outcomes)
	assert.Equal(t, []string{"Lamp"}, names(res.Items))
	assert.False(t, res.AllFailed)
}

func TestGather_PerTaskTimeout(t *testing.T) {
	tasks := []Task[item]{
		{Source: "stuck", Fetch: func(ctx context.Context) ([]item, error) {
			// Ignores ctx entirely
			time.Sleep(500 * time.Millisecond)
			return []item{{Name: "Late"}}, nil
		}},
		{Source: "polite", Fetch: func(ctx context.Context) ([]item, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}},
		{Source: "quick", Fetch: func(ctx context.Context) ([]item, error) {
			return []item{{Name: "Early"}}, nil
		}},
	}

	start := time.Now()
	outcomes := Gather(context.Background(), 50*time.Millisecond, tasks)
	assert.Less(t, time.Since(start), 400*time.Millisecond)

	assert.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)
	assert.ErrorIs(t, outcomes[1].Err, context.DeadlineExceeded)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, ResultSet[item]{{Name: "Early"}}, outcomes[2].Items)
}

func TestGather_NoTasks(t *testing.T) {
	outcomes := Gather[item](context.Background(), time.Second, nil)
	assert.Empty(t, outcomes)
}
