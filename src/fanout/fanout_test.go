package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/ironsmile/lyricount/src/assert"
	"github.com/ironsmile/lyricount/src/fanout"
	"github.com/ironsmile/lyricount/src/music"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestMapKeepsOrder makes sure results are aligned with their items no matter in
// which order the calls finish.
func TestMapKeepsOrder(t *testing.T) {
	items := []int{50, 10, 40, 0, 30, 20}

	results := fanout.Map(context.Background(), 0, items,
		func(_ context.Context, ms int) string {
			time.Sleep(time.Duration(ms) * time.Millisecond)
			return fmt.Sprintf("slept %d", ms)
		},
	)

	expected := []string{
		"slept 50", "slept 10", "slept 40", "slept 0", "slept 30", "slept 20",
	}
	if diff := cmp.Diff(expected, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

// TestMapFailuresDoNotAbort checks that N items always produce N results,
// regardless of how many of them failed.
func TestMapFailuresDoNotAbort(t *testing.T) {
	titles := []string{"Creep", "Karma Police", "No Surprises", "Airbag", "Lucky"}

	for failEvery := 1; failEvery <= len(titles)+1; failEvery++ {
		var calls atomic.Int32
		results := fanout.Map(context.Background(), 2, titles,
			func(_ context.Context, title string) music.WordCount {
				n := int(calls.Add(1))
				if n%failEvery == 0 {
					return music.Absent(title, music.ErrNetwork)
				}
				return music.Found(title, len(title))
			},
		)

		assert.Equal(t, len(titles), len(results), "fail every %d", failEvery)
		assert.Equal(t, int32(len(titles)), calls.Load(), "fail every %d", failEvery)
		for i, result := range results {
			assert.Equal(t, titles[i], result.Title)
			if result.Present {
				assert.Equal(t, len(titles[i]), result.Words)
			} else if !errors.Is(result.Reason, music.ErrNetwork) {
				t.Errorf("unexpected reason: %v", result.Reason)
			}
		}
	}
}

// TestMapLimit makes sure no more than `limit` calls are running at once and
// that the limit is actually reached.
func TestMapLimit(t *testing.T) {
	const limit = 3

	var (
		running atomic.Int32
		peak    atomic.Int32
	)

	items := make([]int, 20)
	fanout.Map(context.Background(), limit, items, func(_ context.Context, _ int) bool {
		now := running.Add(1)
		defer running.Add(-1)

		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)
		return true
	})

	if peak.Load() > limit {
		t.Errorf("expected at most %d concurrent calls but there were %d", limit, peak.Load())
	}
	if peak.Load() < 2 {
		t.Errorf("calls did not run concurrently, peak was %d", peak.Load())
	}
}

// TestMapSlowItemDoesNotBlockOthers checks that a single slow call does not stop
// the other items from being processed.
func TestMapSlowItemDoesNotBlockOthers(t *testing.T) {
	release := make(chan struct{})
	var done atomic.Int32

	items := []int{0, 1, 2, 3, 4}
	finished := make(chan []int, 1)
	go func() {
		finished <- fanout.Map(context.Background(), 2, items, func(_ context.Context, i int) int {
			if i == 0 {
				<-release
			}
			done.Add(1)
			return i * i
		})
	}()

	deadline := time.After(2 * time.Second)
	for done.Load() < int32(len(items)-1) {
		select {
		case <-deadline:
			close(release)
			t.Fatalf("only %d items finished while one was blocked", done.Load())
		case <-time.After(time.Millisecond):
		}
	}

	close(release)
	results := <-finished
	if diff := cmp.Diff([]int{0, 1, 4, 9, 16}, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

// TestMapCancelled makes sure every item gets a result even when the context is
// cancelled half way and that the function sees the cancellation.
func TestMapCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	results := fanout.Map(ctx, 1, items, func(ctx context.Context, i int) error {
		if i == 3 {
			cancel()
		}
		return ctx.Err()
	})

	assert.Equal(t, len(items), len(results))
	for i, err := range results {
		if i < 3 && err != nil {
			t.Errorf("item %d: expected no error before cancellation but got %v", i, err)
		}
		if i >= 3 && !errors.Is(err, context.Canceled) {
			t.Errorf("item %d: expected %v but got %v", i, context.Canceled, err)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	results := fanout.Map(context.Background(), 4, []string(nil),
		func(context.Context, string) int {
			t.Error("function called for empty input")
			return 0
		},
	)
	assert.Equal(t, 0, len(results))
}
