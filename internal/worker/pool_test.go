package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

// mockGenerator simulates wallpaper generation for testing
type mockGenerator struct {
	delay     time.Duration
	failSeeds map[int64]bool // seeds that should fail
	callCount atomic.Int32
}

func (m *mockGenerator) Generate(ctx context.Context, task Task) (string, error) {
	m.callCount.Add(1)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(m.delay):
	}

	if m.failSeeds != nil && m.failSeeds[task.Seed] {
		return "", errors.New("simulated failure")
	}

	return fmt.Sprintf("/tmp/wallpaper_%d.png", task.Seed), nil
}

func TestPool_BasicExecution(t *testing.T) {
	gen := &mockGenerator{delay: 10 * time.Millisecond}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := []Task{
		{Index: 0, Seed: 100},
		{Index: 1, Seed: 101},
		{Index: 2, Seed: 102},
	}

	results := pool.Run(context.Background(), tasks)

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Unexpected error for seed %d: %v", r.Task.Seed, r.Err)
		}
		if r.Path == "" {
			t.Errorf("Expected path for seed %d, got empty", r.Task.Seed)
		}
	}

	if gen.callCount.Load() != int32(len(tasks)) {
		t.Errorf("Expected %d generator calls, got %d", len(tasks), gen.callCount.Load())
	}
}

func TestPool_Parallelism(t *testing.T) {
	// Use a longer delay to ensure parallelism is tested
	gen := &mockGenerator{delay: 50 * time.Millisecond}

	pool := New(Config{
		Workers:   4,
		Generator: gen,
	})

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = Task{Index: i, Seed: int64(i)}
	}

	start := time.Now()
	results := pool.Run(context.Background(), tasks)
	elapsed := time.Since(start)

	// With 4 workers and 8 tasks at 50ms each, should take ~100ms (2 batches)
	// Allow some margin for overhead
	maxExpected := 200 * time.Millisecond
	if elapsed > maxExpected {
		t.Errorf("Expected parallel execution in ~100ms, took %v", elapsed)
	}

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	t.Logf("Processed %d tasks with %d workers in %v", len(tasks), 4, elapsed)
}

func TestPool_ErrorHandling(t *testing.T) {
	gen := &mockGenerator{
		delay:     10 * time.Millisecond,
		failSeeds: map[int64]bool{101: true},
	}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := []Task{
		{Index: 0, Seed: 100},
		{Index: 1, Seed: 101}, // This one should fail
		{Index: 2, Seed: 102},
	}

	results := pool.Run(context.Background(), tasks)

	// Should still get all results
	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	// Count successes and failures
	var successCount, failCount int
	for _, r := range results {
		if r.Err != nil {
			failCount++
			if r.Task.Seed != 101 {
				t.Errorf("Unexpected failure for seed %d", r.Task.Seed)
			}
		} else {
			successCount++
		}
	}

	if successCount != 2 {
		t.Errorf("Expected 2 successes, got %d", successCount)
	}
	if failCount != 1 {
		t.Errorf("Expected 1 failure, got %d", failCount)
	}
}

func TestPool_Cancellation(t *testing.T) {
	gen := &mockGenerator{delay: 100 * time.Millisecond}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := make([]Task, 10)
	for i := range tasks {
		tasks[i] = Task{Index: i, Seed: int64(i)}
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel after a short time
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	results := pool.Run(ctx, tasks)
	elapsed := time.Since(start)

	// Should return early due to cancellation
	if elapsed > 200*time.Millisecond {
		t.Errorf("Expected early cancellation, took %v", elapsed)
	}

	// Some results may have errors due to cancellation
	var cancelledCount int
	for _, r := range results {
		if r.Err != nil && errors.Is(r.Err, context.Canceled) {
			cancelledCount++
		}
	}

	t.Logf("Completed with %d results (%d cancelled) in %v", len(results), cancelledCount, elapsed)
}

func TestPool_ProgressCallback(t *testing.T) {
	gen := &mockGenerator{delay: 10 * time.Millisecond}

	var progressCalls atomic.Int32
	var lastCompleted atomic.Int32

	pool := New(Config{
		Workers:   1,
		Generator: gen,
		OnProgress: func(completed, total, failed int) {
			progressCalls.Add(1)
			lastCompleted.Store(int32(completed))
		},
	})

	tasks := []Task{
		{Index: 0, Seed: 1},
		{Index: 1, Seed: 2},
	}

	pool.Run(context.Background(), tasks)

	if progressCalls.Load() != int32(len(tasks)) {
		t.Errorf("Expected %d progress calls, got %d", len(tasks), progressCalls.Load())
	}
	if lastCompleted.Load() != int32(len(tasks)) {
		t.Errorf("Expected final completed=%d, got %d", len(tasks), lastCompleted.Load())
	}
}

func TestPool_EmptyTasks(t *testing.T) {
	pool := New(Config{
		Workers:   2,
		Generator: &mockGenerator{},
	})

	if results := pool.Run(context.Background(), nil); results != nil {
		t.Errorf("Expected nil results for empty task list, got %v", results)
	}
}
