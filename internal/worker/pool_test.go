package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

type mockJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{err: errors.New("job error")}
	}
	return &mockResult{err: nil}
}

func TestNewPool(t *testing.T) {
	if p := NewPool(5); p.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p.workers)
	}
	if p := NewPool(0); p.workers != 1 {
		t.Errorf("expected 1 worker for 0 input, got %d", p.workers)
	}
	if p := NewPool(-1); p.workers != 1 {
		t.Errorf("expected 1 worker for negative input, got %d", p.workers)
	}
}

func TestPoolRunsEveryJob(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var executed int32
	const jobs = 10
	for i := 0; i < jobs; i++ {
		pool.Submit(&mockJob{executed: &executed})
	}
	results := pool.Wait()

	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
	if n := atomic.LoadInt32(&executed); n != jobs {
		t.Errorf("expected %d executions, got %d", jobs, n)
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Submit(&mockJob{})
	pool.Submit(&mockJob{shouldErr: true})
	results := pool.Wait()

	errCount := 0
	for _, r := range results {
		if r.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 error, got %d", errCount)
	}
}

func TestPoolShutdown(t *testing.T) {
	pool := NewPool(1)
	pool.Start()
	pool.Submit(&mockJob{duration: time.Minute})
	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}
