package queue

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/textqueue/alloc"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q, err := New()
		assert.NotError(t, err)
		check.True(t, q.allocator == alloc.Heap)
		check.True(t, q.logger != nil)
	})

	t.Run("NilOptionsIgnored", func(t *testing.T) {
		q, err := New(WithAllocator(nil), WithLogger(nil))
		assert.NotError(t, err)
		check.True(t, q.allocator == alloc.Heap)
		check.True(t, q.logger != nil)
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("QUEUE_LOG_LEVEL", "trace")
		t.Setenv("QUEUE_TRACK_ALLOCATIONS", "true")
		t.Setenv("QUEUE_ALLOC_FAIL_PROBABILITY", "0")

		q, err := New(OptionsFromEnv()...)
		assert.NotError(t, err)

		tracking, ok := q.allocator.(*alloc.Tracking)
		assert.True(t, ok)
		check.True(t, q.logger.IsTrace())

		q.InsertTail("a")
		check.Equal(t, 3, tracking.Outstanding())
	})

	t.Run("FromEnvUnset", func(t *testing.T) {
		t.Setenv("QUEUE_LOG_LEVEL", "")
		t.Setenv("QUEUE_TRACK_ALLOCATIONS", "")

		check.Equal(t, 0, len(OptionsFromEnv()))
	})

	t.Run("LogsAllocationFailure", func(t *testing.T) {
		var out bytes.Buffer
		logger := hclog.New(&hclog.LoggerOptions{Name: "queue", Level: hclog.Debug, Output: &out})

		tracking := alloc.NewTracking(1)
		q, err := New(WithAllocator(tracking), WithLogger(logger))
		assert.NotError(t, err)

		tracking.FailAfter = 0
		check.True(t, !q.InsertTail("lost"))
		check.True(t, bytes.Contains(out.Bytes(), []byte("insert tail failed")))
	})
}
