package queue

import (
	"strconv"
	"sync"
	"testing"

	"github.com/reeveci/textqueue/alloc"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestSync(t *testing.T) {
	tracking := alloc.NewTracking(1)
	q, err := New(WithAllocator(tracking))
	assert.NotError(t, err)

	s := Sync(q)

	var wg sync.WaitGroup
	for w := 0; w < 8; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i += 1 {
				if i%2 == 0 {
					s.InsertTail(strconv.Itoa(w))
				} else {
					s.InsertHead(strconv.Itoa(w))
				}
			}
		}(w)
	}
	wg.Wait()

	check.Equal(t, 800, s.Size())
	check.NotError(t, q.Verify())

	s.Sort()
	s.Reverse()
	check.NotError(t, q.Verify())

	wg.Add(4)
	for w := 0; w < 4; w += 1 {
		go func() {
			defer wg.Done()
			buf := make([]byte, 4)
			for i := 0; i < 100; i += 1 {
				s.RemoveHead(buf)
				s.Pop()
			}
		}()
	}
	wg.Wait()

	check.Equal(t, 0, s.Size())
	q.Free()
	check.NotError(t, tracking.Check())
}
