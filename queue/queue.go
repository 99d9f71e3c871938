package queue

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/textqueue/alloc"
)

// Queue owns a singly linked chain of text values.
// head owns the chain, tail only aliases its last node.
// A nil or freed Queue is treated as absent by every method.
// The zero value is an empty queue on alloc.Heap with logging disabled.
type Queue struct {
	head, tail *Node
	count      int
	freed      bool

	allocator alloc.Allocator
	logger    hclog.Logger
}

// Accounting size of the queue shell; only alloc/release pairs need to agree.
const queueSize = 48

var nullLogger = hclog.NewNullLogger()

var _ Interface = (*Queue)(nil)

func New(options ...Option) (*Queue, error) {
	q := &Queue{
		allocator: alloc.Heap,
		logger:    nullLogger,
	}
	for _, option := range options {
		option(q)
	}

	if err := q.allocator.Allocate(alloc.KindQueue, queueSize); err != nil {
		q.log().Debug("cannot allocate queue", "error", err)
		return nil, fmt.Errorf("cannot create queue - %w - %w", ERROR_ALLOCATION_FAILURE, err)
	}
	return q, nil
}

func (q *Queue) memory() alloc.Allocator {
	if q.allocator == nil {
		return alloc.Heap
	}
	return q.allocator
}

func (q *Queue) log() hclog.Logger {
	if q.logger == nil {
		return nullLogger
	}
	return q.logger
}

func (q *Queue) absent() bool {
	return q == nil || q.freed
}

// Free releases every node and value, then the queue itself.
func (q *Queue) Free() {
	if q.absent() {
		return
	}

	q.log().Trace("free", "count", q.count)

	e := q.head
	for e != nil {
		next := e.next
		e.release(q.memory())
		e = next
	}

	q.head = nil
	q.tail = nil
	q.count = 0
	q.freed = true
	// a zero value Queue never allocated its shell
	if q.allocator != nil {
		q.allocator.Release(alloc.KindQueue, queueSize)
	}
}

func (q *Queue) InsertHead(value string) bool {
	if q.absent() {
		return false
	}

	head, err := newNode(q.memory(), value)
	if err != nil {
		q.log().Debug("insert head failed", "error", err)
		return false
	}

	head.next = q.head
	q.head = head
	if q.count == 0 {
		q.tail = head
	}
	q.count += 1
	return true
}

func (q *Queue) InsertTail(value string) bool {
	if q.absent() {
		return false
	}

	tail, err := newNode(q.memory(), value)
	if err != nil {
		q.log().Debug("insert tail failed", "error", err)
		return false
	}

	if q.count > 0 {
		q.tail.next = tail
	} else {
		q.head = tail
	}
	q.tail = tail
	q.count += 1
	return true
}

// RemoveHead drops the first value. If buf is not nil it receives up to
// len(buf)-1 bytes of the value followed by a zero byte.
func (q *Queue) RemoveHead(buf []byte) bool {
	if q.absent() {
		return false
	}
	if q.head == nil {
		q.log().Trace("remove head failed", "error", ERROR_INVALID_OPERATION)
		return false
	}

	head := q.head
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], head.value)
		buf[n] = 0
	}

	q.unlinkHead()
	head.release(q.memory())
	return true
}

// Pop removes the first value and returns all of it.
func (q *Queue) Pop() (result string, ok bool) {
	if q.absent() || q.head == nil {
		return
	}

	head := q.head
	result = head.value
	q.unlinkHead()
	head.release(q.memory())
	return result, true
}

func (q *Queue) unlinkHead() {
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.count -= 1
}

func (q *Queue) Peek() (result string, ok bool) {
	if q.absent() || q.head == nil {
		return
	}
	return q.head.value, true
}

func (q *Queue) Tail() (result string, ok bool) {
	if q.absent() || q.tail == nil {
		return
	}
	return q.tail.value, true
}

func (q *Queue) Size() int {
	if q.absent() {
		return 0
	}
	return q.count
}

// Values returns a copy of the chain in order.
func (q *Queue) Values() []string {
	if q.absent() {
		return nil
	}

	result := make([]string, 0, q.count)
	for e := q.head; e != nil; e = e.next {
		result = append(result, e.value)
	}
	return result
}

// Reverse relinks the chain back to front without touching the allocator.
func (q *Queue) Reverse() {
	if q.absent() || q.head == nil || q.head.next == nil {
		return
	}

	q.log().Trace("reverse", "count", q.count)

	var prev *Node
	cur := q.head
	q.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.head = prev
}

// Verify walks the chain and checks it against the cached count and tail.
func (q *Queue) Verify() error {
	if q.absent() {
		return nil
	}

	if (q.head == nil) != (q.tail == nil) || (q.head == nil) != (q.count == 0) {
		return fmt.Errorf("inconsistent empty state - head %t, tail %t, count %d", q.head != nil, q.tail != nil, q.count)
	}
	if q.head == nil {
		return nil
	}

	last := q.head
	for i := 1; i < q.count; i += 1 {
		if last.next == nil {
			return fmt.Errorf("chain ends after %d of %d nodes", i, q.count)
		}
		last = last.next
	}
	if last != q.tail {
		return fmt.Errorf("node %d is not the cached tail", q.count)
	}
	if last.next != nil {
		return fmt.Errorf("tail has a successor, chain is longer than %d nodes", q.count)
	}
	return nil
}
