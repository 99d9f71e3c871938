package queue

import "sync"

type syncQueue struct {
	queue Interface
	lock  sync.Mutex
}

// Sync serializes every call on q behind one lock.
func Sync(q Interface) Interface {
	return &syncQueue{queue: q}
}

func (q *syncQueue) InsertHead(value string) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.InsertHead(value)
}

func (q *syncQueue) InsertTail(value string) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.InsertTail(value)
}

func (q *syncQueue) RemoveHead(buf []byte) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.RemoveHead(buf)
}

func (q *syncQueue) Pop() (string, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Pop()
}

func (q *syncQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Size()
}

func (q *syncQueue) Reverse() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Reverse()
}

func (q *syncQueue) Sort() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Sort()
}
