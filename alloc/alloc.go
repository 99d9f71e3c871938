package alloc

import "fmt"

type Kind int

const (
	KindQueue Kind = iota
	KindNode
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindQueue:
		return "queue"
	case KindNode:
		return "node"
	case KindValue:
		return "value"

	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Allocator is consulted for every block a queue takes ownership of.
// Every successful Allocate must be paired with exactly one Release of the same kind and size.
type Allocator interface {
	Allocate(kind Kind, size int) error
	Release(kind Kind, size int)
}

type Error string

func (err Error) Error() string {
	return string(err)
}

const ERROR_OUT_OF_MEMORY = Error("out of memory")

var Heap Allocator = heap{}

type heap struct{}

func (heap) Allocate(kind Kind, size int) error {
	return nil
}

func (heap) Release(kind Kind, size int) {}
