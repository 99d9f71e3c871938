package queue

import (
	"fmt"
	"strings"

	"github.com/reeveci/textqueue/alloc"
)

// Accounting size of a node without its value.
const nodeSize = 16

type Node struct {
	value string
	next  *Node
}

// valueSize accounts for the stored copy plus its terminator.
func valueSize(value string) int {
	return len(value) + 1
}

func newNode(a alloc.Allocator, value string) (*Node, error) {
	if err := a.Allocate(alloc.KindNode, nodeSize); err != nil {
		return nil, fmt.Errorf("cannot create node - %w - %w", ERROR_ALLOCATION_FAILURE, err)
	}
	if err := a.Allocate(alloc.KindValue, valueSize(value)); err != nil {
		a.Release(alloc.KindNode, nodeSize)
		return nil, fmt.Errorf("cannot create node - %w - %w", ERROR_ALLOCATION_FAILURE, err)
	}

	return &Node{value: strings.Clone(value)}, nil
}

// release returns the node's blocks. The caller must have read n.next beforehand.
func (n *Node) release(a alloc.Allocator) {
	a.Release(alloc.KindValue, valueSize(n.value))
	a.Release(alloc.KindNode, nodeSize)
	n.value = ""
	n.next = nil
}
