package queue

import (
	"fmt"

	"github.com/google/shlex"
)

// FromWords builds a queue from a shell quoted word list, e.g. `a "b c" 'd'`.
func FromWords(line string, options ...Option) (*Queue, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid word list - %w", err)
	}

	q, err := New(options...)
	if err != nil {
		return nil, err
	}

	for i, word := range words {
		if !q.InsertTail(word) {
			q.Free()
			return nil, fmt.Errorf("cannot insert word %d - %w", i, ERROR_ALLOCATION_FAILURE)
		}
	}
	return q, nil
}
