package queue

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/textqueue/alloc"
	"github.com/reeveci/textqueue/exe"
)

type Option func(q *Queue)

// WithAllocator routes every node, value and queue allocation through a.
func WithAllocator(a alloc.Allocator) Option {
	return func(q *Queue) {
		if a != nil {
			q.allocator = a
		}
	}
}

func WithLogger(logger hclog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// OptionsFromEnv reads QUEUE_LOG_LEVEL and QUEUE_TRACK_ALLOCATIONS.
func OptionsFromEnv() []Option {
	options := make([]Option, 0, 2)

	if level := exe.GetEnvDef("QUEUE_LOG_LEVEL", ""); level != "" {
		options = append(options, WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:   "queue",
			Level:  hclog.LevelFromString(level),
			Output: os.Stderr,
		})))
	}

	if exe.GetBoolEnvDef("QUEUE_TRACK_ALLOCATIONS", false) {
		options = append(options, WithAllocator(alloc.TrackingFromEnv()))
	}

	return options
}
