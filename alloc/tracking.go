package alloc

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/reeveci/textqueue/exe"
)

// Tracking counts outstanding blocks and bytes per kind and can be told to fail requests.
type Tracking struct {
	// Percentage (0-100) of Allocate calls that fail at random.
	FailProbability int
	// Fail every Allocate call once this many more have succeeded; negative disables.
	FailAfter int

	random *rand.Rand

	blocks map[Kind]int
	bytes  map[Kind]int

	sync.Mutex
}

func NewTracking(seed int64) *Tracking {
	return &Tracking{
		FailAfter: -1,
		random:    rand.New(rand.NewSource(seed)),
		blocks:    make(map[Kind]int),
		bytes:     make(map[Kind]int),
	}
}

func TrackingFromEnv() *Tracking {
	t := NewTracking(int64(exe.GetIntEnvDef("QUEUE_ALLOC_SEED", 1)))
	t.FailProbability = exe.GetIntEnvDef("QUEUE_ALLOC_FAIL_PROBABILITY", 0)
	return t
}

func (t *Tracking) Allocate(kind Kind, size int) error {
	t.Lock()
	defer t.Unlock()

	if t.FailAfter == 0 {
		return fmt.Errorf("cannot allocate %d bytes for %s - %w", size, kind, ERROR_OUT_OF_MEMORY)
	}
	if t.FailProbability > 0 && t.random.Intn(100) < t.FailProbability {
		return fmt.Errorf("cannot allocate %d bytes for %s - %w", size, kind, ERROR_OUT_OF_MEMORY)
	}
	if t.FailAfter > 0 {
		t.FailAfter -= 1
	}

	t.blocks[kind] += 1
	t.bytes[kind] += size
	return nil
}

func (t *Tracking) Release(kind Kind, size int) {
	t.Lock()
	defer t.Unlock()

	t.blocks[kind] -= 1
	t.bytes[kind] -= size
}

// Outstanding returns the number of blocks allocated but not yet released.
func (t *Tracking) Outstanding() (result int) {
	t.Lock()
	defer t.Unlock()

	for _, n := range t.blocks {
		result += n
	}
	return
}

func (t *Tracking) OutstandingKind(kind Kind) int {
	t.Lock()
	defer t.Unlock()

	return t.blocks[kind]
}

func (t *Tracking) Bytes() (result int) {
	t.Lock()
	defer t.Unlock()

	for _, n := range t.bytes {
		result += n
	}
	return
}

// Check reports every kind with unbalanced blocks or bytes.
func (t *Tracking) Check() error {
	t.Lock()
	defer t.Unlock()

	leaks := make([]string, 0, 3)
	for _, kind := range []Kind{KindQueue, KindNode, KindValue} {
		if t.blocks[kind] != 0 || t.bytes[kind] != 0 {
			leaks = append(leaks, fmt.Sprintf("%s: %d blocks, %d bytes", kind, t.blocks[kind], t.bytes[kind]))
		}
	}
	if len(leaks) > 0 {
		return fmt.Errorf("unbalanced allocations %s", strings.Join(leaks, ", "))
	}
	return nil
}
