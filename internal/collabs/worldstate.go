package collabs

import (
	"context"
	"crypto/sha256"
	"sort"
	"sync"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// WorldState is a single-process key-value store, whose forks are full
// copies of its map, standing in for the real authenticated state
// database. Forking and locking
// follow chains/atomic/shared_memory.go's discipline of guarding the
// whole store behind one mutex and handing callers an isolated view,
// without that file's cross-chain UTXO semantics.
type WorldState struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewWorldState constructs an empty store whose Status hash equals
// sequencer.UndefinedWorldStateHash for as long as it holds no data.
func NewWorldState() *WorldState {
	return &WorldState{data: make(map[string][]byte)}
}

// Status implements sequencer.WorldState.
func (w *WorldState) Status(ctx context.Context) (sequencer.WorldStateStatus, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.data) == 0 {
		return sequencer.WorldStateStatus{Hash: sequencer.UndefinedWorldStateHash}, nil
	}
	return sequencer.WorldStateStatus{Hash: w.hashLocked()}, nil
}

func (w *WorldState) hashLocked() [32]byte {
	keys := make([]string, 0, len(w.data))
	for k := range w.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write(w.data[k])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SyncImmediate implements sequencer.WorldState. A single-process store
// has nothing else to converge with, so this is a no-op.
func (w *WorldState) SyncImmediate(ctx context.Context, blockNumber uint64) error {
	return nil
}

// Fork implements sequencer.WorldState, returning a handle over an
// isolated copy of the current data.
func (w *WorldState) Fork(ctx context.Context) (sequencer.WorldStateHandle, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	clone := make(map[string][]byte, len(w.data))
	for k, v := range w.data {
		clone[k] = v
	}
	return &worldStateFork{parent: w, data: clone}, nil
}

// worldStateFork is an isolated, mutable view of a WorldState. Commit
// publishes it back to the parent; Close is a no-op, since the block
// builder calls Commit itself when it completes a block.
type worldStateFork struct {
	parent *WorldState
	data   map[string][]byte
}

func (f *worldStateFork) Close() error { return nil }

func (f *worldStateFork) Get(key string) ([]byte, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *worldStateFork) Put(key string, value []byte) {
	f.data[key] = value
}

// Commit publishes this fork's contents back to the parent store. The
// block builder calls this from SetBlockCompleted once it has finished
// inserting a block's transactions.
func (f *worldStateFork) Commit() {
	f.parent.mu.Lock()
	defer f.parent.mu.Unlock()
	f.parent.data = f.data
}
