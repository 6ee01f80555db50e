package collabs

import (
	"context"
	"sync"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// L2BlockSource is a single-process stand-in for the real L2 chain tip
// tracker. Publish advances the tip when called; neither Publisher nor
// cmd/sequencer calls it, so the devnet tip stays at genesis.
type L2BlockSource struct {
	mu    sync.RWMutex
	tip   sequencer.L2Tip
	hasTip bool
}

// NewL2BlockSource constructs an L2BlockSource with no tip (genesis).
func NewL2BlockSource() *L2BlockSource {
	return &L2BlockSource{}
}

// Publish records block as the new tip.
func (s *L2BlockSource) Publish(block *sequencer.Block, archive sequencer.ArchiveRoot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	number := uint64(0)
	if s.hasTip {
		number = s.tip.Number + 1
	}
	s.tip = sequencer.L2Tip{Number: number, Archive: archive}
	s.hasTip = true
}

// GetLatestBlock implements sequencer.L2BlockSource.
func (s *L2BlockSource) GetLatestBlock(ctx context.Context) (sequencer.L2Tip, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tip, s.hasTip, nil
}

// GetBlockNumber implements sequencer.L2BlockSource.
func (s *L2BlockSource) GetBlockNumber(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasTip {
		return 0, nil
	}
	return s.tip.Number, nil
}

// L1ToL2MessageSource is a single-process stand-in for the real L1->L2
// message bridge reader: a devnet harness has no separate bridge
// contract to poll, so it just tracks the same block number as the L2
// tip and returns no pending messages.
type L1ToL2MessageSource struct {
	blocks *L2BlockSource
}

// NewL1ToL2MessageSource constructs a message source that tracks blocks.
func NewL1ToL2MessageSource(blocks *L2BlockSource) *L1ToL2MessageSource {
	return &L1ToL2MessageSource{blocks: blocks}
}

// GetL1ToL2Messages implements sequencer.L1ToL2MessageSource.
func (s *L1ToL2MessageSource) GetL1ToL2Messages(ctx context.Context, blockNumber uint64) ([]sequencer.L1ToL2Message, error) {
	return nil, nil
}

// GetBlockNumber implements sequencer.L1ToL2MessageSource.
func (s *L1ToL2MessageSource) GetBlockNumber(ctx context.Context) (uint64, error) {
	return s.blocks.GetBlockNumber(ctx)
}
