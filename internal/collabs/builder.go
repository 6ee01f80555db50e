package collabs

import (
	"context"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// DefaultBuilderFactory constructs DefaultBuilder instances bound to one
// world-state fork, standing in for the real rollup-tree insertion
// engine.
type DefaultBuilderFactory struct{}

// Create implements sequencer.BlockBuilderFactory.
func (DefaultBuilderFactory) Create(fork sequencer.WorldStateHandle) sequencer.BlockBuilder {
	return &DefaultBuilder{fork: fork}
}

// DefaultBuilder accumulates transactions for one block and, on
// completion, commits its world-state fork back to the parent store.
type DefaultBuilder struct {
	fork     sequencer.WorldStateHandle
	globals  sequencer.GlobalVariables
	messages []sequencer.L1ToL2Message
	txs      []sequencer.Tx
}

// StartNewBlock implements sequencer.BlockBuilder.
func (b *DefaultBuilder) StartNewBlock(ctx context.Context, globals sequencer.GlobalVariables, l1ToL2Messages []sequencer.L1ToL2Message) error {
	b.globals = globals
	b.messages = l1ToL2Messages
	return nil
}

// AddTxs implements sequencer.BlockBuilder.
func (b *DefaultBuilder) AddTxs(ctx context.Context, txs []sequencer.Tx) error {
	b.txs = append(b.txs, txs...)
	return nil
}

// SetBlockCompleted implements sequencer.BlockBuilder.
func (b *DefaultBuilder) SetBlockCompleted(ctx context.Context) (*sequencer.Block, error) {
	if fork, ok := b.fork.(*worldStateFork); ok {
		fork.Commit()
	}
	return &sequencer.Block{
		Header: sequencer.Header{Globals: b.globals},
		Txs:    b.txs,
	}, nil
}
