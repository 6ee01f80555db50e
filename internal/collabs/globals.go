package collabs

import (
	"context"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// GlobalVariableBuilder derives a block's GlobalVariables from the
// rollup's slot/epoch timing constants, the same slot-arithmetic shape
// as the pack's slot-duty scheduler (SlotStart = genesis + slot*duration).
type GlobalVariableBuilder struct {
	rc sequencer.RollupConstants
}

// NewGlobalVariableBuilder constructs a GlobalVariableBuilder bound to
// rc.
func NewGlobalVariableBuilder(rc sequencer.RollupConstants) *GlobalVariableBuilder {
	return &GlobalVariableBuilder{rc: rc}
}

// BuildGlobalVariables implements sequencer.GlobalVariableBuilder.
func (b *GlobalVariableBuilder) BuildGlobalVariables(ctx context.Context, blockNumber uint64, coinbase, feeRecipient sequencer.Address, slot sequencer.Slot) (sequencer.GlobalVariables, error) {
	return sequencer.GlobalVariables{
		BlockNumber:  blockNumber,
		Coinbase:     coinbase,
		FeeRecipient: feeRecipient,
		Slot:         slot,
		Timestamp:    b.rc.SlotStart(slot),
	}, nil
}
