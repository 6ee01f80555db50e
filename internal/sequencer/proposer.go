package sequencer

import (
	"context"

	"github.com/pkg/errors"
)

// checkProposer asks the publisher whether this node may propose on top
// of tipArchive at the next L1 block, and validates the returned block
// number matches expectedBlockNumber. An RPC failure is wrapped as
// ErrNotEligible and a mismatch as ErrProposerMismatch; the loop treats
// both the same, logs at debug and moves on without raising past itself.
func checkProposer(ctx context.Context, publisher Publisher, tipArchive ArchiveRoot, expectedBlockNumber uint64) (Slot, error) {
	slot, blockNumber, err := publisher.CanProposeAtNextEthBlock(ctx, tipArchive)
	if err != nil {
		return NoSlot, errors.Wrap(ErrNotEligible, err.Error())
	}
	if blockNumber != expectedBlockNumber {
		return NoSlot, errors.Wrapf(ErrProposerMismatch, "expected block %d, publisher returned %d", expectedBlockNumber, blockNumber)
	}
	return slot, nil
}
