package sequencer

import (
	"context"

	"github.com/pkg/errors"
)

// validateForSubmission calls publisher.ValidateBlockForSubmission,
// wrapping any rejection as ErrPublisherRejected. The work loop calls
// this twice: once on the proposal header before building, once on the
// final header before publishing.
func validateForSubmission(ctx context.Context, publisher Publisher, header Header) error {
	if err := publisher.ValidateBlockForSubmission(ctx, header); err != nil {
		return errors.Wrap(ErrPublisherRejected, err.Error())
	}
	return nil
}

// publish calls publisher.ProposeL2Block with the assembled block,
// ordered attestations, tx hashes and optional proof quote, treating a
// falsy "published" result the same as an error.
func publish(ctx context.Context, publisher Publisher, block *Block, attestations []Attestation, txHashes []TxHash, quote *EpochProofQuote) error {
	published, err := publisher.ProposeL2Block(ctx, block, attestations, txHashes, quote)
	if err != nil {
		return errors.Wrap(ErrPublisherRejected, err.Error())
	}
	if !published {
		return errors.Wrap(ErrPublisherRejected, "publisher declined to publish the proposed block")
	}
	return nil
}
