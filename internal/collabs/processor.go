package collabs

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

var errTxTooLarge = errors.New("collabs: transaction exceeds remaining block size budget")

// DefaultProcessorFactory constructs DefaultProcessor instances bound to
// one world-state fork and one block's globals, standing in for the
// real public-function transaction processor.
type DefaultProcessorFactory struct{}

// Create implements sequencer.PublicProcessorFactory.
func (DefaultProcessorFactory) Create(fork sequencer.WorldStateHandle, historicalHeader sequencer.Header, globals sequencer.GlobalVariables, enableTracing bool) sequencer.PublicProcessor {
	return &DefaultProcessor{fork: fork, globals: globals}
}

// DefaultProcessor admits pooled transactions up to the deadline and
// size/count limits, the way vms/platformvm/mempool.go's BuildBlock
// walks its pending queue up to BatchSize.
type DefaultProcessor struct {
	fork    sequencer.WorldStateHandle
	globals sequencer.GlobalVariables
}

// Process implements sequencer.PublicProcessor. policy carries
// AllowedInSetup/EnforceFees through to wherever the real tx validators
// live; this stand-in has no fee model or setup-phase notion of its
// own, so it only logs what it was asked to enforce.
func (p *DefaultProcessor) Process(ctx context.Context, txs sequencer.TxIterator, limits sequencer.TxValidationLimits, policy sequencer.TxValidatorPolicy) ([]sequencer.Tx, []sequencer.FailedTx, error) {
	if policy.EnforceFees || len(policy.AllowedInSetup) > 0 {
		log.WithField("enforceFees", policy.EnforceFees).
			WithField("allowedInSetup", len(policy.AllowedInSetup)).
			Trace("processing block with tx validator policy")
	}

	var processed []sequencer.Tx
	var failed []sequencer.FailedTx
	totalBytes := 0

	for {
		if limits.MaxTransactions > 0 && len(processed) >= limits.MaxTransactions {
			break
		}
		if limits.HasDeadline && float64(time.Now().Unix()) > limits.DeadlineUnixSeconds {
			break
		}
		tx, ok := txs.Next()
		if !ok {
			break
		}
		if limits.MaxBlockSizeBytes > 0 && totalBytes+tx.Size > limits.MaxBlockSizeBytes {
			failed = append(failed, sequencer.FailedTx{Hash: tx.Hash, Reason: errTxTooLarge})
			continue
		}
		totalBytes += tx.Size
		processed = append(processed, tx)
	}

	return processed, failed, nil
}
