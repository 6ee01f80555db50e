package sequencer

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// closeGracePeriod is the delay before a world-state fork is closed
// after a build finishes: a tx interrupted by the deadline may still be
// settling when the build returns, and closing the fork out from under
// it would drop work that was never actually abandoned.
const closeGracePeriod = 5 * time.Second

// BuildOpts controls a single buildBlock invocation.
type BuildOpts struct {
	// ValidateOnly suppresses the minTxsPerBlock gate (used when the
	// caller only wants to validate processing, not publish).
	ValidateOnly bool
	// Flushing suppresses the minTxsPerBlock gate for exactly the next
	// built block.
	Flushing bool

	MaxTxsPerBlock    int
	MinTxsPerBlock    int
	MaxBlockSizeBytes int

	// AllowedInSetup and EnforceFees are forwarded to the processor as a
	// TxValidatorPolicy; the sequencer never interprets them itself.
	AllowedInSetup []string
	EnforceFees    bool
}

// BuildResult is everything buildBlock hands back to the work loop.
type BuildResult struct {
	Block                    *Block
	PublicProcessorDuration  time.Duration
	NumMsgs                  int
	NumTxs                   int
	BlockBuildingTimerStart  time.Time
}

// BlockAssembler implements component E: forks world-state, runs the
// public processor under a deadline, drops failed txs from the pool,
// inserts into the rollup tree, and returns a completed block.
type BlockAssembler struct {
	WorldState     WorldState
	L1ToL2         L1ToL2MessageSource
	Pool           TxPool
	ProcessorFct   PublicProcessorFactory
	BuilderFct     BlockBuilderFactory
	Clock          DateProvider
	Metrics        *Metrics
	RollupConsts   RollupConstants
}

// buildBlock forks world-state, runs the public processor under a
// deadline, drops failed txs from the pool, inserts into the rollup
// tree, and returns a completed block. historicalHeader is the parent
// header the processor validates against; globals.BlockNumber is the
// block being built.
func (a *BlockAssembler) buildBlock(ctx context.Context, globals GlobalVariables, historicalHeader Header, table *TimeTable, enforceTimeTable bool, opts BuildOpts) (res BuildResult, err error) {
	blockNumber := globals.BlockNumber
	buildStart := a.Clock.Now()

	msgs, err := a.L1ToL2.GetL1ToL2Messages(ctx, blockNumber)
	if err != nil {
		return BuildResult{}, errors.Wrap(err, "fetch L1-to-L2 messages")
	}

	if blockNumber > 0 {
		if err := a.WorldState.SyncImmediate(ctx, blockNumber-1); err != nil {
			return BuildResult{}, errors.Wrap(err, "sync world state immediate")
		}
	}

	processorFork, err := a.WorldState.Fork(ctx)
	if err != nil {
		return BuildResult{}, errors.Wrap(err, "fork world state for processor")
	}
	builderFork, err := a.WorldState.Fork(ctx)
	if err != nil {
		closeWithGrace(processorFork)
		return BuildResult{}, errors.Wrap(err, "fork world state for block builder")
	}
	defer closeWithGrace(processorFork)
	defer closeWithGrace(builderFork)

	processor := a.ProcessorFct.Create(processorFork, historicalHeader, globals, false)
	builder := a.BuilderFct.Create(builderFork)

	if err := builder.StartNewBlock(ctx, globals, msgs); err != nil {
		return BuildResult{}, errors.Wrap(err, "start new block")
	}

	limits := TxValidationLimits{
		MaxTransactions:   opts.MaxTxsPerBlock,
		MaxBlockSizeBytes: opts.MaxBlockSizeBytes,
	}
	if enforceTimeTable {
		slotStart := float64(a.RollupConsts.SlotStart(globals.Slot))
		limits.DeadlineUnixSeconds = slotStart + table.Deadline(PhaseCreatingBlock) + table.ProcessTxTime()
		limits.HasDeadline = true
	}

	policy := TxValidatorPolicy{AllowedInSetup: opts.AllowedInSetup, EnforceFees: opts.EnforceFees}

	processStart := a.Clock.Now()
	processed, failed, err := processor.Process(ctx, a.Pool.IteratePendingTxs(), limits, policy)
	processDuration := a.Clock.Now().Sub(processStart)
	if err != nil {
		return BuildResult{}, errors.Wrap(err, "process pending transactions")
	}

	if len(failed) > 0 {
		hashes := make([]TxHash, len(failed))
		for i, f := range failed {
			hashes[i] = f.Hash
		}
		if err := a.Pool.DeleteTxs(hashes); err != nil {
			return BuildResult{}, errors.Wrap(err, "delete failed transactions from pool")
		}
	}

	if !opts.ValidateOnly && !opts.Flushing && len(processed) < opts.MinTxsPerBlock {
		return BuildResult{}, errors.Wrapf(ErrTooFewTxs, "built %d txs, need %d", len(processed), opts.MinTxsPerBlock)
	}

	insertStart := a.Clock.Now()
	if err := builder.AddTxs(ctx, processed); err != nil {
		return BuildResult{}, errors.Wrap(err, "add transactions to block builder")
	}
	insertDuration := a.Clock.Now().Sub(insertStart)
	if a.Metrics != nil {
		a.Metrics.blockBuilderTreeInsertions(float64(insertDuration.Microseconds()))
	}

	block, err := builder.SetBlockCompleted(ctx)
	if err != nil {
		return BuildResult{}, errors.Wrap(err, "complete block")
	}

	return BuildResult{
		Block:                   block,
		PublicProcessorDuration: processDuration,
		NumMsgs:                 len(msgs),
		NumTxs:                  len(processed),
		BlockBuildingTimerStart: buildStart,
	}, nil
}

// closeWithGrace closes a world-state fork after closeGracePeriod,
// logging rather than propagating a close failure.
func closeWithGrace(h WorldStateHandle) {
	go func() {
		time.Sleep(closeGracePeriod)
		if err := h.Close(); err != nil {
			log.WithError(err).Warn("failed to close world state fork")
		}
	}()
}
