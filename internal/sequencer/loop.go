package sequencer

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"golang.org/x/sync/errgroup"
)

// workLoop owns the polling ticker and runs doTick once per interval,
// never overlapping two ticks.
type workLoop struct {
	seq *Sequencer

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func newWorkLoop(seq *Sequencer) *workLoop {
	return &workLoop{seq: seq}
}

// start is idempotent: calling it on an already-running loop is a no-op.
func (w *workLoop) start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true
	go w.run(ctx, w.done)
}

// stop cancels the poller and waits for the in-flight tick, if any, to
// return before reporting stopped.
func (w *workLoop) stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	cancel := w.cancel
	done := w.done
	w.running = false
	w.mu.Unlock()

	cancel()
	<-done
}

func (w *workLoop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	cfg, _ := w.seq.configSnapshot()
	ticker := time.NewTicker(cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
			if newCfg, _ := w.seq.configSnapshot(); newCfg.PollingInterval != cfg.PollingInterval {
				cfg = newCfg
				ticker.Reset(cfg.PollingInterval)
			}
		}
	}
}

// tick wraps one call to doTick in a trace span: a SequencerTooSlow is
// logged as a warning and swallowed, everything else is logged as an
// error. Phase always returns to Idle afterwards (a no-op if the
// sequencer was stopped mid-tick, per StateMachine.Set rule 1).
func (w *workLoop) tick(ctx context.Context) {
	seq := w.seq
	ctx, span := trace.StartSpan(ctx, "sequencer.tick")
	defer span.End()
	defer func() { _ = seq.state.Set(PhaseIdle, NoSlot, false) }()

	if err := seq.doTick(ctx); err != nil {
		if IsSequencerTooSlow(err) {
			log.WithError(err).Warn("sequencer missed a phase deadline")
			return
		}
		log.WithError(err).Error("sequencer tick failed")
	}
}

// doTick runs the full sequencer tick once: sync check, proposer check,
// block assembly, attestation collection, and publication.
func (s *Sequencer) doTick(ctx context.Context) error {
	cfg, table := s.configSnapshot()

	if err := s.state.Set(PhaseSynchronizing, NoSlot, false); err != nil {
		return err
	}
	synced, err := syncGate(ctx, s.collab.WorldState, s.collab.L2Blocks, s.collab.P2PSync, s.collab.L1ToL2)
	if err != nil {
		return errors.Wrap(err, "sync gate")
	}
	if !synced {
		verbo("not synced, skipping tick")
		return nil
	}

	if err := s.state.Set(PhaseProposerCheck, NoSlot, false); err != nil {
		return err
	}

	tip, hasTip, err := s.collab.L2Blocks.GetLatestBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "get latest L2 block")
	}
	nextBlockNumber := uint64(0)
	tipArchive := GenesisArchiveRoot
	if hasTip {
		nextBlockNumber = tip.Number + 1
		tipArchive = tip.Archive
	}

	slot, err := checkProposer(ctx, s.collab.Publisher, tipArchive, nextBlockNumber)
	if err != nil {
		if errors.Is(err, ErrNotEligible) || errors.Is(err, ErrProposerMismatch) {
			log.WithError(err).Debug("not this node's turn to propose")
			return nil
		}
		return err
	}

	globals, err := s.collab.GlobalVariableBuilder.BuildGlobalVariables(ctx, nextBlockNumber, cfg.Coinbase, cfg.FeeRecipient, slot)
	if err != nil {
		return errors.Wrap(err, "build global variables")
	}

	s.castVotesDetached(slot, globals.Timestamp)

	if !s.isFlushing() && s.collab.Pool.PendingTxCount() < cfg.MinTxsPerBlock {
		if err := s.quotes.claimIfAvailable(ctx, slot); err != nil {
			log.WithError(err).Warn("failed to claim epoch proof right")
		}
		return nil
	}

	if err := s.state.Set(PhaseInitializingProposal, slot, false); err != nil {
		return err
	}

	historicalHeader := Header{ParentArchiveRoot: tipArchive}
	proposalHeader := Header{ParentArchiveRoot: tipArchive, Globals: globals}
	if err := validateForSubmission(ctx, s.collab.Publisher, proposalHeader); err != nil {
		return err
	}

	if err := s.state.Set(PhaseCreatingBlock, slot, false); err != nil {
		return err
	}

	flushing := s.isFlushing()
	opts := BuildOpts{
		Flushing:          flushing,
		MaxTxsPerBlock:    cfg.MaxTxsPerBlock,
		MinTxsPerBlock:    cfg.MinTxsPerBlock,
		MaxBlockSizeBytes: cfg.MaxBlockSizeBytes,
		AllowedInSetup:    cfg.AllowedInSetup,
		EnforceFees:       cfg.EnforceFees,
	}

	// The block build and the proof-quote lookup are independent RPCs
	// fanned out together; the quote only needs to be ready by the time
	// publication happens. A quote is opportunistic: a failure to fetch
	// one is logged and the tick proceeds without it, rather than aborting
	// a block that would otherwise publish cleanly; quotes that fail
	// validation are dropped by pickQuote without a log line.
	g, gctx := errgroup.WithContext(ctx)
	var buildResult BuildResult
	var quote *EpochProofQuote
	g.Go(func() error {
		res, buildErr := s.assembler.buildBlock(gctx, globals, historicalHeader, table, cfg.EnforceTimeTable, opts)
		if buildErr != nil {
			return buildErr
		}
		buildResult = res
		return nil
	})
	g.Go(func() error {
		q, _, ok, quoteErr := s.quotes.pickQuote(gctx, slot)
		if quoteErr != nil {
			log.WithError(quoteErr).Warn("failed to fetch epoch proof quote, publishing without one")
			return nil
		}
		if ok {
			quote = &q
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrTooFewTxs) {
			verbo("too few transactions this tick, skipping block")
			return nil
		}
		s.metrics.failedBlock()
		return err
	}

	if flushing {
		s.setFlushing(false)
	}

	finalHeader := buildResult.Block.Header
	txHashes := blockTxHashes(buildResult.Block)

	attestations, err := s.attestations.collect(ctx, slot, finalHeader, tipArchive, txHashes)
	if err != nil {
		if !IsSequencerTooSlow(err) {
			s.metrics.failedBlock()
		}
		return err
	}

	if err := s.state.Set(PhasePublishingBlock, slot, false); err != nil {
		return err
	}

	if err := validateForSubmission(ctx, s.collab.Publisher, finalHeader); err != nil {
		if !IsSequencerTooSlow(err) {
			s.metrics.failedBlock()
		}
		return err
	}

	if err := publish(ctx, s.collab.Publisher, buildResult.Block, attestations, txHashes, quote); err != nil {
		if !IsSequencerTooSlow(err) {
			s.metrics.failedBlock()
		}
		return err
	}

	s.metrics.publishedBlock(float64(s.clock.Now().Sub(buildResult.BlockBuildingTimerStart).Milliseconds()))
	return nil
}

// castVotesDetached fires the governance and slashing votes without
// blocking the tick. Failures are logged, never propagated.
func (s *Sequencer) castVotesDetached(slot Slot, timestamp uint64) {
	for _, kind := range []VoteKind{VoteGovernance, VoteSlashing} {
		kind := kind
		go func() {
			if err := s.collab.Publisher.CastVote(backgroundContext(), slot, timestamp, kind); err != nil {
				log.WithError(err).WithField("vote", kind.String()).Debug("failed to cast vote")
			}
		}()
	}
}

func blockTxHashes(block *Block) []TxHash {
	hashes := make([]TxHash, len(block.Txs))
	for i, tx := range block.Txs {
		hashes[i] = tx.Hash
	}
	return hashes
}
