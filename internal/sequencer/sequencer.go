package sequencer

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collaborators bundles every external dependency the Sequencer
// consumes. Fields marked optional may be nil.
type Collaborators struct {
	Publisher             Publisher
	Validator             ValidatorClient // optional: nil if this node runs no validator client
	Pool                  TxPool
	WorldState            WorldState
	L2Blocks              L2BlockSource
	L1ToL2                L1ToL2MessageSource
	P2PSync               P2PSyncClient
	GlobalVariableBuilder GlobalVariableBuilder
	Slasher               Slasher // optional
	ProcessorFactory      PublicProcessorFactory
	BuilderFactory        BlockBuilderFactory
	Clock                 DateProvider // optional: defaults to SystemClock
}

// Sequencer composes the full block-proposer loop. It has no
// persistent state of its own: every field below either mirrors
// in-memory process state (phase, flushing, config) or points at an
// external collaborator.
type Sequencer struct {
	collab Collaborators

	mu           sync.Mutex
	cfg          SequencerConfig
	rollupConsts RollupConstants
	table        *TimeTable

	state   *StateMachine
	metrics *Metrics
	clock   DateProvider

	assembler    *BlockAssembler
	attestations *AttestationCollector
	quotes       *ProofQuoteBidder

	flushingMu sync.Mutex
	flushing   bool

	loop *workLoop
}

// New constructs a Sequencer in the Stopped phase. The initial
// SequencerConfig and RollupConstants must derive a valid TimeTable;
// callers that want a non-enforcing dev setup should pass
// cfg.EnforceTimeTable = false.
func New(reg prometheus.Registerer, collab Collaborators, cfg SequencerConfig, rc RollupConstants) (*Sequencer, error) {
	if collab.Clock == nil {
		collab.Clock = SystemClock
	}

	table, err := deriveTimeTable(rc, cfg.MaxL1TxInclusionSecs, cfg.EnforceTimeTable)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	metrics := NewMetrics(reg)
	state := newStateMachine(collab.Clock, metrics)
	state.reconfigure(rc, table, cfg.EnforceTimeTable)

	s := &Sequencer{
		collab:       collab,
		cfg:          cfg,
		rollupConsts: rc,
		table:        table,
		state:        state,
		metrics:      metrics,
		clock:        collab.Clock,
		quotes:       NewProofQuoteBidder(collab.Publisher, collab.Pool),
	}
	s.assembler = &BlockAssembler{
		WorldState:   collab.WorldState,
		L1ToL2:       collab.L1ToL2,
		Pool:         collab.Pool,
		ProcessorFct: collab.ProcessorFactory,
		BuilderFct:   collab.BuilderFactory,
		Clock:        collab.Clock,
		Metrics:      metrics,
		RollupConsts: rc,
	}
	s.attestations = &AttestationCollector{
		Publisher: collab.Publisher,
		Validator: collab.Validator,
		State:     state,
		Metrics:   metrics,
		Clock:     collab.Clock,
	}
	s.loop = newWorkLoop(s)

	if collab.Slasher != nil {
		collab.Publisher.RegisterSlashPayloadGetter(collab.Slasher.GetSlashPayload)
	}
	if collab.Validator != nil {
		collab.Validator.RegisterBlockBuilder(s.buildForValidator)
	}

	return s, nil
}

// buildForValidator lets the validator client build a block on demand
// when this node is asked to act as a committee builder rather than the
// L1 proposer. It runs the same assembler outside of the work loop's
// own phase transitions, since it isn't bound to this node's own slot.
func (s *Sequencer) buildForValidator(ctx context.Context, globals GlobalVariables) (*Block, error) {
	cfg, table := s.configSnapshot()
	opts := BuildOpts{
		MaxTxsPerBlock:    cfg.MaxTxsPerBlock,
		MinTxsPerBlock:    cfg.MinTxsPerBlock,
		MaxBlockSizeBytes: cfg.MaxBlockSizeBytes,
		AllowedInSetup:    cfg.AllowedInSetup,
		EnforceFees:       cfg.EnforceFees,
		ValidateOnly:      true,
	}
	res, err := s.assembler.buildBlock(ctx, globals, Header{}, table, cfg.EnforceTimeTable, opts)
	if err != nil {
		return nil, err
	}
	return res.Block, nil
}

// Status returns the current phase.
func (s *Sequencer) Status() Phase {
	return s.state.Phase()
}

// configSnapshot returns a copy of the live config and table under
// lock, giving every tick a stable snapshot even if UpdateConfig races
// with it.
func (s *Sequencer) configSnapshot() (SequencerConfig, *TimeTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg, s.table
}

func (s *Sequencer) isFlushing() bool {
	s.flushingMu.Lock()
	defer s.flushingMu.Unlock()
	return s.flushing
}

func (s *Sequencer) setFlushing(v bool) {
	s.flushingMu.Lock()
	s.flushing = v
	s.flushingMu.Unlock()
}

// backgroundContext builds the context for work detached from a tick
// (the votes cast by castVotesDetached); the sequencer has no
// request-scoped context of its own outside of a tick.
func backgroundContext() context.Context { return context.Background() }
