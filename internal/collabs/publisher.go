package collabs

import (
	"context"
	"sync"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// Publisher is a single-process stand-in for the real L1-facing rollup
// contract client: gas, nonces, and signing all live there. It always
// accepts this node as proposer and accepts every block it is handed,
// the way a devnet harness needs a Publisher that never gets in the
// way.
type Publisher struct {
	sender sequencer.Address

	mu                sync.Mutex
	committee         []sequencer.Address
	claimableEpoch    sequencer.Epoch
	hasClaimableEpoch bool
	slashGetter       func() ([]byte, error)
	governancePayload []byte
	interrupted       bool
}

// NewPublisher constructs a Publisher that always proposes as sender.
func NewPublisher(sender sequencer.Address, committee []sequencer.Address) *Publisher {
	return &Publisher{sender: sender, committee: committee}
}

// SetClaimableEpoch arms a claimable epoch for GetClaimableEpoch to
// report, simulating the rollup contract advancing its proof window.
func (p *Publisher) SetClaimableEpoch(epoch sequencer.Epoch) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.claimableEpoch = epoch
	p.hasClaimableEpoch = true
}

// CanProposeAtNextEthBlock implements sequencer.Publisher: this node is
// always the proposer, for slot 1 and block number 0, which is the block
// number the caller expects while the L2 tip is still at genesis.
func (p *Publisher) CanProposeAtNextEthBlock(ctx context.Context, tipArchive sequencer.ArchiveRoot) (sequencer.Slot, uint64, error) {
	return sequencer.Slot(1), 0, nil
}

// ValidateBlockForSubmission implements sequencer.Publisher.
func (p *Publisher) ValidateBlockForSubmission(ctx context.Context, header sequencer.Header) error {
	return nil
}

// ProposeL2Block implements sequencer.Publisher.
func (p *Publisher) ProposeL2Block(ctx context.Context, block *sequencer.Block, attestations []sequencer.Attestation, txHashes []sequencer.TxHash, quote *sequencer.EpochProofQuote) (bool, error) {
	return true, nil
}

// GetCurrentEpochCommittee implements sequencer.Publisher.
func (p *Publisher) GetCurrentEpochCommittee(ctx context.Context) ([]sequencer.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sequencer.Address(nil), p.committee...), nil
}

// GetClaimableEpoch implements sequencer.Publisher.
func (p *Publisher) GetClaimableEpoch(ctx context.Context) (sequencer.Epoch, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claimableEpoch, p.hasClaimableEpoch, nil
}

// ValidateProofQuote implements sequencer.Publisher by accepting
// whatever quote it's handed unmodified.
func (p *Publisher) ValidateProofQuote(ctx context.Context, quote sequencer.EpochProofQuote) (*sequencer.EpochProofQuote, error) {
	return &quote, nil
}

// ClaimEpochProofRight implements sequencer.Publisher.
func (p *Publisher) ClaimEpochProofRight(ctx context.Context, quote sequencer.EpochProofQuote) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasClaimableEpoch = false
	return true, nil
}

// CastVote implements sequencer.Publisher.
func (p *Publisher) CastVote(ctx context.Context, slot sequencer.Slot, timestamp uint64, kind sequencer.VoteKind) error {
	return nil
}

// RegisterSlashPayloadGetter implements sequencer.Publisher.
func (p *Publisher) RegisterSlashPayloadGetter(fn func() ([]byte, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slashGetter = fn
}

// SetGovernancePayload implements sequencer.Publisher.
func (p *Publisher) SetGovernancePayload(payload []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.governancePayload = payload
}

// GetSenderAddress implements sequencer.Publisher.
func (p *Publisher) GetSenderAddress() sequencer.Address {
	return p.sender
}

// Interrupt implements sequencer.Publisher.
func (p *Publisher) Interrupt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interrupted = true
}

// Restart implements sequencer.Publisher.
func (p *Publisher) Restart() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interrupted = false
	return nil
}
