package collabs

import (
	"context"
	"sync"

	"github.com/rollupnode/sequencer/internal/sequencer"
)

// ValidatorClient is a single-process stand-in for the real validator
// peer-to-peer layer. It returns an attestation from every committee
// member immediately, with an empty Signature, instead of actually
// gossiping to them, the way a
// devnet harness needs a committee that always attests. Broadcast is
// logged rather than sent anywhere, in the spirit of
// snow/networking/sender/sender.go's SendPushQuery.
type ValidatorClient struct {
	committee []sequencer.Address

	mu      sync.Mutex
	builder func(ctx context.Context, globals sequencer.GlobalVariables) (*sequencer.Block, error)
}

// NewValidatorClient constructs a ValidatorClient that attests on
// behalf of committee.
func NewValidatorClient(committee []sequencer.Address) *ValidatorClient {
	return &ValidatorClient{committee: committee}
}

// CreateBlockProposal implements sequencer.ValidatorClient.
func (v *ValidatorClient) CreateBlockProposal(ctx context.Context, header sequencer.Header, archive sequencer.ArchiveRoot, txHashes []sequencer.TxHash) (*sequencer.BlockProposal, error) {
	return &sequencer.BlockProposal{
		Header:      header,
		ArchiveRoot: archive,
		TxHashes:    txHashes,
	}, nil
}

// BroadcastBlockProposal implements sequencer.ValidatorClient.
func (v *ValidatorClient) BroadcastBlockProposal(ctx context.Context, proposal *sequencer.BlockProposal) error {
	log.WithField("txs", len(proposal.TxHashes)).Debug("broadcast block proposal to committee")
	return nil
}

// CollectAttestations implements sequencer.ValidatorClient, returning an
// attestation from every committee member regardless of threshold.
func (v *ValidatorClient) CollectAttestations(ctx context.Context, proposal *sequencer.BlockProposal, threshold int) ([]sequencer.Attestation, error) {
	attestations := make([]sequencer.Attestation, 0, len(v.committee))
	for _, member := range v.committee {
		attestations = append(attestations, sequencer.Attestation{Signer: member})
	}
	return attestations, nil
}

// RegisterBlockBuilder implements sequencer.ValidatorClient.
func (v *ValidatorClient) RegisterBlockBuilder(fn func(ctx context.Context, globals sequencer.GlobalVariables) (*sequencer.Block, error)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.builder = fn
}

// Stop implements sequencer.ValidatorClient.
func (v *ValidatorClient) Stop() error { return nil }

// P2PSyncClient is a stand-in for the validator p2p layer's sync-status
// view: a single-process devnet is always synced to whatever the L2
// block source itself reports.
type P2PSyncClient struct {
	blocks sequencer.L2BlockSource
}

// NewP2PSyncClient constructs a P2PSyncClient that mirrors blocks.
func NewP2PSyncClient(blocks sequencer.L2BlockSource) *P2PSyncClient {
	return &P2PSyncClient{blocks: blocks}
}

// SyncedBlockNumber implements sequencer.P2PSyncClient.
func (c *P2PSyncClient) SyncedBlockNumber(ctx context.Context) (uint64, error) {
	return c.blocks.GetBlockNumber(ctx)
}
