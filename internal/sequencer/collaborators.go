package sequencer

import (
	"context"
	"time"
)

// This file is the sequencer's entire view of the outside world: every
// method here is the minimum surface a test double or a real
// implementation must provide. No concrete collaborator type is ever
// referenced from the rest of this package.

// Publisher is the L1-facing collaborator: transaction signing, gas and
// nonce handling live entirely on its side.
type Publisher interface {
	CanProposeAtNextEthBlock(ctx context.Context, tipArchive ArchiveRoot) (slot Slot, blockNumber uint64, err error)
	ValidateBlockForSubmission(ctx context.Context, header Header) error
	ProposeL2Block(ctx context.Context, block *Block, attestations []Attestation, txHashes []TxHash, quote *EpochProofQuote) (published bool, err error)
	GetCurrentEpochCommittee(ctx context.Context) ([]Address, error)
	GetClaimableEpoch(ctx context.Context) (epoch Epoch, ok bool, err error)
	ValidateProofQuote(ctx context.Context, quote EpochProofQuote) (*EpochProofQuote, error)
	ClaimEpochProofRight(ctx context.Context, quote EpochProofQuote) (bool, error)
	CastVote(ctx context.Context, slot Slot, timestamp uint64, kind VoteKind) error
	RegisterSlashPayloadGetter(fn func() ([]byte, error))
	SetGovernancePayload(payload []byte)
	GetSenderAddress() Address
	Interrupt()
	Restart() error
}

// ValidatorClient is the committee-facing p2p collaborator.
type ValidatorClient interface {
	CreateBlockProposal(ctx context.Context, header Header, archive ArchiveRoot, txHashes []TxHash) (*BlockProposal, error)
	BroadcastBlockProposal(ctx context.Context, proposal *BlockProposal) error
	CollectAttestations(ctx context.Context, proposal *BlockProposal, threshold int) ([]Attestation, error)
	RegisterBlockBuilder(fn func(ctx context.Context, globals GlobalVariables) (*Block, error))
	Stop() error
}

// TxIterator lazily walks the pool's pending transactions. Next
// returns ok=false once exhausted.
type TxIterator interface {
	Next() (Tx, bool)
}

// TxPool is the out-of-scope transaction pool.
type TxPool interface {
	PendingTxCount() int
	IteratePendingTxs() TxIterator
	DeleteTxs(hashes []TxHash) error
	GetEpochProofQuotes(ctx context.Context, epoch Epoch) ([]EpochProofQuote, error)
	Status() (string, error)
}

// WorldStateHandle is a single fork of the world-state database,
// independently closable.
type WorldStateHandle interface {
	Close() error
}

// WorldState is the out-of-scope authenticated state database.
type WorldState interface {
	Status(ctx context.Context) (WorldStateStatus, error)
	SyncImmediate(ctx context.Context, blockNumber uint64) error
	Fork(ctx context.Context) (WorldStateHandle, error)
}

// P2PSyncClient is the narrow slice of the validator peer-to-peer layer
// that SyncGate needs: how far the local p2p view has synced.
type P2PSyncClient interface {
	SyncedBlockNumber(ctx context.Context) (uint64, error)
}

// L2BlockSource reports the L2 chain's local tip.
type L2BlockSource interface {
	// GetLatestBlock returns the current tip, or ok=false before genesis.
	GetLatestBlock(ctx context.Context) (tip L2Tip, ok bool, err error)
	GetBlockNumber(ctx context.Context) (uint64, error)
}

// L1ToL2MessageSource is the out-of-scope message bridge reader.
type L1ToL2MessageSource interface {
	GetL1ToL2Messages(ctx context.Context, blockNumber uint64) ([]L1ToL2Message, error)
	GetBlockNumber(ctx context.Context) (uint64, error)
}

// PublicProcessor runs pooled transactions against a world-state fork
// under a deadline. This is the interface the sequencer drives the
// out-of-scope public-function processor through; policy carries the
// AllowedInSetup/EnforceFees config knobs through to whatever tx
// validators the processor consults, unexamined by the sequencer.
type PublicProcessor interface {
	Process(ctx context.Context, txs TxIterator, limits TxValidationLimits, policy TxValidatorPolicy) (processed []Tx, failed []FailedTx, err error)
}

// PublicProcessorFactory constructs a PublicProcessor bound to one
// world-state fork and one block's globals.
type PublicProcessorFactory interface {
	Create(fork WorldStateHandle, historicalHeader Header, globals GlobalVariables, enableTracing bool) PublicProcessor
}

// BlockBuilder inserts processed transactions into the rollup tree on a
// dedicated world-state fork.
type BlockBuilder interface {
	StartNewBlock(ctx context.Context, globals GlobalVariables, l1ToL2Messages []L1ToL2Message) error
	AddTxs(ctx context.Context, txs []Tx) error
	SetBlockCompleted(ctx context.Context) (*Block, error)
}

// BlockBuilderFactory constructs a BlockBuilder bound to one world-state
// fork.
type BlockBuilderFactory interface {
	Create(fork WorldStateHandle) BlockBuilder
}

// GlobalVariableBuilder is the out-of-scope collaborator that derives a
// block's globals.
type GlobalVariableBuilder interface {
	BuildGlobalVariables(ctx context.Context, blockNumber uint64, coinbase, feeRecipient Address, slot Slot) (GlobalVariables, error)
}

// Slasher supplies the governance/slashing vote payload producer and is
// stopped alongside the sequencer.
type Slasher interface {
	GetSlashPayload() ([]byte, error)
	Stop() error
}

// DateProvider is the sole time source; tests substitute it to simulate
// slot timing deterministically.
type DateProvider interface {
	Now() time.Time
}

// systemClock is the only DateProvider implementation outside of tests.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the production DateProvider.
var SystemClock DateProvider = systemClock{}
