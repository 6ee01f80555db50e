package sequencer

// Address is a 20-byte account/committee-member identifier.
type Address [20]byte

// TxHash identifies a pooled transaction.
type TxHash [32]byte

// ArchiveRoot commits to the L2 block history.
type ArchiveRoot [32]byte

// GenesisArchiveRoot is the sentinel archive root used when no L2 tip
// exists yet.
var GenesisArchiveRoot ArchiveRoot

// Epoch identifies a contiguous run of slots.
type Epoch uint64

// GlobalVariables is the per-block header material the external
// global-variable builder produces.
type GlobalVariables struct {
	BlockNumber  uint64
	Coinbase     Address
	FeeRecipient Address
	Slot         Slot
	Timestamp    uint64
}

// Header is the partial or final proposal header threaded through
// buildBlock and publication.
type Header struct {
	ParentArchiveRoot ArchiveRoot
	Globals           GlobalVariables
	TxsHash           TxHash
	OutHash           [32]byte
}

// Tx is a pooled transaction as seen by the sequencer: the pool and
// processor are opaque collaborators, so the sequencer only needs the
// hash for pool bookkeeping and the byte size for block limits.
type Tx struct {
	Hash TxHash
	Size int
}

// FailedTx pairs a hash the processor rejected with the reason, so it
// can be both deleted from the pool and logged.
type FailedTx struct {
	Hash   TxHash
	Reason error
}

// Block is a completed L2 block as returned by the block builder.
type Block struct {
	Header Header
	Txs    []Tx
}

// BlockProposal is broadcast to the committee before attestation
// collection.
type BlockProposal struct {
	Header      Header
	ArchiveRoot ArchiveRoot
	TxHashes    []TxHash
}

// Attestation is a single committee member's signature over a
// BlockProposal.
type Attestation struct {
	Signer    Address
	Signature []byte
}

// EpochProofQuote is a signed bid to prove a prior epoch. Payload
// carries the opaque signed fields this package leaves unmodeled.
type EpochProofQuote struct {
	EpochToProve   Epoch
	ValidUntilSlot Slot
	BasisPointFee  uint32
	Payload        []byte
}

// VoteKind distinguishes the two fire-and-forget votes cast every tick.
type VoteKind uint8

const (
	VoteGovernance VoteKind = iota
	VoteSlashing
)

func (k VoteKind) String() string {
	if k == VoteSlashing {
		return "slashing"
	}
	return "governance"
}

// L1ToL2Message is a message the sequencer includes when starting a new
// block.
type L1ToL2Message struct {
	Hash    [32]byte
	Payload []byte
}

// L2Tip describes the current head as seen by the L2 block source.
type L2Tip struct {
	Number  uint64
	Archive ArchiveRoot
}

// WorldStateStatus is the minimal world-state view SyncGate compares
// against the L2 block source.
type WorldStateStatus struct {
	Hash [32]byte
}

// UndefinedWorldStateHash is the sentinel "undefined" hash meaning
// genesis.
var UndefinedWorldStateHash [32]byte

// TxValidationLimits bounds a single buildBlock invocation's call into
// the public processor.
type TxValidationLimits struct {
	DeadlineUnixSeconds float64
	HasDeadline         bool
	MaxTransactions     int
	MaxBlockSizeBytes   int
}

// TxValidatorPolicy carries the config knobs the sequencer itself never
// interprets but forwards to the public processor, which applies them
// to the tx validators it drives: AllowedInSetup filters which senders
// may submit setup-phase transactions, EnforceFees toggles fee-rule
// enforcement.
type TxValidatorPolicy struct {
	AllowedInSetup []string
	EnforceFees    bool
}
