package sequencer

import "time"

// Config option keys, named the way the teacher names its flag/config
// keys (config/keys.go's FooKey = "foo-key" const block), kept here as
// documentation of the wire names a hot-reload source would use to
// populate SequencerConfig.
const (
	PollingIntervalMsKey        = "sequencer-polling-interval-ms"
	MaxTxsPerBlockKey           = "sequencer-max-txs-per-block"
	MinTxsPerBlockKey           = "sequencer-min-txs-per-block"
	MaxBlockSizeBytesKey        = "sequencer-max-block-size-bytes"
	MaxBlockDaGasKey            = "sequencer-max-block-da-gas"
	MaxBlockL2GasKey            = "sequencer-max-block-l2-gas"
	CoinbaseKey                 = "sequencer-coinbase"
	FeeRecipientKey             = "sequencer-fee-recipient"
	AllowedInSetupKey           = "sequencer-allowed-in-setup"
	EnforceFeesKey              = "sequencer-enforce-fees"
	EnforceTimeTableKey         = "sequencer-enforce-time-table"
	MaxL1TxInclusionIntoSlotKey = "sequencer-max-l1-tx-inclusion-time-into-slot"
	GovernanceProposerPayloadKey = "sequencer-governance-proposer-payload"
)

const (
	defaultPollingInterval    = time.Second
	defaultMaxTxsPerBlock     = 32
	defaultMinTxsPerBlock     = 1
	defaultMaxBlockSizeBytes  = 1 << 20 // 1 MiB
)

// SequencerConfig holds the recognized sequencer options. AllowedInSetup
// and EnforceFees aren't interpreted by the sequencer itself; they're
// forwarded to the public processor as a TxValidatorPolicy so the tx
// validators it drives can apply them.
type SequencerConfig struct {
	PollingInterval      time.Duration
	MaxTxsPerBlock       int
	MinTxsPerBlock       int
	MaxBlockSizeBytes    int
	MaxBlockDaGas        uint64
	MaxBlockL2Gas        uint64
	Coinbase             [20]byte
	FeeRecipient         [20]byte
	AllowedInSetup       []string
	EnforceFees          bool
	EnforceTimeTable     bool
	MaxL1TxInclusionSecs uint64
	GovernancePayload    []byte
}

// ConfigUpdate carries only the fields a caller wants to change; nil
// pointers are left untouched by Sequencer.UpdateConfig.
type ConfigUpdate struct {
	PollingInterval      *time.Duration
	MaxTxsPerBlock       *int
	MinTxsPerBlock       *int
	MaxBlockSizeBytes    *int
	MaxBlockDaGas        *uint64
	MaxBlockL2Gas        *uint64
	Coinbase             *[20]byte
	FeeRecipient         *[20]byte
	AllowedInSetup       []string
	EnforceFees          *bool
	EnforceTimeTable     *bool
	MaxL1TxInclusionSecs *uint64
	GovernancePayload    []byte
}

// DefaultSequencerConfig returns the documented defaults.
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		PollingInterval:   defaultPollingInterval,
		MaxTxsPerBlock:    defaultMaxTxsPerBlock,
		MinTxsPerBlock:    defaultMinTxsPerBlock,
		MaxBlockSizeBytes: defaultMaxBlockSizeBytes,
	}
}

// apply merges a ConfigUpdate into cfg in place, following the
// non-undefined-fields-only merge rule of updateConfig.
func (cfg *SequencerConfig) apply(u ConfigUpdate) {
	if u.PollingInterval != nil {
		cfg.PollingInterval = *u.PollingInterval
	}
	if u.MaxTxsPerBlock != nil {
		cfg.MaxTxsPerBlock = *u.MaxTxsPerBlock
	}
	if u.MinTxsPerBlock != nil {
		cfg.MinTxsPerBlock = *u.MinTxsPerBlock
	}
	if u.MaxBlockSizeBytes != nil {
		cfg.MaxBlockSizeBytes = *u.MaxBlockSizeBytes
	}
	if u.MaxBlockDaGas != nil {
		cfg.MaxBlockDaGas = *u.MaxBlockDaGas
	}
	if u.MaxBlockL2Gas != nil {
		cfg.MaxBlockL2Gas = *u.MaxBlockL2Gas
	}
	if u.Coinbase != nil {
		cfg.Coinbase = *u.Coinbase
	}
	if u.FeeRecipient != nil {
		cfg.FeeRecipient = *u.FeeRecipient
	}
	if u.AllowedInSetup != nil {
		cfg.AllowedInSetup = u.AllowedInSetup
	}
	if u.EnforceFees != nil {
		cfg.EnforceFees = *u.EnforceFees
	}
	if u.EnforceTimeTable != nil {
		cfg.EnforceTimeTable = *u.EnforceTimeTable
	}
	if u.MaxL1TxInclusionSecs != nil {
		cfg.MaxL1TxInclusionSecs = *u.MaxL1TxInclusionSecs
	}
	if u.GovernancePayload != nil {
		cfg.GovernancePayload = u.GovernancePayload
	}
}

// validate checks the config invariants that aren't already covered by
// TimeTable derivation.
func (cfg *SequencerConfig) validate() error {
	if cfg.MinTxsPerBlock > cfg.MaxTxsPerBlock {
		return errConfigf("minTxsPerBlock (%d) exceeds maxTxsPerBlock (%d)", cfg.MinTxsPerBlock, cfg.MaxTxsPerBlock)
	}
	return nil
}

// RollupConstants are immutable, constructor-set chain parameters.
type RollupConstants struct {
	// SlotDuration is the L2 slot length in seconds.
	SlotDuration uint64
	// EthereumSlotDuration is the L1 slot length in seconds.
	EthereumSlotDuration uint64
	// L1GenesisTime is the unix time, in seconds, of L2 slot 0.
	L1GenesisTime uint64
}

// SlotStart returns the unix time, in seconds, at which slot begins.
func (rc RollupConstants) SlotStart(slot Slot) uint64 {
	return rc.L1GenesisTime + uint64(slot)*rc.SlotDuration
}
