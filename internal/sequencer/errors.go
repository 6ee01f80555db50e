package sequencer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds surfaced by the sequencer loop. An error from the
// sequencer is one of these sentinels (possibly wrapped), a
// *SequencerTooSlow, or a collaborator failure wrapped with context by
// errors.Wrap.
var (
	// ErrNotEligible is returned when this node may not propose at the
	// next L1 block, or when the underlying RPC failed to determine
	// eligibility at all.
	ErrNotEligible = errors.New("sequencer: not eligible to propose")

	// ErrProposerMismatch is returned when the publisher reports a
	// different block number than the expected next L2 block. It does not
	// wrap ErrNotEligible; the work loop handles the two the same way.
	ErrProposerMismatch = errors.New("sequencer: proposer block number mismatch")

	// ErrTooFewTxs aborts a build when fewer than minTxsPerBlock
	// transactions survived processing and flushing isn't active.
	ErrTooFewTxs = errors.New("sequencer: too few transactions to build a block")

	// ErrConfigInvalid is raised from updateConfig when the derived
	// TimeTable (or another config invariant) doesn't hold.
	ErrConfigInvalid = errors.New("sequencer: invalid configuration")

	// ErrPublisherRejected is raised when validateForSubmission or
	// proposeL2Block refuses the block.
	ErrPublisherRejected = errors.New("sequencer: publisher rejected block")

	// ErrClaimFailed is raised when a standalone proof-quote claim
	// (no block being built) fails at the publisher.
	ErrClaimFailed = errors.New("sequencer: proof quote claim failed")

	// ErrNoValidator is raised by AttestationCollector when a non-empty
	// committee exists but no validator client is configured.
	ErrNoValidator = errors.New("sequencer: no validator client configured")
)

// SequencerTooSlow is raised by the StateMachine's deadline gate. It is
// a distinct type, not a sentinel, because it carries the timing
// evidence callers log.
type SequencerTooSlow struct {
	From           Phase
	To             Phase
	Deadline       float64
	SecondsIntoSlot float64
}

func (e *SequencerTooSlow) Error() string {
	return fmt.Sprintf(
		"sequencer too slow: %s -> %s, deadline %.3fs, actual %.3fs into slot",
		e.From, e.To, e.Deadline, e.SecondsIntoSlot,
	)
}

// IsSequencerTooSlow reports whether err is (or wraps) a SequencerTooSlow,
// the only error kind the work loop swallows to a WARN log.
func IsSequencerTooSlow(err error) bool {
	var tooSlow *SequencerTooSlow
	return errors.As(err, &tooSlow)
}

// IsConfigInvalid reports whether err is (or wraps) ErrConfigInvalid.
func IsConfigInvalid(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}

// errConfigf wraps a formatted message into ErrConfigInvalid.
func errConfigf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfigInvalid, format, args...)
}
