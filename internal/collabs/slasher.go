package collabs

// Slasher is a single-process stand-in for the real governance/slashing
// payload producer: a devnet harness has nothing to slash, so it always
// reports no payload.
type Slasher struct{}

// NewSlasher constructs a no-op Slasher.
func NewSlasher() *Slasher { return &Slasher{} }

// GetSlashPayload implements sequencer.Slasher.
func (Slasher) GetSlashPayload() ([]byte, error) { return nil, nil }

// Stop implements sequencer.Slasher.
func (Slasher) Stop() error { return nil }
