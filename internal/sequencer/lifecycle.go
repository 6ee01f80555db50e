package sequencer

import "github.com/pkg/errors"

// Start force-sets the phase to Idle and begins polling. Calling it on
// an already-started sequencer starts no second poll loop, but still
// forces the phase to Idle.
func (s *Sequencer) Start() {
	_ = s.state.Set(PhaseIdle, NoSlot, true)
	s.loop.start()
}

// Stop halts polling, interrupts any in-flight L1 submission, and stops
// the validator client and slasher. It blocks until the in-flight tick,
// if any, has returned.
func (s *Sequencer) Stop() error {
	_ = s.state.Set(PhaseStopped, NoSlot, true)
	s.collab.Publisher.Interrupt()
	s.loop.stop()

	var first error
	if s.collab.Validator != nil {
		if err := s.collab.Validator.Stop(); err != nil && first == nil {
			first = errors.Wrap(err, "stop validator client")
		}
	}
	if s.collab.Slasher != nil {
		if err := s.collab.Slasher.Stop(); err != nil && first == nil {
			first = errors.Wrap(err, "stop slasher")
		}
	}
	return first
}

// Restart re-arms the publisher and resumes polling after a Stop.
func (s *Sequencer) Restart() error {
	if err := s.collab.Publisher.Restart(); err != nil {
		return errors.Wrap(err, "restart publisher")
	}
	_ = s.state.Set(PhaseIdle, NoSlot, true)
	s.loop.start()
	return nil
}

// Flush arms the flushing flag so the next built block skips the
// minTxsPerBlock gate exactly once.
func (s *Sequencer) Flush() {
	s.setFlushing(true)
}

// UpdateConfig merges u into the live config and re-derives the
// TimeTable, rejecting the whole update if the result is invalid so a
// bad hot-reload never leaves the sequencer running against a
// half-applied config.
func (s *Sequencer) UpdateConfig(u ConfigUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg
	next.apply(u)
	if err := next.validate(); err != nil {
		return err
	}
	table, err := deriveTimeTable(s.rollupConsts, next.MaxL1TxInclusionSecs, next.EnforceTimeTable)
	if err != nil {
		return err
	}

	s.cfg = next
	s.table = table
	s.state.reconfigure(s.rollupConsts, table, next.EnforceTimeTable)

	if u.GovernancePayload != nil {
		s.collab.Publisher.SetGovernancePayload(next.GovernancePayload)
	}
	return nil
}
