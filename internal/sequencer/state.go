package sequencer

import (
	"math"
	"sync"
)

// StateMachine holds the sequencer phase and rejects forward transitions
// whose deadline has already passed. It is the only thing in the
// package that mutates Phase; the work loop serializes all calls to
// Set.
type StateMachine struct {
	mu        sync.Mutex
	phase     Phase
	table     *TimeTable
	rc        RollupConstants
	enforce   bool
	clock     DateProvider
	metrics   *Metrics
}

// newStateMachine constructs a StateMachine in the Stopped phase.
func newStateMachine(clock DateProvider, metrics *Metrics) *StateMachine {
	return &StateMachine{
		phase:   PhaseStopped,
		clock:   clock,
		metrics: metrics,
	}
}

// reconfigure atomically swaps in a new TimeTable/RollupConstants/
// enforcement flag, without touching the current phase. Each Set call
// reads the table current at that moment, so a reconfigure during a
// tick applies to that tick's remaining transitions; only the tick's own
// configSnapshot copy (used for the build deadline) stays unchanged.
func (sm *StateMachine) reconfigure(rc RollupConstants, table *TimeTable, enforce bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.rc = rc
	sm.table = table
	sm.enforce = enforce
}

// Phase returns the current phase.
func (sm *StateMachine) Phase() Phase {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.phase
}

// Set attempts to transition to phase for slot. slot is ignored
// (treated as 0) for unrestricted phases; callers pass NoSlot by
// convention when transitioning to Idle/Stopped/Synchronizing.
func (sm *StateMachine) Set(phase Phase, slot Slot, force bool) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	// Rule 1: Stopped only yields to a forced transition.
	if sm.phase == PhaseStopped && !force {
		return nil
	}

	from := sm.phase

	if slot == NoSlot || !phase.restricted() {
		sm.phase = phase
		return nil
	}

	deadline := sm.table.Deadline(phase)
	secondsIntoSlot := round3(float64(sm.clock.Now().Unix()) - float64(sm.rc.SlotStart(slot)))

	if sm.enforce && deadline < sm.table.SlotDuration() && secondsIntoSlot > deadline {
		return &SequencerTooSlow{From: from, To: phase, Deadline: deadline, SecondsIntoSlot: secondsIntoSlot}
	}

	sm.phase = phase
	bufferMs := (deadline - secondsIntoSlot) * 1000
	if sm.metrics != nil {
		sm.metrics.stateTransitionBuffer(bufferMs, phase)
	}
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
