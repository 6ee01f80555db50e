package sequencer

import (
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestTable(t *testing.T) (*TimeTable, RollupConstants) {
	t.Helper()
	rc := RollupConstants{SlotDuration: 36, EthereumSlotDuration: 12, L1GenesisTime: 1000}
	table, err := deriveTimeTable(rc, 6, true)
	if err != nil {
		t.Fatalf("deriveTimeTable: %v", err)
	}
	return table, rc
}

func TestStateMachineStoppedIgnoresUnforcedTransitions(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, true)

	if err := sm.Set(PhaseIdle, NoSlot, false); err != nil {
		t.Fatalf("Set on stopped sequencer: %v", err)
	}
	if got := sm.Phase(); got != PhaseStopped {
		t.Fatalf("Phase() = %s, want stopped", got)
	}
}

func TestStateMachineForceLeavesStopped(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, true)

	if err := sm.Set(PhaseIdle, NoSlot, true); err != nil {
		t.Fatalf("forced Set: %v", err)
	}
	if got := sm.Phase(); got != PhaseIdle {
		t.Fatalf("Phase() = %s, want idle", got)
	}
}

func TestStateMachineUnrestrictedTransitionIgnoresDeadline(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, true)
	sm.Set(PhaseIdle, NoSlot, true)

	// Way past any restricted deadline, but Synchronizing is unrestricted.
	sm.clock = fixedClock{time.Unix(1000+100, 0)}
	if err := sm.Set(PhaseSynchronizing, Slot(1), false); err != nil {
		t.Fatalf("Set(Synchronizing): %v", err)
	}
}

func TestStateMachineRejectsLateRestrictedTransition(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, true)
	sm.Set(PhaseIdle, NoSlot, true)

	slot := Slot(1)
	slotStart := rc.SlotStart(slot) // = 1036
	// InitializingProposal's deadline is initialTimeSecs == 2s into the slot.
	sm.clock = fixedClock{time.Unix(int64(slotStart)+5, 0)}

	err := sm.Set(PhaseInitializingProposal, slot, false)
	if !IsSequencerTooSlow(err) {
		t.Fatalf("Set() = %v, want SequencerTooSlow", err)
	}
	// The phase must not have advanced.
	if got := sm.Phase(); got != PhaseIdle {
		t.Fatalf("Phase() after rejected transition = %s, want idle", got)
	}
}

func TestStateMachineAllowsOnTimeRestrictedTransition(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, true)
	sm.Set(PhaseIdle, NoSlot, true)

	slot := Slot(1)
	slotStart := rc.SlotStart(slot)
	sm.clock = fixedClock{time.Unix(int64(slotStart)+1, 0)}

	if err := sm.Set(PhaseInitializingProposal, slot, false); err != nil {
		t.Fatalf("Set(InitializingProposal): %v", err)
	}
	if got := sm.Phase(); got != PhaseInitializingProposal {
		t.Fatalf("Phase() = %s, want initializing-proposal", got)
	}
}

func TestStateMachineDoesNotEnforceWhenDisabled(t *testing.T) {
	table, rc := newTestTable(t)
	sm := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	sm.reconfigure(rc, table, false)
	sm.Set(PhaseIdle, NoSlot, true)

	slot := Slot(1)
	slotStart := rc.SlotStart(slot)
	sm.clock = fixedClock{time.Unix(int64(slotStart)+30, 0)}

	if err := sm.Set(PhaseInitializingProposal, slot, false); err != nil {
		t.Fatalf("Set() with enforcement disabled: %v", err)
	}
}
