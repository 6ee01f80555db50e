package sequencer

import "testing"

func TestPhaseRestricted(t *testing.T) {
	restricted := map[Phase]bool{
		PhaseStopped:                false,
		PhaseIdle:                   false,
		PhaseSynchronizing:          false,
		PhaseProposerCheck:          false,
		PhaseInitializingProposal:   true,
		PhaseCreatingBlock:          true,
		PhaseCollectingAttestations: true,
		PhasePublishingBlock:        true,
	}
	for phase, want := range restricted {
		if got := phase.restricted(); got != want {
			t.Errorf("%s.restricted() = %v, want %v", phase, got, want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if got := PhaseCreatingBlock.String(); got != "creating-block" {
		t.Errorf("String() = %q, want creating-block", got)
	}
	if got := Phase(255).String(); got != "unknown" {
		t.Errorf("String() on out-of-range phase = %q, want unknown", got)
	}
}
