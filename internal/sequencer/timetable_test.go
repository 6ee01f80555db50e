package sequencer

import "testing"

func TestDeriveTimeTable(t *testing.T) {
	rc := RollupConstants{SlotDuration: 36, EthereumSlotDuration: 12, L1GenesisTime: 0}
	table, err := deriveTimeTable(rc, 6, true)
	if err != nil {
		t.Fatalf("deriveTimeTable: %v", err)
	}

	l1PublishingTime := 12.0 - 6.0
	wantRemaining := 36.0 - initialTimeSecs - blockPrepareTimeSecs - l1PublishingTime - 2*attestationPropagationTimeSecs - blockValidationTimeSecs
	wantProcessTxTime := wantRemaining / 2

	if got := table.ProcessTxTime(); got != wantProcessTxTime {
		t.Errorf("ProcessTxTime() = %v, want %v", got, wantProcessTxTime)
	}
	if got := table.Deadline(PhaseInitializingProposal); got != initialTimeSecs {
		t.Errorf("Deadline(InitializingProposal) = %v, want %v", got, initialTimeSecs)
	}
	if got := table.Deadline(PhaseCreatingBlock); got != initialTimeSecs+blockPrepareTimeSecs {
		t.Errorf("Deadline(CreatingBlock) = %v, want %v", got, initialTimeSecs+blockPrepareTimeSecs)
	}
	wantCollect := initialTimeSecs + blockPrepareTimeSecs + wantProcessTxTime + blockValidationTimeSecs
	if got := table.Deadline(PhaseCollectingAttestations); got != wantCollect {
		t.Errorf("Deadline(CollectingAttestations) = %v, want %v", got, wantCollect)
	}
	wantPublish := 36.0 - l1PublishingTime
	if got := table.Deadline(PhasePublishingBlock); got != wantPublish {
		t.Errorf("Deadline(PublishingBlock) = %v, want %v", got, wantPublish)
	}
	if got := table.Deadline(PhaseIdle); got != 36.0 {
		t.Errorf("Deadline(Idle) = %v, want slot duration %v", got, 36.0)
	}
}

func TestDeriveTimeTableRejectsNegativeRemainingWhenEnforced(t *testing.T) {
	rc := RollupConstants{SlotDuration: 4, EthereumSlotDuration: 12, L1GenesisTime: 0}
	if _, err := deriveTimeTable(rc, 0, true); !IsConfigInvalid(err) {
		t.Fatalf("deriveTimeTable with impossible slot duration: got %v, want ErrConfigInvalid", err)
	}
}

func TestDeriveTimeTableToleratesNegativeRemainingWhenNotEnforced(t *testing.T) {
	rc := RollupConstants{SlotDuration: 4, EthereumSlotDuration: 12, L1GenesisTime: 0}
	if _, err := deriveTimeTable(rc, 0, false); err != nil {
		t.Fatalf("deriveTimeTable with enforcement disabled: %v", err)
	}
}
