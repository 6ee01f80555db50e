package sequencer

// Fixed allowances, in seconds. These are not configurable: they model
// the time the surrounding system (L1 inclusion, attestation gossip,
// block validation) needs regardless of chain parameters.
const (
	initialTimeSecs                = 2.0 // latest start of proposer work
	blockPrepareTimeSecs           = 1.0 // pre-build setup
	attestationPropagationTimeSecs = 2.0 // one-way; counted twice
	blockValidationTimeSecs        = 1.0
)

// TimeTable maps each Phase to a deadline expressed in seconds from slot
// start. It is immutable once derived; updateConfig derives a fresh one
// and swaps it in atomically.
type TimeTable struct {
	slotDuration  float64
	deadlines     [8]float64
	processTxTime float64
}

// deriveTimeTable computes the TimeTable for rc/enforceTimeTable. It
// fails with ErrConfigInvalid when enforcement is on and the derived
// remaining time budget is negative.
func deriveTimeTable(rc RollupConstants, maxL1TxInclusionSecs uint64, enforceTimeTable bool) (*TimeTable, error) {
	s := float64(rc.SlotDuration)
	e := float64(rc.EthereumSlotDuration)
	m := float64(maxL1TxInclusionSecs)

	l1PublishingTime := e - m
	remainingTimeInSlot := s - initialTimeSecs - blockPrepareTimeSecs - l1PublishingTime -
		2*attestationPropagationTimeSecs - blockValidationTimeSecs

	if enforceTimeTable && remainingTimeInSlot < 0 {
		return nil, errConfigf(
			"remaining time in slot is negative (%.3fs) with slotDuration=%.0f ethereumSlotDuration=%.0f maxL1TxInclusion=%.0f",
			remainingTimeInSlot, s, e, m,
		)
	}

	processTxTime := remainingTimeInSlot / 2

	tt := &TimeTable{slotDuration: s, processTxTime: processTxTime}
	for p := PhaseStopped; int(p) < len(tt.deadlines); p++ {
		if !p.restricted() {
			tt.deadlines[p] = s
		}
	}
	tt.deadlines[PhaseInitializingProposal] = initialTimeSecs
	tt.deadlines[PhaseCreatingBlock] = initialTimeSecs + blockPrepareTimeSecs
	tt.deadlines[PhaseCollectingAttestations] = initialTimeSecs + blockPrepareTimeSecs + processTxTime + blockValidationTimeSecs
	tt.deadlines[PhasePublishingBlock] = s - l1PublishingTime

	return tt, nil
}

// Deadline returns the seconds-into-slot deadline for phase.
func (tt *TimeTable) Deadline(phase Phase) float64 {
	return tt.deadlines[phase]
}

// ProcessTxTime is the tx-processing deadline exposed to BlockAssembler.
func (tt *TimeTable) ProcessTxTime() float64 {
	return tt.processTxTime
}

// SlotDuration is the configured L2 slot length this table was derived
// from.
func (tt *TimeTable) SlotDuration() float64 {
	return tt.slotDuration
}
