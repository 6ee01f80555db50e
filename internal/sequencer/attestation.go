package sequencer

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AttestationCollector broadcasts a block proposal to the committee and
// collects signatures over it before publication.
type AttestationCollector struct {
	Publisher Publisher
	Validator ValidatorClient // nil means "no validator client configured"
	State     *StateMachine
	Metrics   *Metrics
	Clock     DateProvider
}

// threshold computes floor(N*2/3)+1, the quorum required before a block
// may be published.
func threshold(committeeSize int) int {
	return (committeeSize*2)/3 + 1
}

// collect broadcasts header/archive/txHashes as a block proposal to the
// current committee and waits for a quorum of attestations. A nil, nil
// return means "no attestations" (empty committee, or the validator
// declined to propose) and publication proceeds without them.
func (c *AttestationCollector) collect(ctx context.Context, slot Slot, header Header, archive ArchiveRoot, txHashes []TxHash) ([]Attestation, error) {
	committee, err := c.Publisher.GetCurrentEpochCommittee(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get current epoch committee")
	}
	if len(committee) == 0 {
		return nil, nil
	}

	if c.Validator == nil {
		return nil, ErrNoValidator
	}

	if err := c.State.Set(PhaseCollectingAttestations, slot, false); err != nil {
		return nil, err
	}

	proposal, err := c.Validator.CreateBlockProposal(ctx, header, archive, txHashes)
	if err != nil {
		return nil, errors.Wrap(err, "create block proposal")
	}
	if proposal == nil {
		log.Warn("validator declined to create a block proposal")
		return nil, nil
	}

	// roundID correlates this broadcast with the attestations it collects
	// in logs, the way a request ID ties together a fan-out/fan-in RPC
	// round.
	roundID := uuid.New().String()
	if err := c.Validator.BroadcastBlockProposal(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "broadcast block proposal")
	}
	log.WithField("round", roundID).Debug("broadcast block proposal, collecting attestations")

	start := c.Clock.Now()
	thr := threshold(len(committee))
	attestations, err := c.Validator.CollectAttestations(ctx, proposal, thr)
	if c.Metrics != nil {
		c.Metrics.attestationTimer()(float64(c.Clock.Now().Sub(start).Milliseconds()))
	}
	if err != nil {
		return nil, errors.Wrap(err, "collect attestations")
	}
	log.WithField("round", roundID).WithField("count", len(attestations)).Debug("collected attestations")

	return orderByCommittee(attestations, committee), nil
}

// orderByCommittee reorders attestations to match committee order, the
// order required by the rollup contract's verifier, dropping any
// attestation from a signer not in the committee.
func orderByCommittee(attestations []Attestation, committee []Address) []Attestation {
	bySigner := make(map[Address]Attestation, len(attestations))
	for _, a := range attestations {
		bySigner[a.Signer] = a
	}

	ordered := make([]Attestation, 0, len(attestations))
	for _, member := range committee {
		if a, ok := bySigner[member]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered
}
