package sequencer

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/rollupnode/sequencer/internal/sequencer/mocks"
)

func TestThreshold(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 3: 3, 4: 3, 9: 7}
	for size, want := range cases {
		if got := threshold(size); got != want {
			t.Errorf("threshold(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestCollectReturnsNilForEmptyCommittee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().GetCurrentEpochCommittee(ctx).Return(nil, nil)

	c := &AttestationCollector{Publisher: pub}
	attestations, err := c.collect(ctx, Slot(1), Header{}, ArchiveRoot{}, nil)
	require.NoError(t, err)
	require.Nil(t, attestations)
}

func TestCollectErrorsWithoutValidatorClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().GetCurrentEpochCommittee(ctx).Return([]Address{{0x01}}, nil)

	table, rc := newTestTable(t)
	state := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	state.reconfigure(rc, table, false)
	state.Set(PhaseIdle, NoSlot, true)

	c := &AttestationCollector{Publisher: pub, State: state}
	_, err := c.collect(ctx, Slot(1), Header{}, ArchiveRoot{}, nil)
	require.ErrorIs(t, err, ErrNoValidator)
}

func TestCollectOrdersAttestationsByCommittee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	committee := []Address{{0x01}, {0x02}, {0x03}}
	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().GetCurrentEpochCommittee(ctx).Return(committee, nil)

	validator := mocks.NewMockValidatorClient(ctrl)
	proposal := &BlockProposal{}
	validator.EXPECT().CreateBlockProposal(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(proposal, nil)
	validator.EXPECT().BroadcastBlockProposal(ctx, proposal).Return(nil)
	validator.EXPECT().CollectAttestations(ctx, proposal, threshold(len(committee))).Return([]Attestation{
		{Signer: Address{0x03}},
		{Signer: Address{0x01}},
	}, nil)

	table, rc := newTestTable(t)
	state := newStateMachine(fixedClock{time.Unix(1000, 0)}, nil)
	state.reconfigure(rc, table, false)
	state.Set(PhaseIdle, NoSlot, true)

	c := &AttestationCollector{Publisher: pub, Validator: validator, State: state, Clock: fixedClock{time.Unix(1000, 0)}}
	attestations, err := c.collect(ctx, Slot(1), Header{}, ArchiveRoot{}, nil)
	require.NoError(t, err)
	require.Len(t, attestations, 2)
	require.Equal(t, Address{0x01}, attestations[0].Signer)
	require.Equal(t, Address{0x03}, attestations[1].Signer)
}
