package sequencer

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/rollupnode/sequencer/internal/sequencer/mocks"
)

func TestValidateForSubmissionWrapsRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().ValidateBlockForSubmission(ctx, Header{}).Return(errors.New("bad header"))

	err := validateForSubmission(ctx, pub, Header{})
	require.ErrorIs(t, err, ErrPublisherRejected)
}

func TestValidateForSubmissionPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().ValidateBlockForSubmission(ctx, Header{}).Return(nil)

	require.NoError(t, validateForSubmission(ctx, pub, Header{}))
}

func TestPublishWrapsUnderlyingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	block := &Block{}
	pub.EXPECT().ProposeL2Block(ctx, block, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("rpc failure"))

	err := publish(ctx, pub, block, nil, nil, nil)
	require.ErrorIs(t, err, ErrPublisherRejected)
}

func TestPublishTreatsDeclinedAsRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	block := &Block{}
	pub.EXPECT().ProposeL2Block(ctx, block, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	err := publish(ctx, pub, block, nil, nil, nil)
	require.ErrorIs(t, err, ErrPublisherRejected)
}

func TestPublishSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	pub := mocks.NewMockPublisher(ctrl)
	block := &Block{}
	pub.EXPECT().ProposeL2Block(ctx, block, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, publish(ctx, pub, block, nil, nil, nil))
}
