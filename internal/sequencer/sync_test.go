package sequencer

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/rollupnode/sequencer/internal/sequencer/mocks"
)

func TestSyncGateAllConditionsHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	ws := mocks.NewMockWorldState(ctrl)
	l2 := mocks.NewMockL2BlockSource(ctrl)
	p2p := mocks.NewMockP2PSyncClient(ctrl)
	l1ToL2 := mocks.NewMockL1ToL2MessageSource(ctrl)

	tip := L2Tip{Number: 5, Archive: ArchiveRoot{0x01}}
	ws.EXPECT().Status(ctx).Return(WorldStateStatus{Hash: [32]byte(tip.Archive)}, nil)
	l2.EXPECT().GetLatestBlock(ctx).Return(tip, true, nil)
	p2p.EXPECT().SyncedBlockNumber(ctx).Return(uint64(5), nil)
	l1ToL2.EXPECT().GetBlockNumber(ctx).Return(uint64(5), nil)

	synced, err := syncGate(ctx, ws, l2, p2p, l1ToL2)
	require.NoError(t, err)
	require.True(t, synced)
}

func TestSyncGateGenesisAcceptsUndefinedHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	ws := mocks.NewMockWorldState(ctrl)
	l2 := mocks.NewMockL2BlockSource(ctrl)
	p2p := mocks.NewMockP2PSyncClient(ctrl)
	l1ToL2 := mocks.NewMockL1ToL2MessageSource(ctrl)

	ws.EXPECT().Status(ctx).Return(WorldStateStatus{Hash: UndefinedWorldStateHash}, nil)
	l2.EXPECT().GetLatestBlock(ctx).Return(L2Tip{}, false, nil)
	p2p.EXPECT().SyncedBlockNumber(ctx).Return(uint64(0), nil)
	l1ToL2.EXPECT().GetBlockNumber(ctx).Return(uint64(0), nil)

	synced, err := syncGate(ctx, ws, l2, p2p, l1ToL2)
	require.NoError(t, err)
	require.True(t, synced)
}

func TestSyncGateWorldStateMismatchIsNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	ws := mocks.NewMockWorldState(ctrl)
	l2 := mocks.NewMockL2BlockSource(ctrl)
	p2p := mocks.NewMockP2PSyncClient(ctrl)
	l1ToL2 := mocks.NewMockL1ToL2MessageSource(ctrl)

	tip := L2Tip{Number: 5, Archive: ArchiveRoot{0x01}}
	ws.EXPECT().Status(ctx).Return(WorldStateStatus{Hash: [32]byte{0xFF}}, nil)
	l2.EXPECT().GetLatestBlock(ctx).Return(tip, true, nil)

	synced, err := syncGate(ctx, ws, l2, p2p, l1ToL2)
	require.NoError(t, err)
	require.False(t, synced)
}

func TestSyncGatePropagatesCollaboratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	ws := mocks.NewMockWorldState(ctrl)
	l2 := mocks.NewMockL2BlockSource(ctrl)
	p2p := mocks.NewMockP2PSyncClient(ctrl)
	l1ToL2 := mocks.NewMockL1ToL2MessageSource(ctrl)

	ws.EXPECT().Status(ctx).Return(WorldStateStatus{}, errors.New("db unavailable"))

	_, err := syncGate(ctx, ws, l2, p2p, l1ToL2)
	require.Error(t, err)
}
