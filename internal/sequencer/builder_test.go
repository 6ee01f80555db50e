package sequencer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/rollupnode/sequencer/internal/sequencer/mocks"
)

type fixedTxIterator struct {
	txs []Tx
	i   int
}

func (it *fixedTxIterator) Next() (Tx, bool) {
	if it.i >= len(it.txs) {
		return Tx{}, false
	}
	tx := it.txs[it.i]
	it.i++
	return tx, true
}

func newBuildHarness(t *testing.T) (*BlockAssembler, *mocks.MockWorldState, *mocks.MockL1ToL2MessageSource, *mocks.MockTxPool, *mocks.MockPublicProcessorFactory, *mocks.MockBlockBuilderFactory, *mocks.MockPublicProcessor, *mocks.MockBlockBuilder) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorldState(ctrl)
	l1ToL2 := mocks.NewMockL1ToL2MessageSource(ctrl)
	pool := mocks.NewMockTxPool(ctrl)
	procFct := mocks.NewMockPublicProcessorFactory(ctrl)
	builderFct := mocks.NewMockBlockBuilderFactory(ctrl)
	proc := mocks.NewMockPublicProcessor(ctrl)
	builder := mocks.NewMockBlockBuilder(ctrl)

	a := &BlockAssembler{
		WorldState:   ws,
		L1ToL2:       l1ToL2,
		Pool:         pool,
		ProcessorFct: procFct,
		BuilderFct:   builderFct,
		Clock:        fixedClock{time.Unix(1000, 0)},
		RollupConsts: RollupConstants{SlotDuration: 36, L1GenesisTime: 1000},
	}
	return a, ws, l1ToL2, pool, procFct, builderFct, proc, builder
}

func TestBuildBlockHappyPath(t *testing.T) {
	ctx := context.Background()
	a, ws, l1ToL2, pool, procFct, builderFct, proc, builder := newBuildHarness(t)

	globals := GlobalVariables{BlockNumber: 5, Slot: Slot(2)}
	processorFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))
	builderFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))

	l1ToL2.EXPECT().GetL1ToL2Messages(ctx, uint64(5)).Return(nil, nil)
	ws.EXPECT().SyncImmediate(ctx, uint64(4)).Return(nil)
	ws.EXPECT().Fork(ctx).Return(processorFork, nil)
	ws.EXPECT().Fork(ctx).Return(builderFork, nil)
	processorFork.EXPECT().Close().Return(nil).AnyTimes()
	builderFork.EXPECT().Close().Return(nil).AnyTimes()

	procFct.EXPECT().Create(processorFork, Header{}, globals, false).Return(proc)
	builderFct.EXPECT().Create(builderFork).Return(builder)

	builder.EXPECT().StartNewBlock(ctx, globals, gomock.Any()).Return(nil)

	pendingIter := &fixedTxIterator{}
	pool.EXPECT().IteratePendingTxs().Return(pendingIter)

	processed := []Tx{{Hash: TxHash{0x01}}, {Hash: TxHash{0x02}}}
	proc.EXPECT().Process(ctx, pendingIter, gomock.Any(), gomock.Any()).Return(processed, nil, nil)

	builder.EXPECT().AddTxs(ctx, processed).Return(nil)
	block := &Block{}
	builder.EXPECT().SetBlockCompleted(ctx).Return(block, nil)

	res, err := a.buildBlock(ctx, globals, Header{}, nil, false, BuildOpts{MaxTxsPerBlock: 10, MinTxsPerBlock: 1})
	require.NoError(t, err)
	require.Same(t, block, res.Block)
	require.Equal(t, 2, res.NumTxs)
}

func TestBuildBlockTooFewTxsWhenNotFlushing(t *testing.T) {
	ctx := context.Background()
	a, ws, l1ToL2, pool, procFct, builderFct, proc, builder := newBuildHarness(t)

	globals := GlobalVariables{BlockNumber: 5, Slot: Slot(2)}
	processorFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))
	builderFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))

	l1ToL2.EXPECT().GetL1ToL2Messages(ctx, uint64(5)).Return(nil, nil)
	ws.EXPECT().SyncImmediate(ctx, uint64(4)).Return(nil)
	ws.EXPECT().Fork(ctx).Return(processorFork, nil)
	ws.EXPECT().Fork(ctx).Return(builderFork, nil)
	processorFork.EXPECT().Close().Return(nil).AnyTimes()
	builderFork.EXPECT().Close().Return(nil).AnyTimes()

	procFct.EXPECT().Create(processorFork, Header{}, globals, false).Return(proc)
	builderFct.EXPECT().Create(builderFork).Return(builder)
	builder.EXPECT().StartNewBlock(ctx, globals, gomock.Any()).Return(nil)

	pendingIter := &fixedTxIterator{}
	pool.EXPECT().IteratePendingTxs().Return(pendingIter)
	proc.EXPECT().Process(ctx, pendingIter, gomock.Any(), gomock.Any()).Return(nil, nil, nil)

	_, err := a.buildBlock(ctx, globals, Header{}, nil, false, BuildOpts{MaxTxsPerBlock: 10, MinTxsPerBlock: 5})
	require.ErrorIs(t, err, ErrTooFewTxs)
}

func TestBuildBlockIgnoresMinTxsWhenFlushing(t *testing.T) {
	ctx := context.Background()
	a, ws, l1ToL2, pool, procFct, builderFct, proc, builder := newBuildHarness(t)

	globals := GlobalVariables{BlockNumber: 5, Slot: Slot(2)}
	processorFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))
	builderFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))

	l1ToL2.EXPECT().GetL1ToL2Messages(ctx, uint64(5)).Return(nil, nil)
	ws.EXPECT().SyncImmediate(ctx, uint64(4)).Return(nil)
	ws.EXPECT().Fork(ctx).Return(processorFork, nil)
	ws.EXPECT().Fork(ctx).Return(builderFork, nil)
	processorFork.EXPECT().Close().Return(nil).AnyTimes()
	builderFork.EXPECT().Close().Return(nil).AnyTimes()

	procFct.EXPECT().Create(processorFork, Header{}, globals, false).Return(proc)
	builderFct.EXPECT().Create(builderFork).Return(builder)
	builder.EXPECT().StartNewBlock(ctx, globals, gomock.Any()).Return(nil)

	pendingIter := &fixedTxIterator{}
	pool.EXPECT().IteratePendingTxs().Return(pendingIter)
	proc.EXPECT().Process(ctx, pendingIter, gomock.Any(), gomock.Any()).Return(nil, nil, nil)

	builder.EXPECT().AddTxs(ctx, []Tx(nil)).Return(nil)
	block := &Block{}
	builder.EXPECT().SetBlockCompleted(ctx).Return(block, nil)

	res, err := a.buildBlock(ctx, globals, Header{}, nil, false, BuildOpts{MaxTxsPerBlock: 10, MinTxsPerBlock: 5, Flushing: true})
	require.NoError(t, err)
	require.Same(t, block, res.Block)
}

func TestBuildBlockDropsFailedTxsFromPool(t *testing.T) {
	ctx := context.Background()
	a, ws, l1ToL2, pool, procFct, builderFct, proc, builder := newBuildHarness(t)

	globals := GlobalVariables{BlockNumber: 5, Slot: Slot(2)}
	processorFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))
	builderFork := mocks.NewMockWorldStateHandle(gomock.NewController(t))

	l1ToL2.EXPECT().GetL1ToL2Messages(ctx, uint64(5)).Return(nil, nil)
	ws.EXPECT().SyncImmediate(ctx, uint64(4)).Return(nil)
	ws.EXPECT().Fork(ctx).Return(processorFork, nil)
	ws.EXPECT().Fork(ctx).Return(builderFork, nil)
	processorFork.EXPECT().Close().Return(nil).AnyTimes()
	builderFork.EXPECT().Close().Return(nil).AnyTimes()

	procFct.EXPECT().Create(processorFork, Header{}, globals, false).Return(proc)
	builderFct.EXPECT().Create(builderFork).Return(builder)
	builder.EXPECT().StartNewBlock(ctx, globals, gomock.Any()).Return(nil)

	pendingIter := &fixedTxIterator{}
	pool.EXPECT().IteratePendingTxs().Return(pendingIter)

	processed := []Tx{{Hash: TxHash{0x01}}}
	failed := []FailedTx{{Hash: TxHash{0x02}, Reason: errors.New("too large")}}
	proc.EXPECT().Process(ctx, pendingIter, gomock.Any(), gomock.Any()).Return(processed, failed, nil)
	pool.EXPECT().DeleteTxs([]TxHash{{0x02}}).Return(nil)

	builder.EXPECT().AddTxs(ctx, processed).Return(nil)
	block := &Block{}
	builder.EXPECT().SetBlockCompleted(ctx).Return(block, nil)

	_, err := a.buildBlock(ctx, globals, Header{}, nil, false, BuildOpts{MaxTxsPerBlock: 10, MinTxsPerBlock: 1})
	require.NoError(t, err)
}
