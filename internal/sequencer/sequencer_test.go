package sequencer

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/rollupnode/sequencer/internal/sequencer/mocks"
)

type sequencerHarness struct {
	seq    *Sequencer
	pub    *mocks.MockPublisher
	pool   *mocks.MockTxPool
	ws     *mocks.MockWorldState
	l2     *mocks.MockL2BlockSource
	l1ToL2 *mocks.MockL1ToL2MessageSource
	p2p    *mocks.MockP2PSyncClient
	gvb    *mocks.MockGlobalVariableBuilder
}

func newSequencerHarness(t *testing.T, cfg SequencerConfig) *sequencerHarness {
	ctrl := gomock.NewController(t)
	h := &sequencerHarness{
		pub:    mocks.NewMockPublisher(ctrl),
		pool:   mocks.NewMockTxPool(ctrl),
		ws:     mocks.NewMockWorldState(ctrl),
		l2:     mocks.NewMockL2BlockSource(ctrl),
		l1ToL2: mocks.NewMockL1ToL2MessageSource(ctrl),
		p2p:    mocks.NewMockP2PSyncClient(ctrl),
		gvb:    mocks.NewMockGlobalVariableBuilder(ctrl),
	}
	// CastVote is fired detached from every successful tick past the
	// proposer check; tests don't assert on it directly.
	h.pub.EXPECT().CastVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	rc := RollupConstants{SlotDuration: 36, EthereumSlotDuration: 12, L1GenesisTime: 1000}
	collab := Collaborators{
		Publisher:             h.pub,
		Pool:                  h.pool,
		WorldState:            h.ws,
		L2Blocks:              h.l2,
		L1ToL2:                h.l1ToL2,
		P2PSync:               h.p2p,
		GlobalVariableBuilder: h.gvb,
		ProcessorFactory:      collabsProcessorStub{},
		BuilderFactory:        collabsBuilderStub{},
		Clock:                 fixedClock{time.Unix(1036, 0)},
	}
	seq, err := New(prometheus.NewRegistry(), collab, cfg, rc)
	require.NoError(t, err)
	// New leaves the sequencer Stopped, which ignores unforced transitions;
	// force it to Idle the way Start does, without starting the poll loop.
	require.NoError(t, seq.state.Set(PhaseIdle, NoSlot, true))
	h.seq = seq
	return h
}

// collabsProcessorStub/collabsBuilderStub are only reached on the path
// where a block actually gets built; tests that skip before CreatingBlock
// never call Create.
type collabsProcessorStub struct{}

func (collabsProcessorStub) Create(fork WorldStateHandle, historicalHeader Header, globals GlobalVariables, enableTracing bool) PublicProcessor {
	panic("not reached in this test")
}

type collabsBuilderStub struct{}

func (collabsBuilderStub) Create(fork WorldStateHandle) BlockBuilder {
	panic("not reached in this test")
}

// genesisSync satisfies syncGate's genesis-accepting path. doTick reads
// the L2 tip a second time after the gate passes, so GetLatestBlock is
// stubbed for both calls.
func genesisSync(h *sequencerHarness, ctx context.Context) {
	h.ws.EXPECT().Status(ctx).Return(WorldStateStatus{Hash: UndefinedWorldStateHash}, nil)
	h.l2.EXPECT().GetLatestBlock(ctx).Return(L2Tip{}, false, nil).Times(2)
	h.p2p.EXPECT().SyncedBlockNumber(ctx).Return(uint64(0), nil)
	h.l1ToL2.EXPECT().GetBlockNumber(ctx).Return(uint64(0), nil)
}

func TestDoTickSkipsWhenNotSynced(t *testing.T) {
	cfg := DefaultSequencerConfig()
	h := newSequencerHarness(t, cfg)
	ctx := context.Background()

	h.ws.EXPECT().Status(ctx).Return(WorldStateStatus{Hash: [32]byte{0xFF}}, nil)
	h.l2.EXPECT().GetLatestBlock(ctx).Return(L2Tip{Number: 5, Archive: ArchiveRoot{0x01}}, true, nil)

	require.NoError(t, h.seq.doTick(ctx))
	require.Equal(t, PhaseSynchronizing, h.seq.Status())
}

func TestDoTickSkipsWhenNotProposersTurn(t *testing.T) {
	cfg := DefaultSequencerConfig()
	h := newSequencerHarness(t, cfg)
	ctx := context.Background()

	genesisSync(h, ctx)
	h.pub.EXPECT().CanProposeAtNextEthBlock(ctx, GenesisArchiveRoot).Return(NoSlot, uint64(0), ErrNotEligible)

	require.NoError(t, h.seq.doTick(ctx))
	require.Equal(t, PhaseProposerCheck, h.seq.Status())
}

func TestDoTickClaimsQuoteWhenBelowMinTxs(t *testing.T) {
	cfg := DefaultSequencerConfig()
	cfg.MinTxsPerBlock = 5
	h := newSequencerHarness(t, cfg)
	ctx := context.Background()

	genesisSync(h, ctx)
	h.pub.EXPECT().CanProposeAtNextEthBlock(ctx, GenesisArchiveRoot).Return(Slot(1), uint64(0), nil)
	h.gvb.EXPECT().BuildGlobalVariables(ctx, uint64(0), cfg.Coinbase, cfg.FeeRecipient, Slot(1)).Return(GlobalVariables{BlockNumber: 0, Slot: Slot(1), Timestamp: 1036}, nil)
	h.pool.EXPECT().PendingTxCount().Return(1)

	h.pub.EXPECT().GetClaimableEpoch(ctx).Return(Epoch(0), false, nil)

	require.NoError(t, h.seq.doTick(ctx))
}
