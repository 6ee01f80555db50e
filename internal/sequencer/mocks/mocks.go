// Code generated by hand in the shape MockGen would produce. DO NOT EDIT
// without updating internal/sequencer/collaborators.go first.
// Source: github.com/rollupnode/sequencer/internal/sequencer (interfaces:
// Publisher, ValidatorClient, TxIterator, TxPool, WorldStateHandle,
// WorldState, P2PSyncClient, L2BlockSource, L1ToL2MessageSource,
// PublicProcessor, PublicProcessorFactory, BlockBuilder,
// BlockBuilderFactory, GlobalVariableBuilder, Slasher, DateProvider)

// Package mocks is a gomock package for the sequencer's collaborator
// interfaces, in the style of snow/validators/mock_set.go.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"

	sequencer "github.com/rollupnode/sequencer/internal/sequencer"
)

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// CanProposeAtNextEthBlock mocks base method.
func (m *MockPublisher) CanProposeAtNextEthBlock(ctx context.Context, tipArchive sequencer.ArchiveRoot) (sequencer.Slot, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanProposeAtNextEthBlock", ctx, tipArchive)
	ret0, _ := ret[0].(sequencer.Slot)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CanProposeAtNextEthBlock indicates an expected call of CanProposeAtNextEthBlock.
func (mr *MockPublisherMockRecorder) CanProposeAtNextEthBlock(ctx, tipArchive interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanProposeAtNextEthBlock", reflect.TypeOf((*MockPublisher)(nil).CanProposeAtNextEthBlock), ctx, tipArchive)
}

// ValidateBlockForSubmission mocks base method.
func (m *MockPublisher) ValidateBlockForSubmission(ctx context.Context, header sequencer.Header) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateBlockForSubmission", ctx, header)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateBlockForSubmission indicates an expected call of ValidateBlockForSubmission.
func (mr *MockPublisherMockRecorder) ValidateBlockForSubmission(ctx, header interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateBlockForSubmission", reflect.TypeOf((*MockPublisher)(nil).ValidateBlockForSubmission), ctx, header)
}

// ProposeL2Block mocks base method.
func (m *MockPublisher) ProposeL2Block(ctx context.Context, block *sequencer.Block, attestations []sequencer.Attestation, txHashes []sequencer.TxHash, quote *sequencer.EpochProofQuote) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProposeL2Block", ctx, block, attestations, txHashes, quote)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProposeL2Block indicates an expected call of ProposeL2Block.
func (mr *MockPublisherMockRecorder) ProposeL2Block(ctx, block, attestations, txHashes, quote interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProposeL2Block", reflect.TypeOf((*MockPublisher)(nil).ProposeL2Block), ctx, block, attestations, txHashes, quote)
}

// GetCurrentEpochCommittee mocks base method.
func (m *MockPublisher) GetCurrentEpochCommittee(ctx context.Context) ([]sequencer.Address, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentEpochCommittee", ctx)
	ret0, _ := ret[0].([]sequencer.Address)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCurrentEpochCommittee indicates an expected call of GetCurrentEpochCommittee.
func (mr *MockPublisherMockRecorder) GetCurrentEpochCommittee(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentEpochCommittee", reflect.TypeOf((*MockPublisher)(nil).GetCurrentEpochCommittee), ctx)
}

// GetClaimableEpoch mocks base method.
func (m *MockPublisher) GetClaimableEpoch(ctx context.Context) (sequencer.Epoch, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetClaimableEpoch", ctx)
	ret0, _ := ret[0].(sequencer.Epoch)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetClaimableEpoch indicates an expected call of GetClaimableEpoch.
func (mr *MockPublisherMockRecorder) GetClaimableEpoch(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClaimableEpoch", reflect.TypeOf((*MockPublisher)(nil).GetClaimableEpoch), ctx)
}

// ValidateProofQuote mocks base method.
func (m *MockPublisher) ValidateProofQuote(ctx context.Context, quote sequencer.EpochProofQuote) (*sequencer.EpochProofQuote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateProofQuote", ctx, quote)
	ret0, _ := ret[0].(*sequencer.EpochProofQuote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateProofQuote indicates an expected call of ValidateProofQuote.
func (mr *MockPublisherMockRecorder) ValidateProofQuote(ctx, quote interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateProofQuote", reflect.TypeOf((*MockPublisher)(nil).ValidateProofQuote), ctx, quote)
}

// ClaimEpochProofRight mocks base method.
func (m *MockPublisher) ClaimEpochProofRight(ctx context.Context, quote sequencer.EpochProofQuote) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimEpochProofRight", ctx, quote)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimEpochProofRight indicates an expected call of ClaimEpochProofRight.
func (mr *MockPublisherMockRecorder) ClaimEpochProofRight(ctx, quote interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimEpochProofRight", reflect.TypeOf((*MockPublisher)(nil).ClaimEpochProofRight), ctx, quote)
}

// CastVote mocks base method.
func (m *MockPublisher) CastVote(ctx context.Context, slot sequencer.Slot, timestamp uint64, kind sequencer.VoteKind) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CastVote", ctx, slot, timestamp, kind)
	ret0, _ := ret[0].(error)
	return ret0
}

// CastVote indicates an expected call of CastVote.
func (mr *MockPublisherMockRecorder) CastVote(ctx, slot, timestamp, kind interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CastVote", reflect.TypeOf((*MockPublisher)(nil).CastVote), ctx, slot, timestamp, kind)
}

// RegisterSlashPayloadGetter mocks base method.
func (m *MockPublisher) RegisterSlashPayloadGetter(fn func() ([]byte, error)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RegisterSlashPayloadGetter", fn)
}

// RegisterSlashPayloadGetter indicates an expected call of RegisterSlashPayloadGetter.
func (mr *MockPublisherMockRecorder) RegisterSlashPayloadGetter(fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterSlashPayloadGetter", reflect.TypeOf((*MockPublisher)(nil).RegisterSlashPayloadGetter), fn)
}

// SetGovernancePayload mocks base method.
func (m *MockPublisher) SetGovernancePayload(payload []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetGovernancePayload", payload)
}

// SetGovernancePayload indicates an expected call of SetGovernancePayload.
func (mr *MockPublisherMockRecorder) SetGovernancePayload(payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetGovernancePayload", reflect.TypeOf((*MockPublisher)(nil).SetGovernancePayload), payload)
}

// GetSenderAddress mocks base method.
func (m *MockPublisher) GetSenderAddress() sequencer.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSenderAddress")
	ret0, _ := ret[0].(sequencer.Address)
	return ret0
}

// GetSenderAddress indicates an expected call of GetSenderAddress.
func (mr *MockPublisherMockRecorder) GetSenderAddress() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSenderAddress", reflect.TypeOf((*MockPublisher)(nil).GetSenderAddress))
}

// Interrupt mocks base method.
func (m *MockPublisher) Interrupt() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Interrupt")
}

// Interrupt indicates an expected call of Interrupt.
func (mr *MockPublisherMockRecorder) Interrupt() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Interrupt", reflect.TypeOf((*MockPublisher)(nil).Interrupt))
}

// Restart mocks base method.
func (m *MockPublisher) Restart() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Restart")
	ret0, _ := ret[0].(error)
	return ret0
}

// Restart indicates an expected call of Restart.
func (mr *MockPublisherMockRecorder) Restart() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restart", reflect.TypeOf((*MockPublisher)(nil).Restart))
}

// MockValidatorClient is a mock of ValidatorClient interface.
type MockValidatorClient struct {
	ctrl     *gomock.Controller
	recorder *MockValidatorClientMockRecorder
}

// MockValidatorClientMockRecorder is the mock recorder for MockValidatorClient.
type MockValidatorClientMockRecorder struct {
	mock *MockValidatorClient
}

// NewMockValidatorClient creates a new mock instance.
func NewMockValidatorClient(ctrl *gomock.Controller) *MockValidatorClient {
	mock := &MockValidatorClient{ctrl: ctrl}
	mock.recorder = &MockValidatorClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockValidatorClient) EXPECT() *MockValidatorClientMockRecorder {
	return m.recorder
}

// CreateBlockProposal mocks base method.
func (m *MockValidatorClient) CreateBlockProposal(ctx context.Context, header sequencer.Header, archive sequencer.ArchiveRoot, txHashes []sequencer.TxHash) (*sequencer.BlockProposal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBlockProposal", ctx, header, archive, txHashes)
	ret0, _ := ret[0].(*sequencer.BlockProposal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateBlockProposal indicates an expected call of CreateBlockProposal.
func (mr *MockValidatorClientMockRecorder) CreateBlockProposal(ctx, header, archive, txHashes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBlockProposal", reflect.TypeOf((*MockValidatorClient)(nil).CreateBlockProposal), ctx, header, archive, txHashes)
}

// BroadcastBlockProposal mocks base method.
func (m *MockValidatorClient) BroadcastBlockProposal(ctx context.Context, proposal *sequencer.BlockProposal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BroadcastBlockProposal", ctx, proposal)
	ret0, _ := ret[0].(error)
	return ret0
}

// BroadcastBlockProposal indicates an expected call of BroadcastBlockProposal.
func (mr *MockValidatorClientMockRecorder) BroadcastBlockProposal(ctx, proposal interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BroadcastBlockProposal", reflect.TypeOf((*MockValidatorClient)(nil).BroadcastBlockProposal), ctx, proposal)
}

// CollectAttestations mocks base method.
func (m *MockValidatorClient) CollectAttestations(ctx context.Context, proposal *sequencer.BlockProposal, threshold int) ([]sequencer.Attestation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CollectAttestations", ctx, proposal, threshold)
	ret0, _ := ret[0].([]sequencer.Attestation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CollectAttestations indicates an expected call of CollectAttestations.
func (mr *MockValidatorClientMockRecorder) CollectAttestations(ctx, proposal, threshold interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CollectAttestations", reflect.TypeOf((*MockValidatorClient)(nil).CollectAttestations), ctx, proposal, threshold)
}

// RegisterBlockBuilder mocks base method.
func (m *MockValidatorClient) RegisterBlockBuilder(fn func(ctx context.Context, globals sequencer.GlobalVariables) (*sequencer.Block, error)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RegisterBlockBuilder", fn)
}

// RegisterBlockBuilder indicates an expected call of RegisterBlockBuilder.
func (mr *MockValidatorClientMockRecorder) RegisterBlockBuilder(fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterBlockBuilder", reflect.TypeOf((*MockValidatorClient)(nil).RegisterBlockBuilder), fn)
}

// Stop mocks base method.
func (m *MockValidatorClient) Stop() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stop")
	ret0, _ := ret[0].(error)
	return ret0
}

// Stop indicates an expected call of Stop.
func (mr *MockValidatorClientMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockValidatorClient)(nil).Stop))
}

// MockTxIterator is a mock of TxIterator interface.
type MockTxIterator struct {
	ctrl     *gomock.Controller
	recorder *MockTxIteratorMockRecorder
}

// MockTxIteratorMockRecorder is the mock recorder for MockTxIterator.
type MockTxIteratorMockRecorder struct {
	mock *MockTxIterator
}

// NewMockTxIterator creates a new mock instance.
func NewMockTxIterator(ctrl *gomock.Controller) *MockTxIterator {
	mock := &MockTxIterator{ctrl: ctrl}
	mock.recorder = &MockTxIteratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxIterator) EXPECT() *MockTxIteratorMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *MockTxIterator) Next() (sequencer.Tx, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(sequencer.Tx)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockTxIteratorMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockTxIterator)(nil).Next))
}

// MockTxPool is a mock of TxPool interface.
type MockTxPool struct {
	ctrl     *gomock.Controller
	recorder *MockTxPoolMockRecorder
}

// MockTxPoolMockRecorder is the mock recorder for MockTxPool.
type MockTxPoolMockRecorder struct {
	mock *MockTxPool
}

// NewMockTxPool creates a new mock instance.
func NewMockTxPool(ctrl *gomock.Controller) *MockTxPool {
	mock := &MockTxPool{ctrl: ctrl}
	mock.recorder = &MockTxPoolMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxPool) EXPECT() *MockTxPoolMockRecorder {
	return m.recorder
}

// PendingTxCount mocks base method.
func (m *MockTxPool) PendingTxCount() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PendingTxCount")
	ret0, _ := ret[0].(int)
	return ret0
}

// PendingTxCount indicates an expected call of PendingTxCount.
func (mr *MockTxPoolMockRecorder) PendingTxCount() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingTxCount", reflect.TypeOf((*MockTxPool)(nil).PendingTxCount))
}

// IteratePendingTxs mocks base method.
func (m *MockTxPool) IteratePendingTxs() sequencer.TxIterator {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IteratePendingTxs")
	ret0, _ := ret[0].(sequencer.TxIterator)
	return ret0
}

// IteratePendingTxs indicates an expected call of IteratePendingTxs.
func (mr *MockTxPoolMockRecorder) IteratePendingTxs() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IteratePendingTxs", reflect.TypeOf((*MockTxPool)(nil).IteratePendingTxs))
}

// DeleteTxs mocks base method.
func (m *MockTxPool) DeleteTxs(hashes []sequencer.TxHash) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTxs", hashes)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTxs indicates an expected call of DeleteTxs.
func (mr *MockTxPoolMockRecorder) DeleteTxs(hashes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTxs", reflect.TypeOf((*MockTxPool)(nil).DeleteTxs), hashes)
}

// GetEpochProofQuotes mocks base method.
func (m *MockTxPool) GetEpochProofQuotes(ctx context.Context, epoch sequencer.Epoch) ([]sequencer.EpochProofQuote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEpochProofQuotes", ctx, epoch)
	ret0, _ := ret[0].([]sequencer.EpochProofQuote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEpochProofQuotes indicates an expected call of GetEpochProofQuotes.
func (mr *MockTxPoolMockRecorder) GetEpochProofQuotes(ctx, epoch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEpochProofQuotes", reflect.TypeOf((*MockTxPool)(nil).GetEpochProofQuotes), ctx, epoch)
}

// Status mocks base method.
func (m *MockTxPool) Status() (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Status")
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Status indicates an expected call of Status.
func (mr *MockTxPoolMockRecorder) Status() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Status", reflect.TypeOf((*MockTxPool)(nil).Status))
}

// MockWorldStateHandle is a mock of WorldStateHandle interface.
type MockWorldStateHandle struct {
	ctrl     *gomock.Controller
	recorder *MockWorldStateHandleMockRecorder
}

// MockWorldStateHandleMockRecorder is the mock recorder for MockWorldStateHandle.
type MockWorldStateHandleMockRecorder struct {
	mock *MockWorldStateHandle
}

// NewMockWorldStateHandle creates a new mock instance.
func NewMockWorldStateHandle(ctrl *gomock.Controller) *MockWorldStateHandle {
	mock := &MockWorldStateHandle{ctrl: ctrl}
	mock.recorder = &MockWorldStateHandleMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorldStateHandle) EXPECT() *MockWorldStateHandleMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockWorldStateHandle) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockWorldStateHandleMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockWorldStateHandle)(nil).Close))
}

// MockWorldState is a mock of WorldState interface.
type MockWorldState struct {
	ctrl     *gomock.Controller
	recorder *MockWorldStateMockRecorder
}

// MockWorldStateMockRecorder is the mock recorder for MockWorldState.
type MockWorldStateMockRecorder struct {
	mock *MockWorldState
}

// NewMockWorldState creates a new mock instance.
func NewMockWorldState(ctrl *gomock.Controller) *MockWorldState {
	mock := &MockWorldState{ctrl: ctrl}
	mock.recorder = &MockWorldStateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorldState) EXPECT() *MockWorldStateMockRecorder {
	return m.recorder
}

// Status mocks base method.
func (m *MockWorldState) Status(ctx context.Context) (sequencer.WorldStateStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Status", ctx)
	ret0, _ := ret[0].(sequencer.WorldStateStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Status indicates an expected call of Status.
func (mr *MockWorldStateMockRecorder) Status(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Status", reflect.TypeOf((*MockWorldState)(nil).Status), ctx)
}

// SyncImmediate mocks base method.
func (m *MockWorldState) SyncImmediate(ctx context.Context, blockNumber uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncImmediate", ctx, blockNumber)
	ret0, _ := ret[0].(error)
	return ret0
}

// SyncImmediate indicates an expected call of SyncImmediate.
func (mr *MockWorldStateMockRecorder) SyncImmediate(ctx, blockNumber interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncImmediate", reflect.TypeOf((*MockWorldState)(nil).SyncImmediate), ctx, blockNumber)
}

// Fork mocks base method.
func (m *MockWorldState) Fork(ctx context.Context) (sequencer.WorldStateHandle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Fork", ctx)
	ret0, _ := ret[0].(sequencer.WorldStateHandle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Fork indicates an expected call of Fork.
func (mr *MockWorldStateMockRecorder) Fork(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fork", reflect.TypeOf((*MockWorldState)(nil).Fork), ctx)
}

// MockP2PSyncClient is a mock of P2PSyncClient interface.
type MockP2PSyncClient struct {
	ctrl     *gomock.Controller
	recorder *MockP2PSyncClientMockRecorder
}

// MockP2PSyncClientMockRecorder is the mock recorder for MockP2PSyncClient.
type MockP2PSyncClientMockRecorder struct {
	mock *MockP2PSyncClient
}

// NewMockP2PSyncClient creates a new mock instance.
func NewMockP2PSyncClient(ctrl *gomock.Controller) *MockP2PSyncClient {
	mock := &MockP2PSyncClient{ctrl: ctrl}
	mock.recorder = &MockP2PSyncClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockP2PSyncClient) EXPECT() *MockP2PSyncClientMockRecorder {
	return m.recorder
}

// SyncedBlockNumber mocks base method.
func (m *MockP2PSyncClient) SyncedBlockNumber(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncedBlockNumber", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SyncedBlockNumber indicates an expected call of SyncedBlockNumber.
func (mr *MockP2PSyncClientMockRecorder) SyncedBlockNumber(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncedBlockNumber", reflect.TypeOf((*MockP2PSyncClient)(nil).SyncedBlockNumber), ctx)
}

// MockL2BlockSource is a mock of L2BlockSource interface.
type MockL2BlockSource struct {
	ctrl     *gomock.Controller
	recorder *MockL2BlockSourceMockRecorder
}

// MockL2BlockSourceMockRecorder is the mock recorder for MockL2BlockSource.
type MockL2BlockSourceMockRecorder struct {
	mock *MockL2BlockSource
}

// NewMockL2BlockSource creates a new mock instance.
func NewMockL2BlockSource(ctrl *gomock.Controller) *MockL2BlockSource {
	mock := &MockL2BlockSource{ctrl: ctrl}
	mock.recorder = &MockL2BlockSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockL2BlockSource) EXPECT() *MockL2BlockSourceMockRecorder {
	return m.recorder
}

// GetLatestBlock mocks base method.
func (m *MockL2BlockSource) GetLatestBlock(ctx context.Context) (sequencer.L2Tip, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLatestBlock", ctx)
	ret0, _ := ret[0].(sequencer.L2Tip)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetLatestBlock indicates an expected call of GetLatestBlock.
func (mr *MockL2BlockSourceMockRecorder) GetLatestBlock(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLatestBlock", reflect.TypeOf((*MockL2BlockSource)(nil).GetLatestBlock), ctx)
}

// GetBlockNumber mocks base method.
func (m *MockL2BlockSource) GetBlockNumber(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockNumber", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlockNumber indicates an expected call of GetBlockNumber.
func (mr *MockL2BlockSourceMockRecorder) GetBlockNumber(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockNumber", reflect.TypeOf((*MockL2BlockSource)(nil).GetBlockNumber), ctx)
}

// MockL1ToL2MessageSource is a mock of L1ToL2MessageSource interface.
type MockL1ToL2MessageSource struct {
	ctrl     *gomock.Controller
	recorder *MockL1ToL2MessageSourceMockRecorder
}

// MockL1ToL2MessageSourceMockRecorder is the mock recorder for MockL1ToL2MessageSource.
type MockL1ToL2MessageSourceMockRecorder struct {
	mock *MockL1ToL2MessageSource
}

// NewMockL1ToL2MessageSource creates a new mock instance.
func NewMockL1ToL2MessageSource(ctrl *gomock.Controller) *MockL1ToL2MessageSource {
	mock := &MockL1ToL2MessageSource{ctrl: ctrl}
	mock.recorder = &MockL1ToL2MessageSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockL1ToL2MessageSource) EXPECT() *MockL1ToL2MessageSourceMockRecorder {
	return m.recorder
}

// GetL1ToL2Messages mocks base method.
func (m *MockL1ToL2MessageSource) GetL1ToL2Messages(ctx context.Context, blockNumber uint64) ([]sequencer.L1ToL2Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetL1ToL2Messages", ctx, blockNumber)
	ret0, _ := ret[0].([]sequencer.L1ToL2Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetL1ToL2Messages indicates an expected call of GetL1ToL2Messages.
func (mr *MockL1ToL2MessageSourceMockRecorder) GetL1ToL2Messages(ctx, blockNumber interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetL1ToL2Messages", reflect.TypeOf((*MockL1ToL2MessageSource)(nil).GetL1ToL2Messages), ctx, blockNumber)
}

// GetBlockNumber mocks base method.
func (m *MockL1ToL2MessageSource) GetBlockNumber(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockNumber", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlockNumber indicates an expected call of GetBlockNumber.
func (mr *MockL1ToL2MessageSourceMockRecorder) GetBlockNumber(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockNumber", reflect.TypeOf((*MockL1ToL2MessageSource)(nil).GetBlockNumber), ctx)
}

// MockPublicProcessor is a mock of PublicProcessor interface.
type MockPublicProcessor struct {
	ctrl     *gomock.Controller
	recorder *MockPublicProcessorMockRecorder
}

// MockPublicProcessorMockRecorder is the mock recorder for MockPublicProcessor.
type MockPublicProcessorMockRecorder struct {
	mock *MockPublicProcessor
}

// NewMockPublicProcessor creates a new mock instance.
func NewMockPublicProcessor(ctrl *gomock.Controller) *MockPublicProcessor {
	mock := &MockPublicProcessor{ctrl: ctrl}
	mock.recorder = &MockPublicProcessorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublicProcessor) EXPECT() *MockPublicProcessorMockRecorder {
	return m.recorder
}

// Process mocks base method.
func (m *MockPublicProcessor) Process(ctx context.Context, txs sequencer.TxIterator, limits sequencer.TxValidationLimits, policy sequencer.TxValidatorPolicy) ([]sequencer.Tx, []sequencer.FailedTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Process", ctx, txs, limits, policy)
	ret0, _ := ret[0].([]sequencer.Tx)
	ret1, _ := ret[1].([]sequencer.FailedTx)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Process indicates an expected call of Process.
func (mr *MockPublicProcessorMockRecorder) Process(ctx, txs, limits, policy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Process", reflect.TypeOf((*MockPublicProcessor)(nil).Process), ctx, txs, limits, policy)
}

// MockPublicProcessorFactory is a mock of PublicProcessorFactory interface.
type MockPublicProcessorFactory struct {
	ctrl     *gomock.Controller
	recorder *MockPublicProcessorFactoryMockRecorder
}

// MockPublicProcessorFactoryMockRecorder is the mock recorder for MockPublicProcessorFactory.
type MockPublicProcessorFactoryMockRecorder struct {
	mock *MockPublicProcessorFactory
}

// NewMockPublicProcessorFactory creates a new mock instance.
func NewMockPublicProcessorFactory(ctrl *gomock.Controller) *MockPublicProcessorFactory {
	mock := &MockPublicProcessorFactory{ctrl: ctrl}
	mock.recorder = &MockPublicProcessorFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublicProcessorFactory) EXPECT() *MockPublicProcessorFactoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPublicProcessorFactory) Create(fork sequencer.WorldStateHandle, historicalHeader sequencer.Header, globals sequencer.GlobalVariables, enableTracing bool) sequencer.PublicProcessor {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", fork, historicalHeader, globals, enableTracing)
	ret0, _ := ret[0].(sequencer.PublicProcessor)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPublicProcessorFactoryMockRecorder) Create(fork, historicalHeader, globals, enableTracing interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPublicProcessorFactory)(nil).Create), fork, historicalHeader, globals, enableTracing)
}

// MockBlockBuilder is a mock of BlockBuilder interface.
type MockBlockBuilder struct {
	ctrl     *gomock.Controller
	recorder *MockBlockBuilderMockRecorder
}

// MockBlockBuilderMockRecorder is the mock recorder for MockBlockBuilder.
type MockBlockBuilderMockRecorder struct {
	mock *MockBlockBuilder
}

// NewMockBlockBuilder creates a new mock instance.
func NewMockBlockBuilder(ctrl *gomock.Controller) *MockBlockBuilder {
	mock := &MockBlockBuilder{ctrl: ctrl}
	mock.recorder = &MockBlockBuilderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlockBuilder) EXPECT() *MockBlockBuilderMockRecorder {
	return m.recorder
}

// StartNewBlock mocks base method.
func (m *MockBlockBuilder) StartNewBlock(ctx context.Context, globals sequencer.GlobalVariables, l1ToL2Messages []sequencer.L1ToL2Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StartNewBlock", ctx, globals, l1ToL2Messages)
	ret0, _ := ret[0].(error)
	return ret0
}

// StartNewBlock indicates an expected call of StartNewBlock.
func (mr *MockBlockBuilderMockRecorder) StartNewBlock(ctx, globals, l1ToL2Messages interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartNewBlock", reflect.TypeOf((*MockBlockBuilder)(nil).StartNewBlock), ctx, globals, l1ToL2Messages)
}

// AddTxs mocks base method.
func (m *MockBlockBuilder) AddTxs(ctx context.Context, txs []sequencer.Tx) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddTxs", ctx, txs)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddTxs indicates an expected call of AddTxs.
func (mr *MockBlockBuilderMockRecorder) AddTxs(ctx, txs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTxs", reflect.TypeOf((*MockBlockBuilder)(nil).AddTxs), ctx, txs)
}

// SetBlockCompleted mocks base method.
func (m *MockBlockBuilder) SetBlockCompleted(ctx context.Context) (*sequencer.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBlockCompleted", ctx)
	ret0, _ := ret[0].(*sequencer.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetBlockCompleted indicates an expected call of SetBlockCompleted.
func (mr *MockBlockBuilderMockRecorder) SetBlockCompleted(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBlockCompleted", reflect.TypeOf((*MockBlockBuilder)(nil).SetBlockCompleted), ctx)
}

// MockBlockBuilderFactory is a mock of BlockBuilderFactory interface.
type MockBlockBuilderFactory struct {
	ctrl     *gomock.Controller
	recorder *MockBlockBuilderFactoryMockRecorder
}

// MockBlockBuilderFactoryMockRecorder is the mock recorder for MockBlockBuilderFactory.
type MockBlockBuilderFactoryMockRecorder struct {
	mock *MockBlockBuilderFactory
}

// NewMockBlockBuilderFactory creates a new mock instance.
func NewMockBlockBuilderFactory(ctrl *gomock.Controller) *MockBlockBuilderFactory {
	mock := &MockBlockBuilderFactory{ctrl: ctrl}
	mock.recorder = &MockBlockBuilderFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlockBuilderFactory) EXPECT() *MockBlockBuilderFactoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBlockBuilderFactory) Create(fork sequencer.WorldStateHandle) sequencer.BlockBuilder {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", fork)
	ret0, _ := ret[0].(sequencer.BlockBuilder)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBlockBuilderFactoryMockRecorder) Create(fork interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBlockBuilderFactory)(nil).Create), fork)
}

// MockGlobalVariableBuilder is a mock of GlobalVariableBuilder interface.
type MockGlobalVariableBuilder struct {
	ctrl     *gomock.Controller
	recorder *MockGlobalVariableBuilderMockRecorder
}

// MockGlobalVariableBuilderMockRecorder is the mock recorder for MockGlobalVariableBuilder.
type MockGlobalVariableBuilderMockRecorder struct {
	mock *MockGlobalVariableBuilder
}

// NewMockGlobalVariableBuilder creates a new mock instance.
func NewMockGlobalVariableBuilder(ctrl *gomock.Controller) *MockGlobalVariableBuilder {
	mock := &MockGlobalVariableBuilder{ctrl: ctrl}
	mock.recorder = &MockGlobalVariableBuilderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGlobalVariableBuilder) EXPECT() *MockGlobalVariableBuilderMockRecorder {
	return m.recorder
}

// BuildGlobalVariables mocks base method.
func (m *MockGlobalVariableBuilder) BuildGlobalVariables(ctx context.Context, blockNumber uint64, coinbase, feeRecipient sequencer.Address, slot sequencer.Slot) (sequencer.GlobalVariables, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuildGlobalVariables", ctx, blockNumber, coinbase, feeRecipient, slot)
	ret0, _ := ret[0].(sequencer.GlobalVariables)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BuildGlobalVariables indicates an expected call of BuildGlobalVariables.
func (mr *MockGlobalVariableBuilderMockRecorder) BuildGlobalVariables(ctx, blockNumber, coinbase, feeRecipient, slot interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuildGlobalVariables", reflect.TypeOf((*MockGlobalVariableBuilder)(nil).BuildGlobalVariables), ctx, blockNumber, coinbase, feeRecipient, slot)
}

// MockSlasher is a mock of Slasher interface.
type MockSlasher struct {
	ctrl     *gomock.Controller
	recorder *MockSlasherMockRecorder
}

// MockSlasherMockRecorder is the mock recorder for MockSlasher.
type MockSlasherMockRecorder struct {
	mock *MockSlasher
}

// NewMockSlasher creates a new mock instance.
func NewMockSlasher(ctrl *gomock.Controller) *MockSlasher {
	mock := &MockSlasher{ctrl: ctrl}
	mock.recorder = &MockSlasherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSlasher) EXPECT() *MockSlasherMockRecorder {
	return m.recorder
}

// GetSlashPayload mocks base method.
func (m *MockSlasher) GetSlashPayload() ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSlashPayload")
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSlashPayload indicates an expected call of GetSlashPayload.
func (mr *MockSlasherMockRecorder) GetSlashPayload() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSlashPayload", reflect.TypeOf((*MockSlasher)(nil).GetSlashPayload))
}

// Stop mocks base method.
func (m *MockSlasher) Stop() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stop")
	ret0, _ := ret[0].(error)
	return ret0
}

// Stop indicates an expected call of Stop.
func (mr *MockSlasherMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockSlasher)(nil).Stop))
}

// MockDateProvider is a mock of DateProvider interface.
type MockDateProvider struct {
	ctrl     *gomock.Controller
	recorder *MockDateProviderMockRecorder
}

// MockDateProviderMockRecorder is the mock recorder for MockDateProvider.
type MockDateProviderMockRecorder struct {
	mock *MockDateProvider
}

// NewMockDateProvider creates a new mock instance.
func NewMockDateProvider(ctrl *gomock.Controller) *MockDateProvider {
	mock := &MockDateProvider{ctrl: ctrl}
	mock.recorder = &MockDateProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDateProvider) EXPECT() *MockDateProviderMockRecorder {
	return m.recorder
}

// Now mocks base method.
func (m *MockDateProvider) Now() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Now")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// Now indicates an expected call of Now.
func (mr *MockDateProviderMockRecorder) Now() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Now", reflect.TypeOf((*MockDateProvider)(nil).Now))
}
