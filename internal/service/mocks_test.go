// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package service is a generated GoMock package.
package service

import (
	context "context"
	reflect "reflect"

	ledger "github.com/clearsourceworks/filtertrace-backend/internal/ledger"
	model "github.com/clearsourceworks/filtertrace-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
)

// MockLedgerClient is a mock of LedgerClient interface.
type MockLedgerClient struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerClientMockRecorder
}

// MockLedgerClientMockRecorder is the mock recorder for MockLedgerClient.
type MockLedgerClientMockRecorder struct {
	mock *MockLedgerClient
}

// NewMockLedgerClient creates a new mock instance.
func NewMockLedgerClient(ctrl *gomock.Controller) *MockLedgerClient {
	mock := &MockLedgerClient{ctrl: ctrl}
	mock.recorder = &MockLedgerClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerClient) EXPECT() *MockLedgerClientMockRecorder {
	return m.recorder
}

// Evaluate mocks base method.
func (m *MockLedgerClient) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	m.ctrl.T.Helper()
	varargs := []interface{}{ctx, fn}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Evaluate", varargs...)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockLedgerClientMockRecorder) Evaluate(ctx, fn interface{}, args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{ctx, fn}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockLedgerClient)(nil).Evaluate), varargs...)
}

// Submit mocks base method.
func (m *MockLedgerClient) Submit(ctx context.Context, fn string, args ...string) (*ledger.SubmitResult, error) {
	m.ctrl.T.Helper()
	varargs := []interface{}{ctx, fn}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Submit", varargs...)
	ret0, _ := ret[0].(*ledger.SubmitResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Submit indicates an expected call of Submit.
func (mr *MockLedgerClientMockRecorder) Submit(ctx, fn interface{}, args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{ctx, fn}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockLedgerClient)(nil).Submit), varargs...)
}

// MockCacheStore is a mock of CacheStore interface.
type MockCacheStore struct {
	ctrl     *gomock.Controller
	recorder *MockCacheStoreMockRecorder
}

// MockCacheStoreMockRecorder is the mock recorder for MockCacheStore.
type MockCacheStoreMockRecorder struct {
	mock *MockCacheStore
}

// NewMockCacheStore creates a new mock instance.
func NewMockCacheStore(ctrl *gomock.Controller) *MockCacheStore {
	mock := &MockCacheStore{ctrl: ctrl}
	mock.recorder = &MockCacheStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCacheStore) EXPECT() *MockCacheStoreMockRecorder {
	return m.recorder
}

// InsertEvents mocks base method.
func (m *MockCacheStore) InsertEvents(ctx context.Context, events []model.CachedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertEvents", ctx, events)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertEvents indicates an expected call of InsertEvents.
func (mr *MockCacheStoreMockRecorder) InsertEvents(ctx, events interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertEvents", reflect.TypeOf((*MockCacheStore)(nil).InsertEvents), ctx, events)
}

// RecentEvents mocks base method.
func (m *MockCacheStore) RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentEvents", ctx, limit)
	ret0, _ := ret[0].([]model.CachedEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentEvents indicates an expected call of RecentEvents.
func (mr *MockCacheStoreMockRecorder) RecentEvents(ctx, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentEvents", reflect.TypeOf((*MockCacheStore)(nil).RecentEvents), ctx, limit)
}

// SearchUnits mocks base method.
func (m *MockCacheStore) SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchUnits", ctx, term, limit)
	ret0, _ := ret[0].([]model.CachedUnit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchUnits indicates an expected call of SearchUnits.
func (mr *MockCacheStoreMockRecorder) SearchUnits(ctx, term, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchUnits", reflect.TypeOf((*MockCacheStore)(nil).SearchUnits), ctx, term, limit)
}

// Stats mocks base method.
func (m *MockCacheStore) Stats(ctx context.Context) (*model.Stats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", ctx)
	ret0, _ := ret[0].(*model.Stats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Stats indicates an expected call of Stats.
func (mr *MockCacheStoreMockRecorder) Stats(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockCacheStore)(nil).Stats), ctx)
}

// Unit mocks base method.
func (m *MockCacheStore) Unit(ctx context.Context, unitID string) (*model.CachedUnit, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unit", ctx, unitID)
	ret0, _ := ret[0].(*model.CachedUnit)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Unit indicates an expected call of Unit.
func (mr *MockCacheStoreMockRecorder) Unit(ctx, unitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unit", reflect.TypeOf((*MockCacheStore)(nil).Unit), ctx, unitID)
}

// UnitEvents mocks base method.
func (m *MockCacheStore) UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnitEvents", ctx, unitID)
	ret0, _ := ret[0].([]model.CachedEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UnitEvents indicates an expected call of UnitEvents.
func (mr *MockCacheStoreMockRecorder) UnitEvents(ctx, unitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnitEvents", reflect.TypeOf((*MockCacheStore)(nil).UnitEvents), ctx, unitID)
}

// UnitsByBatch mocks base method.
func (m *MockCacheStore) UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnitsByBatch", ctx, batchID)
	ret0, _ := ret[0].([]model.CachedUnit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UnitsByBatch indicates an expected call of UnitsByBatch.
func (mr *MockCacheStoreMockRecorder) UnitsByBatch(ctx, batchID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnitsByBatch", reflect.TypeOf((*MockCacheStore)(nil).UnitsByBatch), ctx, batchID)
}

// UpsertUnits mocks base method.
func (m *MockCacheStore) UpsertUnits(ctx context.Context, units []model.CachedUnit) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertUnits", ctx, units)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertUnits indicates an expected call of UpsertUnits.
func (mr *MockCacheStoreMockRecorder) UpsertUnits(ctx, units interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertUnits", reflect.TypeOf((*MockCacheStore)(nil).UpsertUnits), ctx, units)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Enqueue mocks base method.
func (m *MockEventSink) Enqueue(ctx context.Context, events []model.CachedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enqueue", ctx, events)
	ret0, _ := ret[0].(error)
	return ret0
}

// Enqueue indicates an expected call of Enqueue.
func (mr *MockEventSinkMockRecorder) Enqueue(ctx, events interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enqueue", reflect.TypeOf((*MockEventSink)(nil).Enqueue), ctx, events)
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// ProjectionApplied mocks base method.
func (m *MockMetrics) ProjectionApplied(eventType string, units int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ProjectionApplied", eventType, units)
}

// ProjectionApplied indicates an expected call of ProjectionApplied.
func (mr *MockMetricsMockRecorder) ProjectionApplied(eventType, units interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectionApplied", reflect.TypeOf((*MockMetrics)(nil).ProjectionApplied), eventType, units)
}

// ProjectionDropped mocks base method.
func (m *MockMetrics) ProjectionDropped(eventType string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ProjectionDropped", eventType)
}

// ProjectionDropped indicates an expected call of ProjectionDropped.
func (mr *MockMetricsMockRecorder) ProjectionDropped(eventType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectionDropped", reflect.TypeOf((*MockMetrics)(nil).ProjectionDropped), eventType)
}

// ReadRepair mocks base method.
func (m *MockMetrics) ReadRepair() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReadRepair")
}

// ReadRepair indicates an expected call of ReadRepair.
func (mr *MockMetricsMockRecorder) ReadRepair() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadRepair", reflect.TypeOf((*MockMetrics)(nil).ReadRepair))
}

// MockSinkMetrics is a mock of SinkMetrics interface.
type MockSinkMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockSinkMetricsMockRecorder
}

// MockSinkMetricsMockRecorder is the mock recorder for MockSinkMetrics.
type MockSinkMetricsMockRecorder struct {
	mock *MockSinkMetrics
}

// NewMockSinkMetrics creates a new mock instance.
func NewMockSinkMetrics(ctrl *gomock.Controller) *MockSinkMetrics {
	mock := &MockSinkMetrics{ctrl: ctrl}
	mock.recorder = &MockSinkMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSinkMetrics) EXPECT() *MockSinkMetricsMockRecorder {
	return m.recorder
}

// FlushDropped mocks base method.
func (m *MockSinkMetrics) FlushDropped(count int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "FlushDropped", count)
}

// FlushDropped indicates an expected call of FlushDropped.
func (mr *MockSinkMetricsMockRecorder) FlushDropped(count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FlushDropped", reflect.TypeOf((*MockSinkMetrics)(nil).FlushDropped), count)
}
