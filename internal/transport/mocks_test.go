// Code generated by MockGen. DO NOT EDIT.
// Source: http_handler.go

// Package transport is a generated GoMock package.
package transport

import (
	context "context"
	reflect "reflect"

	model "github.com/clearsourceworks/filtertrace-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
)

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// Flag mocks base method.
func (m *MockService) Flag(ctx context.Context, unitID string, reason model.FlagReason) (*model.FlagResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flag", ctx, unitID, reason)
	ret0, _ := ret[0].(*model.FlagResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Flag indicates an expected call of Flag.
func (mr *MockServiceMockRecorder) Flag(ctx, unitID, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flag", reflect.TypeOf((*MockService)(nil).Flag), ctx, unitID, reason)
}

// Read mocks base method.
func (m *MockService) Read(ctx context.Context, unitID string) (*model.Snapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", ctx, unitID)
	ret0, _ := ret[0].(*model.Snapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Read indicates an expected call of Read.
func (mr *MockServiceMockRecorder) Read(ctx, unitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockService)(nil).Read), ctx, unitID)
}

// Receive mocks base method.
func (m *MockService) Receive(ctx context.Context, unitID, warehouseID string) (*model.ReceiveResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Receive", ctx, unitID, warehouseID)
	ret0, _ := ret[0].(*model.ReceiveResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Receive indicates an expected call of Receive.
func (mr *MockServiceMockRecorder) Receive(ctx, unitID, warehouseID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Receive", reflect.TypeOf((*MockService)(nil).Receive), ctx, unitID, warehouseID)
}

// ReceiveBatch mocks base method.
func (m *MockService) ReceiveBatch(ctx context.Context, unitIDs []string, warehouseID string) (*model.ReceiveBatchResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReceiveBatch", ctx, unitIDs, warehouseID)
	ret0, _ := ret[0].(*model.ReceiveBatchResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReceiveBatch indicates an expected call of ReceiveBatch.
func (mr *MockServiceMockRecorder) ReceiveBatch(ctx, unitIDs, warehouseID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceiveBatch", reflect.TypeOf((*MockService)(nil).ReceiveBatch), ctx, unitIDs, warehouseID)
}

// RecentEvents mocks base method.
func (m *MockService) RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentEvents", ctx, limit)
	ret0, _ := ret[0].([]model.CachedEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentEvents indicates an expected call of RecentEvents.
func (mr *MockServiceMockRecorder) RecentEvents(ctx, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentEvents", reflect.TypeOf((*MockService)(nil).RecentEvents), ctx, limit)
}

// RegisterBatch mocks base method.
func (m *MockService) RegisterBatch(ctx context.Context, batchID string, unitIDs []string) (*model.RegisterResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RegisterBatch", ctx, batchID, unitIDs)
	ret0, _ := ret[0].(*model.RegisterResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RegisterBatch indicates an expected call of RegisterBatch.
func (mr *MockServiceMockRecorder) RegisterBatch(ctx, batchID, unitIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterBatch", reflect.TypeOf((*MockService)(nil).RegisterBatch), ctx, batchID, unitIDs)
}

// Replace mocks base method.
func (m *MockService) Replace(ctx context.Context, oldUnitID, newUnitID, siteID string) (*model.ReplaceResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Replace", ctx, oldUnitID, newUnitID, siteID)
	ret0, _ := ret[0].(*model.ReplaceResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Replace indicates an expected call of Replace.
func (mr *MockServiceMockRecorder) Replace(ctx, oldUnitID, newUnitID, siteID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Replace", reflect.TypeOf((*MockService)(nil).Replace), ctx, oldUnitID, newUnitID, siteID)
}

// SearchUnits mocks base method.
func (m *MockService) SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchUnits", ctx, term, limit)
	ret0, _ := ret[0].([]model.CachedUnit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchUnits indicates an expected call of SearchUnits.
func (mr *MockServiceMockRecorder) SearchUnits(ctx, term, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchUnits", reflect.TypeOf((*MockService)(nil).SearchUnits), ctx, term, limit)
}

// ShipBatch mocks base method.
func (m *MockService) ShipBatch(ctx context.Context, batchID, destination string, unitIDs []string) (*model.ShipResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ShipBatch", ctx, batchID, destination, unitIDs)
	ret0, _ := ret[0].(*model.ShipResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ShipBatch indicates an expected call of ShipBatch.
func (mr *MockServiceMockRecorder) ShipBatch(ctx, batchID, destination, unitIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShipBatch", reflect.TypeOf((*MockService)(nil).ShipBatch), ctx, batchID, destination, unitIDs)
}

// Stats mocks base method.
func (m *MockService) Stats(ctx context.Context) (*model.Stats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", ctx)
	ret0, _ := ret[0].(*model.Stats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Stats indicates an expected call of Stats.
func (mr *MockServiceMockRecorder) Stats(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockService)(nil).Stats), ctx)
}

// UnitEvents mocks base method.
func (m *MockService) UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnitEvents", ctx, unitID)
	ret0, _ := ret[0].([]model.CachedEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UnitEvents indicates an expected call of UnitEvents.
func (mr *MockServiceMockRecorder) UnitEvents(ctx, unitID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnitEvents", reflect.TypeOf((*MockService)(nil).UnitEvents), ctx, unitID)
}

// UnitsByBatch mocks base method.
func (m *MockService) UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnitsByBatch", ctx, batchID)
	ret0, _ := ret[0].([]model.CachedUnit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UnitsByBatch indicates an expected call of UnitsByBatch.
func (mr *MockServiceMockRecorder) UnitsByBatch(ctx, batchID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnitsByBatch", reflect.TypeOf((*MockService)(nil).UnitsByBatch), ctx, batchID)
}

// Verify mocks base method.
func (m *MockService) Verify(ctx context.Context, unitID, siteID, verifierID string) (*model.VerifyResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", ctx, unitID, siteID, verifierID)
	ret0, _ := ret[0].(*model.VerifyResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Verify indicates an expected call of Verify.
func (mr *MockServiceMockRecorder) Verify(ctx, unitID, siteID, verifierID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockService)(nil).Verify), ctx, unitID, siteID, verifierID)
}
