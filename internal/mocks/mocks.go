// Package mocks содержит моки репозиториев для тестов ручек.
package mocks

import (
	"context"
	"net/http"
	"reflect"

	"github.com/golang/mock/gomock"

	"farmtrade-main/internal/cart"
	"farmtrade-main/internal/kafka"
	"farmtrade-main/internal/order"
	"farmtrade-main/internal/product"
	"farmtrade-main/internal/session"
	"farmtrade-main/internal/user"
	typesOrder "farmtrade-main/internal/types/order"
	typesProduct "farmtrade-main/internal/types/product"
	typesUser "farmtrade-main/internal/types/user"
)

// MockCartRepo мок для cart.CartRepo
type MockCartRepo struct {
	ctrl     *gomock.Controller
	recorder *MockCartRepoMockRecorder
}

type MockCartRepoMockRecorder struct {
	mock *MockCartRepo
}

func NewMockCartRepo(ctrl *gomock.Controller) *MockCartRepo {
	mock := &MockCartRepo{ctrl: ctrl}
	mock.recorder = &MockCartRepoMockRecorder{mock}
	return mock
}

func (m *MockCartRepo) EXPECT() *MockCartRepoMockRecorder {
	return m.recorder
}

func (m *MockCartRepo) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Load", ctx, sessionID)
	ret0, _ := ret[0].(*cart.Cart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCartRepoMockRecorder) Load(ctx, sessionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Load", reflect.TypeOf((*MockCartRepo)(nil).Load), ctx, sessionID,
	)
}

func (m *MockCartRepo) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, sessionID, c)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartRepoMockRecorder) Save(ctx, sessionID, c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Save", reflect.TypeOf((*MockCartRepo)(nil).Save), ctx, sessionID, c,
	)
}

func (m *MockCartRepo) Delete(ctx context.Context, sessionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, sessionID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartRepoMockRecorder) Delete(ctx, sessionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Delete", reflect.TypeOf((*MockCartRepo)(nil).Delete), ctx, sessionID,
	)
}

// MockProductRepo мок для product.ProductRepo
type MockProductRepo struct {
	ctrl     *gomock.Controller
	recorder *MockProductRepoMockRecorder
}

type MockProductRepoMockRecorder struct {
	mock *MockProductRepo
}

func NewMockProductRepo(ctrl *gomock.Controller) *MockProductRepo {
	mock := &MockProductRepo{ctrl: ctrl}
	mock.recorder = &MockProductRepoMockRecorder{mock}
	return mock
}

func (m *MockProductRepo) EXPECT() *MockProductRepoMockRecorder {
	return m.recorder
}

func (m *MockProductRepo) Create(p typesProduct.CreateProduct) (*product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", p)
	ret0, _ := ret[0].(*product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) Create(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Create", reflect.TypeOf((*MockProductRepo)(nil).Create), p,
	)
}

func (m *MockProductRepo) GetByID(id string) (*product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByID", reflect.TypeOf((*MockProductRepo)(nil).GetByID), id,
	)
}

func (m *MockProductRepo) GetAll() ([]product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll")
	ret0, _ := ret[0].([]product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) GetAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetAll", reflect.TypeOf((*MockProductRepo)(nil).GetAll),
	)
}

func (m *MockProductRepo) GetByFarmerID(farmerID string) ([]product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByFarmerID", farmerID)
	ret0, _ := ret[0].([]product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) GetByFarmerID(farmerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByFarmerID", reflect.TypeOf((*MockProductRepo)(nil).GetByFarmerID), farmerID,
	)
}

func (m *MockProductRepo) Update(id string, updateProduct typesProduct.ChangeProduct) (*product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", id, updateProduct)
	ret0, _ := ret[0].(*product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) Update(id, updateProduct interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Update", reflect.TypeOf((*MockProductRepo)(nil).Update), id, updateProduct,
	)
}

func (m *MockProductRepo) Deactivate(id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deactivate", id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockProductRepoMockRecorder) Deactivate(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Deactivate", reflect.TypeOf((*MockProductRepo)(nil).Deactivate), id,
	)
}

func (m *MockProductRepo) Search(query string) ([]product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", query)
	ret0, _ := ret[0].([]product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) Search(query interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Search", reflect.TypeOf((*MockProductRepo)(nil).Search), query,
	)
}

func (m *MockProductRepo) GetByIDs(ids []string) ([]product.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ids)
	ret0, _ := ret[0].([]product.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepoMockRecorder) GetByIDs(ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByIDs", reflect.TypeOf((*MockProductRepo)(nil).GetByIDs), ids,
	)
}

// MockOrderRepo мок для order.OrderRepo
type MockOrderRepo struct {
	ctrl     *gomock.Controller
	recorder *MockOrderRepoMockRecorder
}

type MockOrderRepoMockRecorder struct {
	mock *MockOrderRepo
}

func NewMockOrderRepo(ctrl *gomock.Controller) *MockOrderRepo {
	mock := &MockOrderRepo{ctrl: ctrl}
	mock.recorder = &MockOrderRepoMockRecorder{mock}
	return mock
}

func (m *MockOrderRepo) EXPECT() *MockOrderRepoMockRecorder {
	return m.recorder
}

func (m *MockOrderRepo) Create(retailerID string, items []typesOrder.ItemRequest) (*order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", retailerID, items)
	ret0, _ := ret[0].(*order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) Create(retailerID, items interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Create", reflect.TypeOf((*MockOrderRepo)(nil).Create), retailerID, items,
	)
}

func (m *MockOrderRepo) GetByID(id string) (*order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByID", reflect.TypeOf((*MockOrderRepo)(nil).GetByID), id,
	)
}

func (m *MockOrderRepo) GetByRetailerID(retailerID string) ([]order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRetailerID", retailerID)
	ret0, _ := ret[0].([]order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) GetByRetailerID(retailerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByRetailerID", reflect.TypeOf((*MockOrderRepo)(nil).GetByRetailerID), retailerID,
	)
}

func (m *MockOrderRepo) GetByFarmerID(farmerID string) ([]order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByFarmerID", farmerID)
	ret0, _ := ret[0].([]order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) GetByFarmerID(farmerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetByFarmerID", reflect.TypeOf((*MockOrderRepo)(nil).GetByFarmerID), farmerID,
	)
}

func (m *MockOrderRepo) GetAll() ([]order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll")
	ret0, _ := ret[0].([]order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) GetAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetAll", reflect.TypeOf((*MockOrderRepo)(nil).GetAll),
	)
}

func (m *MockOrderRepo) Cancel(orderID, retailerID string) (*order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", orderID, retailerID)
	ret0, _ := ret[0].(*order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) Cancel(orderID, retailerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Cancel", reflect.TypeOf((*MockOrderRepo)(nil).Cancel), orderID, retailerID,
	)
}

func (m *MockOrderRepo) UpdateStatus(orderID, farmerID, status string) (*order.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", orderID, farmerID, status)
	ret0, _ := ret[0].(*order.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderRepoMockRecorder) UpdateStatus(orderID, farmerID, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "UpdateStatus", reflect.TypeOf((*MockOrderRepo)(nil).UpdateStatus), orderID, farmerID, status,
	)
}

// MockUserRepo мок для user.UserRepo
type MockUserRepo struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepoMockRecorder
}

type MockUserRepoMockRecorder struct {
	mock *MockUserRepo
}

func NewMockUserRepo(ctrl *gomock.Controller) *MockUserRepo {
	mock := &MockUserRepo{ctrl: ctrl}
	mock.recorder = &MockUserRepoMockRecorder{mock}
	return mock
}

func (m *MockUserRepo) EXPECT() *MockUserRepoMockRecorder {
	return m.recorder
}

func (m *MockUserRepo) CheckUser(email, password string) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckUser", email, password)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepoMockRecorder) CheckUser(email, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "CheckUser", reflect.TypeOf((*MockUserRepo)(nil).CheckUser), email, password,
	)
}

func (m *MockUserRepo) CreateUser(u typesUser.CreateUser) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", u)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepoMockRecorder) CreateUser(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "CreateUser", reflect.TypeOf((*MockUserRepo)(nil).CreateUser), u,
	)
}

func (m *MockUserRepo) Info(userID string) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Info", userID)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepoMockRecorder) Info(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Info", reflect.TypeOf((*MockUserRepo)(nil).Info), userID,
	)
}

func (m *MockUserRepo) ChangeProfile(userID string, updateUser typesUser.ChangeUser) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangeProfile", userID, updateUser)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepoMockRecorder) ChangeProfile(userID, updateUser interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "ChangeProfile", reflect.TypeOf((*MockUserRepo)(nil).ChangeProfile), userID, updateUser,
	)
}

func (m *MockUserRepo) GetAll() ([]user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll")
	ret0, _ := ret[0].([]user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserRepoMockRecorder) GetAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "GetAll", reflect.TypeOf((*MockUserRepo)(nil).GetAll),
	)
}

// MockSessionRepo мок для session.SessionRepo
type MockSessionRepo struct {
	ctrl     *gomock.Controller
	recorder *MockSessionRepoMockRecorder
}

type MockSessionRepoMockRecorder struct {
	mock *MockSessionRepo
}

func NewMockSessionRepo(ctrl *gomock.Controller) *MockSessionRepo {
	mock := &MockSessionRepo{ctrl: ctrl}
	mock.recorder = &MockSessionRepoMockRecorder{mock}
	return mock
}

func (m *MockSessionRepo) EXPECT() *MockSessionRepoMockRecorder {
	return m.recorder
}

func (m *MockSessionRepo) CreateSession(
	ctx context.Context,
	w http.ResponseWriter,
	userID, email, role string,
) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSession", ctx, w, userID, email, role)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSessionRepoMockRecorder) CreateSession(ctx, w, userID, email, role interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "CreateSession", reflect.TypeOf((*MockSessionRepo)(nil).CreateSession), ctx, w, userID, email, role,
	)
}

func (m *MockSessionRepo) CheckSession(r *http.Request) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckSession", r)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSessionRepoMockRecorder) CheckSession(r interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "CheckSession", reflect.TypeOf((*MockSessionRepo)(nil).CheckSession), r,
	)
}

func (m *MockSessionRepo) ExtendSession(ctx context.Context, sessionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendSession", ctx, sessionID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockSessionRepoMockRecorder) ExtendSession(ctx, sessionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "ExtendSession", reflect.TypeOf((*MockSessionRepo)(nil).ExtendSession), ctx, sessionID,
	)
}

func (m *MockSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSession", ctx, sessionID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockSessionRepoMockRecorder) DeleteSession(ctx, sessionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "DeleteSession", reflect.TypeOf((*MockSessionRepo)(nil).DeleteSession), ctx, sessionID,
	)
}

// MockEventProducer мок для kafka.EventProducer
type MockEventProducer struct {
	ctrl     *gomock.Controller
	recorder *MockEventProducerMockRecorder
}

type MockEventProducerMockRecorder struct {
	mock *MockEventProducer
}

func NewMockEventProducer(ctrl *gomock.Controller) *MockEventProducer {
	mock := &MockEventProducer{ctrl: ctrl}
	mock.recorder = &MockEventProducerMockRecorder{mock}
	return mock
}

func (m *MockEventProducer) EXPECT() *MockEventProducerMockRecorder {
	return m.recorder
}

func (m *MockEventProducer) SendEvent(ctx context.Context, event kafka.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockEventProducerMockRecorder) SendEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "SendEvent", reflect.TypeOf((*MockEventProducer)(nil).SendEvent), ctx, event,
	)
}

func (m *MockEventProducer) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockEventProducerMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock, "Close", reflect.TypeOf((*MockEventProducer)(nil).Close),
	)
}
