package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmtrade-main/internal/middleware"
	"farmtrade-main/internal/mocks"
	"farmtrade-main/internal/order"
	"farmtrade-main/internal/session"
	myErr "farmtrade-main/internal/types/errors"
	typesOrder "farmtrade-main/internal/types/order"
	"farmtrade-main/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sessionWithRole(userID, role string) *session.Session {
	return &session.Session{
		ID:      "session-1",
		UserID:  userID,
		Role:    role,
		EndTime: time.Now().Add(15 * time.Minute),
	}
}

func withSession(req *http.Request, sess *session.Session) *http.Request {
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func TestOrderHandler_GetMy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewOrderHandler(logger, mockRepo)

	retailerID := uuid.New().String()
	sess := sessionWithRole(retailerID, user.RoleRetailer)

	t.Run("returns orders", func(t *testing.T) {
		mockRepo.EXPECT().GetByRetailerID(retailerID).Return([]order.Order{
			{ID: uuid.New().String(), RetailerID: retailerID, Status: order.StatusPending},
		}, nil)

		req := withSession(httptest.NewRequest(http.MethodGet, "/api/orders/my", nil), sess)
		w := httptest.NewRecorder()

		handler.GetMy(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)

		var got []order.Order
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&got))
		require.Len(t, got, 1)
	})

	t.Run("no orders returns empty array", func(t *testing.T) {
		mockRepo.EXPECT().GetByRetailerID(retailerID).Return(nil, nil)

		req := withSession(httptest.NewRequest(http.MethodGet, "/api/orders/my", nil), sess)
		w := httptest.NewRecorder()

		handler.GetMy(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)

		var got []order.Order
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&got))
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
		w := httptest.NewRecorder()

		handler.GetMy(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewOrderHandler(logger, mockRepo)

	retailerID := uuid.New().String()
	orderID := uuid.New().String()
	stored := &order.Order{
		ID:          orderID,
		RetailerID:  retailerID,
		Status:      order.StatusPending,
		TotalAmount: 500,
	}

	tests := []struct {
		name           string
		sess           *session.Session
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "owner sees own order",
			sess: sessionWithRole(retailerID, user.RoleRetailer),
			mockBehavior: func() {
				mockRepo.EXPECT().GetByID(orderID).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "stranger gets forbidden",
			sess: sessionWithRole(uuid.New().String(), user.RoleRetailer),
			mockBehavior: func() {
				mockRepo.EXPECT().GetByID(orderID).Return(stored, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "admin sees any order",
			sess: sessionWithRole(uuid.New().String(), user.RoleAdmin),
			mockBehavior: func() {
				mockRepo.EXPECT().GetByID(orderID).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			sess: sessionWithRole(retailerID, user.RoleRetailer),
			mockBehavior: func() {
				mockRepo.EXPECT().GetByID(orderID).Return(nil, myErr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()

			req := httptest.NewRequest(http.MethodGet, "/api/order/"+orderID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": orderID})
			req = withSession(req, tt.sess)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			require.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestOrderHandler_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewOrderHandler(logger, mockRepo)

	retailerID := uuid.New().String()
	orderID := uuid.New().String()
	sess := sessionWithRole(retailerID, user.RoleRetailer)

	tests := []struct {
		name           string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "success",
			mockBehavior: func() {
				mockRepo.EXPECT().Cancel(orderID, retailerID).Return(&order.Order{
					ID:         orderID,
					RetailerID: retailerID,
					Status:     order.StatusCancelled,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not the owner",
			mockBehavior: func() {
				mockRepo.EXPECT().Cancel(orderID, retailerID).Return(nil, myErr.ErrNotOrderOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			// Отменить можно только PENDING-заказ
			name: "already shipped",
			mockBehavior: func() {
				mockRepo.EXPECT().Cancel(orderID, retailerID).Return(nil, myErr.ErrOrderNotCancellable)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "not found",
			mockBehavior: func() {
				mockRepo.EXPECT().Cancel(orderID, retailerID).Return(nil, myErr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()

			req := httptest.NewRequest(http.MethodPost, "/api/order/"+orderID+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": orderID})
			req = withSession(req, sess)
			w := httptest.NewRecorder()

			handler.Cancel(w, req)

			require.Equal(t, tt.expectedStatus, w.Result().StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var got order.Order
				require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&got))
				require.Equal(t, order.StatusCancelled, got.Status)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewOrderHandler(logger, mockRepo)

	farmerID := uuid.New().String()
	orderID := uuid.New().String()
	sess := sessionWithRole(farmerID, user.RoleFarmer)

	tests := []struct {
		name           string
		status         string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name:   "success",
			status: string(order.StatusAccepted),
			mockBehavior: func() {
				mockRepo.EXPECT().
					UpdateStatus(orderID, farmerID, string(order.StatusAccepted)).
					Return(&order.Order{ID: orderID, Status: order.StatusAccepted}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown status",
			status: "TELEPORTED",
			mockBehavior: func() {
				mockRepo.EXPECT().
					UpdateStatus(orderID, farmerID, "TELEPORTED").
					Return(nil, myErr.ErrInvalidOrderStatus)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "order without farmer's products",
			status: string(order.StatusAccepted),
			mockBehavior: func() {
				mockRepo.EXPECT().
					UpdateStatus(orderID, farmerID, string(order.StatusAccepted)).
					Return(nil, myErr.ErrNotOrderOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "repo failure",
			status: string(order.StatusAccepted),
			mockBehavior: func() {
				mockRepo.EXPECT().
					UpdateStatus(orderID, farmerID, string(order.StatusAccepted)).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()

			body, err := json.Marshal(typesOrder.UpdateStatus{Status: tt.status})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/api/order/"+orderID+"/status", bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": orderID})
			req = withSession(req, sess)
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			require.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}
