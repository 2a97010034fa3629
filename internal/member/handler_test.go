package member

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tessalp/internal/auth"
)

type MockService struct{ mock.Mock }

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*UserAccount, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserAccount), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*UserAccount, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserAccount), args.Error(1)
}

func (m *MockService) GetAccount(ctx context.Context, id int) (*UserAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserAccount), args.Error(1)
}

func (m *MockService) CreateMember(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) GetMember(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) ListMembers(ctx context.Context, gymID int) ([]Member, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockService) UpdateMember(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) DeleteMember(ctx context.Context, gymID, id int) error {
	return m.Called(ctx, gymID, id).Error(0)
}

func (m *MockService) RecordPurchase(ctx context.Context, accountID int, req CreatePurchaseRequest) (*Purchase, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Purchase), args.Error(1)
}

func (m *MockService) ListPurchases(ctx context.Context, accountID int) ([]Purchase, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Purchase), args.Error(1)
}

const testSecret = "test-secret"

// setupAdminRouter registers the roster routes under the tenant admin group
// exactly as the server does, real auth middleware included.
func setupAdminRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, testSecret)
	r := gin.New()

	admin := r.Group("/api/gym/:gymId")
	admin.Use(auth.RequireGymIdentity(testSecret))
	{
		admin.GET("/members", h.ListMembers)
		admin.POST("/members", h.CreateMember)
		admin.PUT("/members/:id", h.UpdateMember)
		admin.DELETE("/members/:id", h.DeleteMember)
	}
	return r
}

func adminRequest(t *testing.T, method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := auth.GenerateGymToken(3, "GYM003", testSecret)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.GymSessionCookie, Value: token})
	return req
}

func TestUpdateMemberRoute(t *testing.T) {
	svc := new(MockService)
	r := setupAdminRouter(svc)

	updated := &Member{ID: 5, GymID: 3, Name: "Marta Socia", Status: "active"}
	svc.On("UpdateMember", mock.Anything, 3, 5, UpdateMemberRequest{
		Name:           "Marta Socia",
		Email:          "marta@tessalp.test",
		MembershipType: "Premium",
		Status:         "active",
	}).Return(updated, nil)

	w := httptest.NewRecorder()
	req := adminRequest(t, http.MethodPut, "/api/gym/3/members/5",
		`{"name":"Marta Socia","email":"marta@tessalp.test","membershipType":"Premium","status":"active"}`)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteMemberRoute(t *testing.T) {
	svc := new(MockService)
	r := setupAdminRouter(svc)

	svc.On("DeleteMember", mock.Anything, 3, 5).Return(nil)

	w := httptest.NewRecorder()
	req := adminRequest(t, http.MethodDelete, "/api/gym/3/members/5", "")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteMemberRouteNotFound(t *testing.T) {
	svc := new(MockService)
	r := setupAdminRouter(svc)

	svc.On("DeleteMember", mock.Anything, 3, 99).Return(ErrMemberNotFound)

	w := httptest.NewRecorder()
	req := adminRequest(t, http.MethodDelete, "/api/gym/3/members/99", "")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMemberRouteBadID(t *testing.T) {
	svc := new(MockService)
	r := setupAdminRouter(svc)

	w := httptest.NewRecorder()
	req := adminRequest(t, http.MethodPut, "/api/gym/3/members/abc",
		`{"name":"Marta","email":"marta@tessalp.test","membershipType":"Premium","status":"active"}`)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMemberRouteRequiresSession(t *testing.T) {
	svc := new(MockService)
	r := setupAdminRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/gym/3/members/5",
		strings.NewReader(`{"name":"Marta","email":"marta@tessalp.test","membershipType":"Premium","status":"active"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
