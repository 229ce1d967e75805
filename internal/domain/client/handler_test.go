package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, cl *Client) error {
	args := m.Called(ctx, cl)
	if cl != nil {
		cl.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, gymID, id int64) (*Client, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Client), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int64) ([]*Client, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Client), args.Error(1)
}

func (m *MockRepository) ListActiveByGym(ctx context.Context, gymID int64) ([]*Client, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Client), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, gymID int64, query string) ([]*Client, error) {
	args := m.Called(ctx, gymID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Client), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, cl *Client) error {
	args := m.Called(ctx, cl)
	return args.Error(0)
}

func (m *MockRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, gymID, id int64) error {
	args := m.Called(ctx, gymID, id)
	return args.Error(0)
}

func clientRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("gym_id", int64(1)) })
	allowAll := func(c *gin.Context) { c.Next() }
	RegisterRoutes(r.Group(""), NewHandler(repo), allowAll)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateClient(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(cl *Client) bool {
		return cl.GymID == 1 && cl.Name == "Ana Ruiz"
	})).Return(nil)
	r := clientRouter(repo)

	w := postJSON(r, "/clients", CreateRequest{Name: "Ana Ruiz", Phone: "+54 11 5555 0201"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Ruiz")
	repo.AssertExpectations(t)
}

func TestCreateClient_ValidationError(t *testing.T) {
	repo := new(MockRepository)
	r := clientRouter(repo)

	w := postJSON(r, "/clients", CreateRequest{Name: "A", Email: "not-an-email"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListClients_SearchQuery(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Search", mock.Anything, int64(1), "ana").Return([]*Client{
		{ID: 1, Name: "Ana Ruiz"},
	}, nil)
	r := clientRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients?q=ana", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Ruiz")
	repo.AssertNotCalled(t, "ListByGym", mock.Anything, mock.Anything)
}

func TestGetClient_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(1), int64(42)).Return(nil, gorm.ErrRecordNotFound)
	r := clientRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
