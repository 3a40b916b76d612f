package controllers

import (
	"context"
	"net/http"

	"plantnet/middleware"
	"plantnet/models"
	"plantnet/utils"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// withClaims attaches authenticated-caller claims the way the auth
// middleware would.
func withClaims(r *http.Request, email string) *http.Request {
	claims := &utils.Claims{Email: email}
	ctx := context.WithValue(r.Context(), middleware.UserContextKey, claims)
	return r.WithContext(ctx)
}

// MockUserStore is a mock implementation of store.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserStore) ListOthers(ctx context.Context, excludeEmail string) ([]models.User, error) {
	args := m.Called(ctx, excludeEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) RequestSellerStatus(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserStore) UpdateRole(ctx context.Context, email, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockUserStore) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlantStore is a mock implementation of store.PlantStore
type MockPlantStore struct {
	mock.Mock
}

func (m *MockPlantStore) Insert(ctx context.Context, plant models.Plant) (primitive.ObjectID, error) {
	args := m.Called(ctx, plant)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPlantStore) List(ctx context.Context, limit int64) ([]models.Plant, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantStore) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Plant, error) {
	args := m.Called(ctx, sellerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plant), args.Error(1)
}

func (m *MockPlantStore) Update(ctx context.Context, id primitive.ObjectID, update models.PlantUpdate) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlantStore) Delete(ctx context.Context, id primitive.ObjectID, sellerEmail string) (int64, error) {
	args := m.Called(ctx, id, sellerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlantStore) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlantStore) EstimatedCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderStore is a mock implementation of store.OrderStore
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) ListByCustomer(ctx context.Context, email string) ([]models.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrichedOrder), args.Error(1)
}

func (m *MockOrderStore) ListBySeller(ctx context.Context, email string) ([]models.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrichedOrder), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderStore) DeleteIfNotDelivered(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderStore) Totals(ctx context.Context) (int64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *MockOrderStore) ChartSeries(ctx context.Context) ([]models.ChartPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChartPoint), args.Error(1)
}

// fakeNotifier records enqueued emails and can simulate a full queue
type fakeNotifier struct {
	full bool
	sent []struct{ To, Subject string }
}

func (f *fakeNotifier) Enqueue(to, subject, html string) bool {
	if f.full {
		return false
	}
	f.sent = append(f.sent, struct{ To, Subject string }{to, subject})
	return true
}

// mockIntenter records the amount forwarded to the payment processor
type mockIntenter struct {
	mock.Mock
}

func (m *mockIntenter) CreateIntent(amount int64) (string, error) {
	args := m.Called(amount)
	return args.String(0), args.Error(1)
}
