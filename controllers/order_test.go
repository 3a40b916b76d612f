package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plantnet/models"
	"plantnet/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderController_Create(t *testing.T) {
	body := `{
		"customer":{"email":"buyer@example.com","name":"Buyer","address":"Dhaka"},
		"seller":"owner@example.com",
		"plantId":"` + primitive.NewObjectID().Hex() + `",
		"quantity":3,
		"price":30,
		"status":"Pending"
	}`

	t.Run("QueuesBothNotifications", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("Insert", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
		notifier := &fakeNotifier{}

		oc := NewOrderController(orders, notifier)
		req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
		req = withClaims(req, "buyer@example.com")
		rec := httptest.NewRecorder()

		oc.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, notifier.sent, 2)
		assert.Equal(t, "buyer@example.com", notifier.sent[0].To)
		assert.Equal(t, "owner@example.com", notifier.sent[1].To)
	})

	t.Run("FullQueueDoesNotFailRequest", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("Insert", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
		notifier := &fakeNotifier{full: true}

		oc := NewOrderController(orders, notifier)
		req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
		req = withClaims(req, "buyer@example.com")
		rec := httptest.NewRecorder()

		oc.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, notifier.sent)
	})
}

func TestOrderController_Delete(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("DeliveredIsRefused", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("DeleteIfNotDelivered", mock.Anything, id).Return(store.ErrDelivered)

		oc := NewOrderController(orders, &fakeNotifier{})
		req := httptest.NewRequest(http.MethodDelete, "/order/"+id.Hex(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
		rec := httptest.NewRecorder()

		oc.Delete(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Delivered order can't be cancelled")
	})

	t.Run("PendingIsDeleted", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("DeleteIfNotDelivered", mock.Anything, id).Return(nil)

		oc := NewOrderController(orders, &fakeNotifier{})
		req := httptest.NewRequest(http.MethodDelete, "/order/"+id.Hex(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
		rec := httptest.NewRecorder()

		oc.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
	})

	t.Run("Missing", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("DeleteIfNotDelivered", mock.Anything, id).Return(store.ErrNotFound)

		oc := NewOrderController(orders, &fakeNotifier{})
		req := httptest.NewRequest(http.MethodDelete, "/order/"+id.Hex(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
		rec := httptest.NewRecorder()

		oc.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderController_UpdateStatus(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("AnyStringAccepted", func(t *testing.T) {
		orders := new(MockOrderStore)
		orders.On("UpdateStatus", mock.Anything, id, "Out For Delivery").Return(int64(1), nil)

		oc := NewOrderController(orders, &fakeNotifier{})
		req := httptest.NewRequest(http.MethodPatch, "/order/"+id.Hex(),
			strings.NewReader(`{"status":"Out For Delivery"}`))
		req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
		rec := httptest.NewRecorder()

		oc.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		orders.AssertExpectations(t)
	})

	t.Run("EmptyStatusRejected", func(t *testing.T) {
		oc := NewOrderController(new(MockOrderStore), &fakeNotifier{})
		req := httptest.NewRequest(http.MethodPatch, "/order/"+id.Hex(), strings.NewReader(`{}`))
		req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
		rec := httptest.NewRecorder()

		oc.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderController_ListByCustomer(t *testing.T) {
	orders := new(MockOrderStore)
	orders.On("ListByCustomer", mock.Anything, "buyer@example.com").Return([]models.EnrichedOrder{
		{
			Order:         models.Order{Customer: models.Customer{Email: "buyer@example.com"}, Quantity: 3},
			PlantName:     "Monstera",
			PlantImage:    "monstera.png",
			PlantQuantity: 7,
		},
	}, nil)

	oc := NewOrderController(orders, &fakeNotifier{})
	req := httptest.NewRequest(http.MethodGet, "/customer-orders/buyer@example.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "buyer@example.com"})
	rec := httptest.NewRecorder()

	oc.ListByCustomer(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Monstera")
	assert.Contains(t, rec.Body.String(), "plantQuantity")
}
