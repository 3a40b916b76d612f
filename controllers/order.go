// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"plantnet/models"
	"plantnet/store"
	"plantnet/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier queues outbound emails without blocking the request.
type Notifier interface {
	Enqueue(to, subject, html string) bool
}

// OrderController handles order-related requests
type OrderController struct {
	Orders        store.OrderStore
	Notifications Notifier
}

// NewOrderController creates a new OrderController
func NewOrderController(orders store.OrderStore, notifications Notifier) *OrderController {
	return &OrderController{
		Orders:        orders,
		Notifications: notifications,
	}
}

// Create inserts the order as given and queues the customer and seller
// notifications. Notification failures never surface to the caller.
func (oc *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	insertedID, err := oc.Orders.Insert(ctx, order)
	if err != nil {
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	if order.Customer.Email != "" {
		subject, html := utils.OrderConfirmationEmail(order)
		oc.Notifications.Enqueue(order.Customer.Email, subject, html)
	}
	if order.Seller != "" {
		subject, html := utils.SellerOrderAlertEmail(order)
		oc.Notifications.Enqueue(order.Seller, subject, html)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": insertedID.Hex()})
}

// ListAll returns every order
func (oc *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	orders, err := oc.Orders.ListAll(ctx)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// ListByCustomer returns a customer's orders joined with plant details
func (oc *OrderController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	orders, err := oc.Orders.ListByCustomer(ctx, email)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// ListBySeller returns a seller's incoming orders joined with the plant
// name (Seller only)
func (oc *OrderController) ListBySeller(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	orders, err := oc.Orders.ListBySeller(ctx, email)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateStatus sets an order's status field (Seller only). Status
// values are caller-defined; the server does not validate transitions.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order id format", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	matched, err := oc.Orders.UpdateStatus(ctx, id, body.Status)
	if err != nil {
		http.Error(w, "Error updating order", http.StatusInternalServerError)
		return
	}
	if matched == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"matchedCount": matched})
}

// Delete cancels an order unless it has already been delivered
func (oc *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order id format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = oc.Orders.DeleteIfNotDelivered(ctx, id)
	if errors.Is(err, store.ErrDelivered) {
		http.Error(w, "Delivered order can't be cancelled", http.StatusConflict)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error deleting order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"deletedCount": 1})
}
