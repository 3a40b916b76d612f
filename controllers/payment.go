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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentIntenter creates a payment intent and returns its client secret.
type PaymentIntenter interface {
	CreateIntent(amount int64) (string, error)
}

// PaymentController handles payment-intent creation for checkout
type PaymentController struct {
	Plants   store.PlantStore
	Payments PaymentIntenter
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(plants store.PlantStore, payments PaymentIntenter) *PaymentController {
	return &PaymentController{
		Plants:   plants,
		Payments: payments,
	}
}

// CreateIntent prices the requested quantity of a plant in minor
// currency units and forwards a create-intent call to the processor,
// returning the client secret verbatim
func (pc *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.PlantID)
	if err != nil {
		http.Error(w, "Invalid plant id format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plant, err := pc.Plants.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Plant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching plant", http.StatusInternalServerError)
		return
	}

	amount := utils.ChargeAmount(plant.Price, req.Quantity)
	if amount < utils.MinimumChargeAmount {
		http.Error(w, "Amount below minimum charge", http.StatusBadRequest)
		return
	}

	clientSecret, err := pc.Payments.CreateIntent(amount)
	if err != nil {
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PaymentIntentResponse{ClientSecret: clientSecret})
}
