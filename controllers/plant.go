package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"plantnet/middleware"
	"plantnet/models"
	"plantnet/store"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// plantListLimit caps the public catalog listing. There is no
// pagination cursor; larger catalogs are truncated.
const plantListLimit = 20

// PlantController handles plant-related requests
type PlantController struct {
	Plants store.PlantStore
}

// NewPlantController creates a new PlantController
func NewPlantController(plants store.PlantStore) *PlantController {
	return &PlantController{Plants: plants}
}

// Create inserts a plant as given (Seller only)
func (pc *PlantController) Create(w http.ResponseWriter, r *http.Request) {
	var plant models.Plant
	if err := json.NewDecoder(r.Body).Decode(&plant); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	insertedID, err := pc.Plants.Insert(ctx, plant)
	if err != nil {
		http.Error(w, "Error creating plant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": insertedID.Hex()})
}

// List returns at most 20 plants
func (pc *PlantController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	plants, err := pc.Plants.List(ctx, plantListLimit)
	if err != nil {
		http.Error(w, "Error fetching plants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plants)
}

// ListBySeller returns the caller's own plants (Seller only)
func (pc *PlantController) ListBySeller(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plants, err := pc.Plants.ListBySeller(ctx, claims.Email)
	if err != nil {
		http.Error(w, "Error fetching plants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plants)
}

// GetByID retrieves a single plant by ID
func (pc *PlantController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
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

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plant)
}

// Update changes the allow-listed fields of a plant the caller owns
// (Seller only)
func (pc *PlantController) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plant id format", http.StatusBadRequest)
		return
	}

	var update models.PlantUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
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
	if plant.Seller.Email != claims.Email {
		http.Error(w, "Forbidden: you do not own this plant", http.StatusForbidden)
		return
	}

	modified, err := pc.Plants.Update(ctx, id, update)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Plant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error updating plant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"modifiedCount": modified})
}

// Delete removes a plant the caller owns (Seller only)
func (pc *PlantController) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plant id format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := pc.Plants.Delete(ctx, id, claims.Email)
	if err != nil {
		http.Error(w, "Error deleting plant", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		// Distinguish a missing plant from one owned by someone else.
		if _, err := pc.Plants.FindByID(ctx, id); errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Plant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Forbidden: you do not own this plant", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"deletedCount": deleted})
}

// AdjustQuantity applies an atomic increment or decrement to a plant's
// stock level
func (pc *PlantController) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plant id format", http.StatusBadRequest)
		return
	}

	var body struct {
		UpdatedQuantity int    `json:"updatedQuantity"`
		Status          string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	delta := -body.UpdatedQuantity
	if body.Status == "increase" {
		delta = body.UpdatedQuantity
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	matched, err := pc.Plants.AdjustQuantity(ctx, id, delta)
	if err != nil {
		http.Error(w, "Error updating quantity", http.StatusInternalServerError)
		return
	}
	if matched == 0 {
		http.Error(w, "Plant not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"matchedCount": matched})
}
