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
)

// UserController handles user-related requests
type UserController struct {
	Users store.UserStore
}

// NewUserController creates a new UserController
func NewUserController(users store.UserStore) *UserController {
	return &UserController{Users: users}
}

// Register saves a new user with the customer role, or answers
// idempotently when the email is already taken
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := uc.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
		return
	}

	user.Email = email
	user.Role = models.RoleCustomer
	user.Status = ""
	user.TimeStamp = time.Now().UnixMilli()

	insertedID, err := uc.Users.Insert(ctx, user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": insertedID.Hex()})
}

// ListOthers returns every user except the caller (Admin only)
func (uc *UserController) ListOthers(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := uc.Users.ListOthers(ctx, claims.Email)
	if err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// GetRole returns only the role field for the given email
func (uc *UserController) GetRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var role string
	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user != nil {
		role = user.Role
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Role string `json:"role,omitempty"`
	}{Role: role})
}

// RequestSellerStatus moves the caller's status to Requested; a repeat
// request is refused while the first one is pending
func (uc *UserController) RequestSellerStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := uc.Users.RequestSellerStatus(ctx, email)
	if errors.Is(err, store.ErrAlreadyRequested) || errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Already Requested", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"modifiedCount": 1})
}

// UpdateRole sets a user's role and marks them Verified (Admin only)
func (uc *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Role == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := uc.Users.UpdateRole(ctx, email, body.Role)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error updating role", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"modifiedCount": 1})
}
