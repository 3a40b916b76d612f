package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"plantnet/models"
	"plantnet/store"
)

// AdminController serves the admin dashboard aggregates
type AdminController struct {
	Users  store.UserStore
	Plants store.PlantStore
	Orders store.OrderStore
}

// NewAdminController creates a new AdminController
func NewAdminController(users store.UserStore, plants store.PlantStore, orders store.OrderStore) *AdminController {
	return &AdminController{
		Users:  users,
		Plants: plants,
		Orders: orders,
	}
}

// Stats returns user/plant counts, order totals and the per-day chart
// series (Admin only). Counts for users and plants are estimates;
// order totals come from an exact aggregation. Nothing is cached.
func (ac *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	totalUsers, err := ac.Users.EstimatedCount(ctx)
	if err != nil {
		http.Error(w, "Error computing stats", http.StatusInternalServerError)
		return
	}

	totalPlants, err := ac.Plants.EstimatedCount(ctx)
	if err != nil {
		http.Error(w, "Error computing stats", http.StatusInternalServerError)
		return
	}

	totalOrders, totalRevenue, err := ac.Orders.Totals(ctx)
	if err != nil {
		http.Error(w, "Error computing stats", http.StatusInternalServerError)
		return
	}

	chartData, err := ac.Orders.ChartSeries(ctx)
	if err != nil {
		http.Error(w, "Error computing stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AdminStats{
		TotalUsers:   totalUsers,
		TotalPlants:  totalPlants,
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		ChartData:    chartData,
	})
}
