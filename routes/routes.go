// routes/routes.go
package routes

import (
	"net/http"

	"plantnet/controllers"
	"plantnet/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application. Each route
// appears exactly once; role-gated handlers are wrapped with the auth
// middleware plus the matching role gate.
func RegisterRoutes(
	router *mux.Router,
	gate *middleware.Gate,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	plantController *controllers.PlantController,
	orderController *controllers.OrderController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController,
) {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(h)
	}
	seller := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(gate.RequireSeller(h))
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(gate.RequireAdmin(h))
	}

	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello from plantNet Server.."))
	}).Methods("GET")

	// Session routes
	router.HandleFunc("/jwt", authController.IssueToken).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	// User routes
	router.HandleFunc("/users/{email}", userController.Register).Methods("POST")
	router.Handle("/users", admin(userController.ListOthers)).Methods("GET")
	router.Handle("/users/role/{email}", authed(userController.GetRole)).Methods("GET")
	router.Handle("/user/role/{email}", admin(userController.UpdateRole)).Methods("PATCH")
	router.Handle("/users/{email}", authed(userController.RequestSellerStatus)).Methods("PATCH")

	// Plant routes. The fixed-path routes must be registered before the
	// {id} routes so mux does not swallow them.
	router.Handle("/plants", seller(plantController.Create)).Methods("POST")
	router.HandleFunc("/plants", plantController.List).Methods("GET")
	router.Handle("/plants/seller", seller(plantController.ListBySeller)).Methods("GET")
	router.Handle("/plants/quantity/{id}", authed(plantController.AdjustQuantity)).Methods("PATCH")
	router.Handle("/plants/{id}", seller(plantController.Update)).Methods("PATCH")
	router.Handle("/plants/{id}", seller(plantController.Delete)).Methods("DELETE")
	router.HandleFunc("/plants/{id}", plantController.GetByID).Methods("GET")

	// Order routes
	router.Handle("/order", authed(orderController.Create)).Methods("POST")
	router.Handle("/order", authed(orderController.ListAll)).Methods("GET")
	router.Handle("/customer-orders/{email}", authed(orderController.ListByCustomer)).Methods("GET")
	router.Handle("/seller-orders/{email}", seller(orderController.ListBySeller)).Methods("GET")
	router.Handle("/order/{id}", seller(orderController.UpdateStatus)).Methods("PATCH")
	router.Handle("/order/{id}", authed(orderController.Delete)).Methods("DELETE")

	// Admin dashboard
	router.Handle("/admin-stat", admin(adminController.Stats)).Methods("GET")

	// Payment
	router.Handle("/create-payment-intent", authed(paymentController.CreateIntent)).Methods("POST")
}
