package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// Init builds the router.
//
// Route groups and their gates:
//   - /api/auth/signup, /api/auth/login: public, rate limited per IP.
//   - /api/auth/logout, /api/auth/me: any authenticated caller.
//   - /api/users: ADMIN.
//   - /api/companies: ADMIN.
//   - /api/warehouses: reads for ADMIN and STAFF, writes for ADMIN.
//   - /api/products: reads for any authenticated caller, writes for ADMIN
//     and STAFF.
//   - /api/inventory: ADMIN and STAFF.
//   - /api/orders: creation for CLIENT, reads for CLIENT and STAFF with
//     ownership enforced in the service, status changes for STAFF.
//
// ADMIN passes every gate, so it is only listed where it is the sole role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Handle("/metrics", promhttp.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Route("/api/users", func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin))
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Patch("/{id}/role", h.changeUserRole)
			r.Patch("/{id}/active", h.setUserActive)
		})

		r.Route("/api/companies", func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin))
			r.Post("/", h.createCompany)
			r.Get("/", h.listCompanies)
			r.Get("/{id}", h.getCompany)
			r.Put("/{id}", h.updateCompany)
			r.Delete("/{id}", h.deleteCompany)
		})

		r.Route("/api/warehouses", func(r chi.Router) {
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Get("/", h.listWarehouses)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Get("/{id}", h.getWarehouse)
			r.With(h.requireRoles(models.RoleAdmin)).Post("/", h.createWarehouse)
			r.With(h.requireRoles(models.RoleAdmin)).Put("/{id}", h.updateWarehouse)
			r.With(h.requireRoles(models.RoleAdmin)).Delete("/{id}", h.deleteWarehouse)
		})

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Get("/{id}", h.getProduct)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Post("/", h.createProduct)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Put("/{id}", h.updateProduct)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Delete("/{id}", h.deleteProduct)
		})

		r.Route("/api/inventory", func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin, models.RoleStaff))
			r.Post("/", h.recordInventoryTransaction)
			r.Get("/", h.listInventoryTransactions)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.With(h.requireRoles(models.RoleClient)).Post("/", h.createOrder)
			r.With(h.requireRoles(models.RoleClient, models.RoleStaff)).Get("/", h.listOrders)
			r.With(h.requireRoles(models.RoleClient, models.RoleStaff)).Get("/{id}", h.getOrder)
			r.With(h.requireRoles(models.RoleAdmin, models.RoleStaff)).Patch("/{id}/status", h.updateOrderStatus)
		})
	})

	return router
}
