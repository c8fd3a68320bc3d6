package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, dashboardHandler *DashboardHandler, activityHandler *ActivityHandler, customerHandler *CustomerHandler, adminHandler *AdminHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/metrics", dashboardHandler.GetMetrics)
	dashboard.GET("/comparison", dashboardHandler.GetComparison)

	// Activity log routes
	activities := api.Group("/activities")
	activities.GET("", activityHandler.ListActivities)
	activities.POST("", activityHandler.CreateActivity)
	activities.GET("/:id", activityHandler.GetActivity)
	activities.PUT("/:id", activityHandler.UpdateActivity)
	activities.DELETE("/:id", activityHandler.DeleteActivity)

	// Customer and salesperson routes
	api.GET("/customers", customerHandler.ListCustomers)
	api.GET("/customers/:id", customerHandler.GetCustomerDetail)
	api.GET("/salespeople", customerHandler.ListSalespeople)

	// Admin routes
	admin := api.Group("/admin")
	admin.PUT("/customers/:id/salesperson", adminHandler.ReassignCustomer)
	admin.GET("/projections", adminHandler.ListProjections)
	admin.PUT("/projections/:customerId/annual", adminHandler.SetAnnualTarget)
	admin.PUT("/projections/:customerId/monthly", adminHandler.SetMonthlyTargets)

	// WebSocket endpoint
	e.GET("/ws", wsHandler.HandleWS)
}
