package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/strokeapp/stroke-backend/internal/common/middlewares"
	dashboardControllers "github.com/strokeapp/stroke-backend/internal/dashboard/controllers"
	dashboardServices "github.com/strokeapp/stroke-backend/internal/dashboard/services"
	predictionControllers "github.com/strokeapp/stroke-backend/internal/prediction/controllers"
	predictionServices "github.com/strokeapp/stroke-backend/internal/prediction/services"
	userServices "github.com/strokeapp/stroke-backend/internal/users/services"
	"github.com/strokeapp/stroke-backend/ws"
)

// Init wires services, controllers, and route groups. Store handles come from
// main and are shared read-only between requests.
func Init(e *echo.Echo, db *sql.DB, predictions *mongo.Collection, hub *ws.Hub) {
	userService := userServices.NewUserService(db)
	predictionService := predictionServices.NewPredictionService(predictions)
	dashboardService := dashboardServices.NewDashboardService(predictionService, userService)

	dashboardController := dashboardControllers.NewDashboardController(dashboardService)
	predictionController := predictionControllers.NewPredictionController(predictionService, hub)

	api := e.Group("/api")

	dashboard := api.Group("/dashboard")
	dashboard.GET("/patients", dashboardController.GetPatients,
		middlewares.JWTMiddleware(), middlewares.RequireRole("doctor"))

	prediction := api.Group("/predictions")
	prediction.POST("", predictionController.SavePrediction, middlewares.JWTMiddleware())
	prediction.GET("/me", predictionController.MyPredictions, middlewares.JWTMiddleware())

	api.GET("/ws/dashboard", ws.ServeWS(hub), middlewares.JWTMiddleware(), middlewares.RequireRole("doctor"))
}
