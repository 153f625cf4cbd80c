package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/wellnest/backend/api/handler"
	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/internal/middleware"
	"github.com/wellnest/backend/internal/validation"
)

type Handlers struct {
	Auth         *apiHandler.AuthHandler
	Activity     *apiHandler.ActivityHandler
	UserActivity *apiHandler.UserActivityHandler
	Health       *apiHandler.HealthHandler
}

// Request schemas per route, the single declaration of each endpoint's shape.
var (
	signupSchemas = middleware.RequestSchemas{
		Body: validation.Schema{
			{Field: "username", Required: true, MinLen: 4},
			{Field: "email", Required: true, Email: true},
			{Field: "password", Required: true, MinLen: 4},
		},
	}

	loginSchemas = middleware.RequestSchemas{
		Body: validation.Schema{
			{Field: "email", Required: true, Email: true},
			{Field: "password", Required: true},
		},
	}

	createUserActivitySchemas = middleware.RequestSchemas{
		Body: validation.Schema{
			{Field: "user_id", Required: true, Pattern: validation.UUIDPattern},
			{Field: "activity_id", Required: true, Pattern: validation.UUIDPattern},
			{Field: "status", Required: true, Enum: domain.TrackingStatuses},
		},
	}

	updateUserActivitySchemas = middleware.RequestSchemas{
		Params: validation.Schema{
			{Field: "id", Required: true, Pattern: validation.UUIDPattern},
		},
		Body: validation.Schema{
			{Field: "status", Required: true, Enum: domain.TrackingStatuses},
		},
	}

	fetchUserActivitySchemas = middleware.RequestSchemas{
		Query: validation.Schema{
			{Field: "user_id", Required: true, Pattern: validation.UUIDPattern},
			{Field: "status", Enum: domain.TrackingStatuses},
		},
	}
)

// New wires every route with its validation schemas and, where required, the
// bearer-token middleware.
func New(handlers Handlers, auth func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public routes
	r.POST("/api/v1/auth/signup", middleware.ValidateRequest(signupSchemas)(handlers.Auth.Signup))
	r.POST("/api/v1/auth/login", middleware.ValidateRequest(loginSchemas)(handlers.Auth.Login))
	r.GET("/api/v1/activities", handlers.Activity.List)

	// Protected routes
	r.GET("/api/v1/user-activities",
		auth(middleware.ValidateRequest(fetchUserActivitySchemas)(handlers.UserActivity.List)))
	r.POST("/api/v1/user-activities",
		auth(middleware.ValidateRequest(createUserActivitySchemas)(handlers.UserActivity.Create)))
	r.PATCH("/api/v1/user-activities/{id}",
		auth(middleware.ValidateRequest(updateUserActivitySchemas)(handlers.UserActivity.UpdateStatus)))

	return r
}
