package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/common"
	"github.com/johnquangdev/voice-agent-dashboard/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	agentHandler       *Agent
	callHandler        *Call
	phoneNumberHandler *PhoneNumber
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, agentHandler *Agent, callHandler *Call, phoneNumberHandler *PhoneNumber) *Router {
	return &Router{
		cfg:                cfg,
		agentHandler:       agentHandler,
		callHandler:        callHandler,
		phoneNumberHandler: phoneNumberHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAgentRoutes(v1)
	rt.setupCallRoutes(v1)
	rt.setupPhoneNumberRoutes(v1)
}

// setupAgentRoutes configures agent management routes
func (rt *Router) setupAgentRoutes(g *echo.Group) {
	agentGroup := g.Group("/agents")

	if rt.agentHandler == nil {
		agentGroup.Any("", rt.notImplemented)
		agentGroup.Any("/*", rt.notImplemented)
		return
	}

	agentGroup.GET("", rt.agentHandler.ListAgents)
	agentGroup.POST("", rt.agentHandler.CreateAgent)
	agentGroup.GET("/:id", rt.agentHandler.GetAgent)
	agentGroup.PATCH("/:id", rt.agentHandler.UpdateAgent)
	agentGroup.DELETE("/:id", rt.agentHandler.DeleteAgent)
}

// setupCallRoutes configures call session routes
func (rt *Router) setupCallRoutes(g *echo.Group) {
	callGroup := g.Group("/calls")

	if rt.callHandler == nil {
		callGroup.Any("", rt.notImplemented)
		callGroup.Any("/*", rt.notImplemented)
		return
	}

	callGroup.POST("", rt.callHandler.StartCall)
	callGroup.POST("/end", rt.callHandler.EndCall)
	callGroup.POST("/events", rt.callHandler.HandleEvent)
	callGroup.GET("/status", rt.callHandler.GetStatus)
	callGroup.GET("/history", rt.callHandler.ListHistory)
	callGroup.GET("/history/export", rt.callHandler.ExportHistory)
	callGroup.GET("/:id", rt.callHandler.GetCall)
}

// setupPhoneNumberRoutes configures phone number routes
func (rt *Router) setupPhoneNumberRoutes(g *echo.Group) {
	numberGroup := g.Group("/phone-numbers")

	if rt.phoneNumberHandler == nil {
		numberGroup.Any("", rt.notImplemented)
		numberGroup.Any("/*", rt.notImplemented)
		return
	}

	numberGroup.GET("", rt.phoneNumberHandler.ListPhoneNumbers)
	numberGroup.POST("", rt.phoneNumberHandler.PurchasePhoneNumber)
	numberGroup.POST("/search", rt.phoneNumberHandler.SearchPhoneNumbers)
	numberGroup.PATCH("/:number", rt.phoneNumberHandler.AssignPhoneNumber)
	numberGroup.DELETE("/:number", rt.phoneNumberHandler.ReleasePhoneNumber)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, common.ErrorResponse{
		Success: false,
		Message: "This endpoint is not yet implemented",
		Info:    c.Request().Method + " " + c.Request().URL.Path,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.MockVendor = rt.cfg.Retell.UseMock
	}
	return c.JSON(http.StatusOK, resp)
}
