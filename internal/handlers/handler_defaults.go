package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
)

// defaultsHandler exposes the resolved account defaults and a cache reset.
type defaultsHandler struct {
	defaultsSvc portssvc.AccountDefaultsSvcFacade
}

func newDefaultsHandler(defaultsSvc portssvc.AccountDefaultsSvcFacade) *defaultsHandler {
	return &defaultsHandler{defaultsSvc: defaultsSvc}
}

// registerDefaultsRoutes registers account-defaults routes.
func registerDefaultsRoutes(rg *gin.RouterGroup, defaultsSvc portssvc.AccountDefaultsSvcFacade) {
	h := newDefaultsHandler(defaultsSvc)
	defaults := rg.Group("/account-defaults")
	{
		defaults.GET("", h.getAccountDefaults)
		defaults.POST("/refresh", h.refreshAccountDefaults)
	}
}

// getAccountDefaults godoc
// @Summary Get resolved account defaults
// @Description Returns the active account defaults currently used for posting, served from the cache
// @Tags defaults
// @Produce  json
// @Success 200 {object} map[string]string "Account ID per role"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /account-defaults [get]
func (h *defaultsHandler) getAccountDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	defaults, err := h.defaultsSvc.GetAccountDefaults(c.Request.Context())
	if err != nil {
		logger.Error("Failed to resolve account defaults", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Accounting data service unavailable"})
		return
	}

	resolved := make(map[string]string, len(defaults))
	for accountType, def := range defaults {
		resolved[string(accountType)] = def.AccountID
	}
	c.JSON(http.StatusOK, resolved)
}

// refreshAccountDefaults godoc
// @Summary Drop the account defaults cache
// @Description Clears the cached defaults so the next posting refetches them
// @Tags defaults
// @Success 204 "Cache cleared"
// @Router /account-defaults/refresh [post]
func (h *defaultsHandler) refreshAccountDefaults(c *gin.Context) {
	h.defaultsSvc.Reset()
	c.Status(http.StatusNoContent)
}
