package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gift-ledger/internal/handler/api"
	"gift-ledger/internal/handler/middleware"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, certificateHandler *api.CertificateHandler, redemptionHandler *api.RedemptionHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, certificateHandler, redemptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, certificateHandler *api.CertificateHandler, redemptionHandler *api.RedemptionHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	integration := authMiddleware.RequireRole(jwt.RoleIntegration, jwt.RoleAdmin)
	admin := authMiddleware.RequireRole(jwt.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/certificates/lookup/:code", Handler: certificateHandler.Lookup},
			{Method: http.MethodPost, Path: "/redemptions", Handler: redemptionHandler.Redeem, Mw: []gin.HandlerFunc{integration}},
			{Method: http.MethodPost, Path: "/webhooks/form-submissions", Handler: redemptionHandler.FormSubmission, Mw: []gin.HandlerFunc{integration}},
		})

		certificates := apiGroup.Group("/certificates")
		certificates.Use(admin)
		{
			addRoutes(certificates, []route{
				{Method: http.MethodPost, Path: "", Handler: certificateHandler.Issue},
				{Method: http.MethodGet, Path: "", Handler: certificateHandler.List},
				{Method: http.MethodGet, Path: "/due-for-delivery", Handler: certificateHandler.DueForDelivery},
				{Method: http.MethodGet, Path: "/:id", Handler: certificateHandler.Get},
				{Method: http.MethodGet, Path: "/:id/transactions", Handler: certificateHandler.Transactions},
				{Method: http.MethodGet, Path: "/:id/reconciliation", Handler: certificateHandler.Reconciliation},
				{Method: http.MethodPatch, Path: "/:id", Handler: certificateHandler.UpdateMetadata},
				{Method: http.MethodPut, Path: "/:id/status", Handler: certificateHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/delivered", Handler: certificateHandler.MarkDelivered},
				{Method: http.MethodDelete, Path: "/:id", Handler: certificateHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
