package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docforensics/docs"
	"docforensics/internal/handler"
	"docforensics/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	healthH *handler.HealthHandler,
	analysisH *handler.AnalysisHandler,
	viewerH *handler.ViewerHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	analyses := v1.Group("/analyses")
	analyses.POST("", analysisH.Create)
	analyses.GET("/current", analysisH.Current)
	analyses.GET("/current/export", analysisH.Export)
	analyses.GET("/score", analysisH.Score)

	sessions := v1.Group("/viewer/sessions")
	sessions.POST("", viewerH.Open)
	sessions.GET("/:id", viewerH.Get)
	sessions.DELETE("/:id", viewerH.Close)
	sessions.POST("/:id/pointer/down", viewerH.PointerDown)
	sessions.POST("/:id/pointer/move", viewerH.PointerMove)
	sessions.POST("/:id/pointer/up", viewerH.PointerUp)
	sessions.POST("/:id/pointer/cancel", viewerH.PointerCancel)
	sessions.PUT("/:id/tool", viewerH.SetTool)
	sessions.PUT("/:id/zoom", viewerH.SetZoom)
	sessions.PUT("/:id/comment", viewerH.SetComment)
	sessions.POST("/:id/rotate", viewerH.Rotate)
	sessions.GET("/:id/annotations", viewerH.ListAnnotations)
	sessions.PATCH("/:id/annotations/:annotationID", viewerH.EditAnnotation)
	sessions.DELETE("/:id/annotations/:annotationID", viewerH.DeleteAnnotation)

	return r
}
