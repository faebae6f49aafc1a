package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/controllers"
	"github.com/yigit/placement/internal/middleware"
)

// Controllers groups every handler the router exposes
type Controllers struct {
	Page      *controllers.PageController
	Company   *controllers.CompanyController
	Student   *controllers.StudentController
	Placement *controllers.PlacementController
	Record    *controllers.RecordController
	Upload    *controllers.UploadController
	API       *controllers.APIController
}

// Options configures route-level middleware
type Options struct {
	MaxUploadSize      int64
	CORSAllowedOrigins []string
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, opts Options) {
	// --- HTML pages ---
	router.GET("/", ctrl.Page.Index)

	router.GET("/add_company", ctrl.Company.New)
	router.POST("/add_company", ctrl.Company.Create)

	router.GET("/add_student", ctrl.Student.New)
	router.POST("/add_student",
		middleware.UploadLimit(opts.MaxUploadSize, middleware.HandlePageError),
		ctrl.Student.Create,
	)
	router.GET("/uploads/:filename", ctrl.Upload.ServeResume)

	router.GET("/place_student", ctrl.Placement.New)
	router.POST("/place_student", ctrl.Placement.Create)

	router.GET("/view_records", ctrl.Record.ViewRecords)
	router.GET("/export_placements", ctrl.Record.ExportPlacements)

	// --- Read-only JSON API ---
	v1 := router.Group("/api/v1")
	v1.Use(corsMiddleware(opts.CORSAllowedOrigins))
	{
		v1.OPTIONS("/*path", func(*gin.Context) {})
		v1.GET("/health", ctrl.API.Health)
		v1.GET("/records", ctrl.API.Records)
		v1.GET("/companies", ctrl.API.Companies)
		v1.GET("/students", ctrl.API.Students)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", middleware.RequestIDKey}
	config.ExposeHeaders = []string{middleware.RequestIDKey}
	return cors.New(config)
}
