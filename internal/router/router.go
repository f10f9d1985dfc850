package router

import (
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/handlers"
	"github.com/lexdesk-dev/lexdesk/web"
)

func New(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	// The app serves its own UI from the same origin; CORS only matters
	// when a dev frontend runs on a separate port.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/login", h.Login)
		api.GET("/stats", h.GetStats)
		api.POST("/backup", h.Backup)
		api.POST("/ask", h.Ask)

		clients := api.Group("/clients")
		{
			clients.GET("", h.GetClients)
			clients.GET("/list", h.GetClientList)
			clients.POST("", h.AddClient)
			clients.PUT("/:id", h.UpdateClient)
			clients.DELETE("/:id", h.DeleteClient)
		}

		cases := api.Group("/cases")
		{
			cases.GET("", h.GetCases)
			cases.POST("", h.AddCase)
			cases.PUT("/:id", h.UpdateCase)
			cases.DELETE("/:id", h.DeleteCase)

			cases.GET("/:id/appointments", h.GetAppointments)
			cases.POST("/:id/appointments", h.AddAppointment)
			cases.GET("/:id/invoices", h.GetInvoices)
			cases.POST("/:id/invoices", h.AddInvoice)
		}

		api.DELETE("/appointments/:id", h.DeleteAppointment)
		api.PUT("/invoices/:id/status", h.UpdateInvoiceStatus)
		api.DELETE("/invoices/:id", h.DeleteInvoice)
	}

	static, err := fs.Sub(web.Assets, "static")
	if err != nil {
		log.Fatalf("Failed to load embedded UI: %v", err)
	}
	r.StaticFS("/app", http.FS(static))
	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusMovedPermanently, "/app/")
	})

	return r
}
