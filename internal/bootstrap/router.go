package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/harshkhandelwal17/tbes-company-website/internal/api/http"
	"github.com/harshkhandelwal17/tbes-company-website/internal/api/http/middleware"
	"github.com/harshkhandelwal17/tbes-company-website/internal/assets"
	"github.com/harshkhandelwal17/tbes-company-website/internal/auth"
	"github.com/harshkhandelwal17/tbes-company-website/internal/inquiries"
	"github.com/harshkhandelwal17/tbes-company-website/internal/jobs"
	projecthttp "github.com/harshkhandelwal17/tbes-company-website/internal/projects/http"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/repository"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	DB           *pgxpool.Pool
	Redis        *redis.Client
	Assets       *assets.Store
	UploadsDir   string
	AdminHash    string
	SessionTTL   time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	// Uploaded images are served straight from disk.
	r.Static("/uploads", dep.UploadsDir)

	projectRepo := repository.NewRepo(dep.DB)
	projectSvc := service.NewProjectService(projectRepo, dep.Assets)
	projectHandler := projecthttp.New(projectSvc)

	jobRepo := jobs.NewRepo(dep.DB)
	inquiryRepo := inquiries.NewRepo(dep.DB)

	sessions := auth.NewSessions(dep.Redis, dep.SessionTTL)
	authHandler := auth.NewHandler(sessions, dep.AdminHash)

	api := r.Group("/api/v1")

	projectHandler.RegisterPublic(api.Group("/projects"))
	jobs.RegisterPublic(api.Group("/jobs"), jobRepo)
	inquiries.RegisterPublic(api.Group("/contact"), inquiryRepo)

	admin := api.Group("/admin")
	authHandler.Register(admin)

	protected := admin.Group("")
	protected.Use(auth.Required(sessions))
	projectHandler.RegisterAdmin(protected.Group("/projects"))
	jobs.RegisterAdmin(protected.Group("/jobs"), jobRepo)
	inquiries.RegisterAdmin(protected.Group("/inquiries"), inquiryRepo)

	return r
}
