package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/postcraft/postcraft-gateway/config"
	httpapi "github.com/postcraft/postcraft-gateway/internal/api/http"
	"github.com/postcraft/postcraft-gateway/internal/api/http/middleware"
	posthttp "github.com/postcraft/postcraft-gateway/internal/posts/http"
	postservice "github.com/postcraft/postcraft-gateway/internal/posts/service"
	projecthttp "github.com/postcraft/postcraft-gateway/internal/projects/http"
	"github.com/postcraft/postcraft-gateway/internal/projects/repository"
	projectservice "github.com/postcraft/postcraft-gateway/internal/projects/service"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Posts       *postservice.PostService
	Store       *docstore.Holder
	Firebase    config.FirebaseConfig
	OpenStore   httpapi.StoreOpener
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	projects := projectservice.NewProjectService(repository.NewProjectRepository(dep.Store))

	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Posts, projects).RegisterRoutes(r)
	httpapi.NewFirebaseHandler(dep.Store, dep.Firebase, dep.OpenStore).RegisterRoutes(r)
	posthttp.Register(r, dep.Posts)
	projecthttp.New(projects, dep.Posts).Register(r)

	return r
}
