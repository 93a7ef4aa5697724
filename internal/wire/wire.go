package wire

import (
	"Folio/internal/api"
	"Folio/internal/api/config"
	"Folio/internal/api/handler"
	"Folio/internal/job"
	"Folio/internal/pkg/cron"
	"Folio/internal/repository"
	"Folio/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(
	db *gorm.DB,
	store service.MediaStore,
	registry service.TempMediaRegistry,
	cfg *config.Config,
) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	authorRepo := repository.NewAuthorRepository(db)

	postService := service.NewPostService(postRepo, categoryRepo, authorRepo, store, registry)
	categoryPostService := service.NewCategoryPostService(postRepo, categoryRepo, authorRepo, store, registry)
	categoryService := service.NewCategoryService(categoryRepo)
	authorService := service.NewAuthorService(authorRepo)
	mediaService := service.NewMediaService(store, registry, postRepo)

	handlers := &api.HandlersGroup{
		ResourceHandler:      handler.NewResourceHandler(),
		PostHandler:          handler.NewPostHandler(postService),
		CategoryHandler:      handler.NewCategoryHandler(categoryService),
		CategoryPostsHandler: handler.NewCategoryPostsHandler(categoryPostService),
		AuthorHandler:        handler.NewAuthorHandler(authorService),
		MediaHandler:         handler.NewMediaHandler(mediaService, cfg.Media.MaxSizeMB<<20),
	}

	router := api.SetupRouter(handlers, cfg.Server.CORSOrigins)

	ttl := time.Duration(cfg.Media.TempTTLHours) * time.Hour
	cronMgr := cron.NewCronManager(cfg.Media.CleanupSpec, job.NewThumbnailCleanupJob(mediaService, ttl))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
