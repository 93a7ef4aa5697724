package api

import (
	"Folio/internal/api/middleware"
	"Folio/internal/pkg/logger"
	"Folio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, corsOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware("/api/ping"))
	r.Use(middleware.CORSMiddleware(corsOrigins...))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		adminGroup := apiGroup.Group("/admin")

		resourceGroup := adminGroup.Group("/resources")
		{
			resourceGroup.GET("", group.ResourceHandler.ListResources)
			resourceGroup.GET("/:name", group.ResourceHandler.GetResource)
			resourceGroup.GET("/:name/relations/:relation", group.ResourceHandler.GetRelation)
		}

		postGroup := adminGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/filter-options", group.PostHandler.GetFilterOptions)
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.POST("/bulk-delete", group.PostHandler.BulkDeletePosts)
			postGroup.GET("/:id", group.PostHandler.GetPost)
			postGroup.PUT("/:id", group.PostHandler.UpdatePost)
			postGroup.PATCH("/:id/published", group.PostHandler.SetPublished)
			postGroup.DELETE("/:id", group.PostHandler.DeletePost)
			postGroup.POST("/:id/restore", group.PostHandler.RestorePost)
		}

		categoryGroup := adminGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)
			categoryGroup.POST("", group.CategoryHandler.CreateCategory)
			categoryGroup.POST("/bulk-delete", group.CategoryHandler.BulkDeleteCategories)
			categoryGroup.GET("/:id", group.CategoryHandler.GetCategory)
			categoryGroup.PUT("/:id", group.CategoryHandler.UpdateCategory)
			categoryGroup.DELETE("/:id", group.CategoryHandler.DeleteCategory)
			categoryGroup.POST("/:id/restore", group.CategoryHandler.RestoreCategory)

			// 分类 -> 文章
			categoryGroup.GET("/:id/posts", group.CategoryPostsHandler.ListPosts)
			categoryGroup.POST("/:id/posts", group.CategoryPostsHandler.CreatePost)
			categoryGroup.POST("/:id/posts/bulk-delete", group.CategoryPostsHandler.BulkDeletePosts)
			categoryGroup.PUT("/:id/posts/:post_id", group.CategoryPostsHandler.UpdatePost)
			categoryGroup.PATCH("/:id/posts/:post_id/published", group.CategoryPostsHandler.SetPublished)
			categoryGroup.DELETE("/:id/posts/:post_id", group.CategoryPostsHandler.DeletePost)
		}

		authorGroup := adminGroup.Group("/authors")
		{
			authorGroup.GET("", group.AuthorHandler.ListAuthors)
			authorGroup.POST("", group.AuthorHandler.CreateAuthor)
		}

		mediaGroup := adminGroup.Group("/media")
		{
			mediaGroup.POST("/thumbnails", group.MediaHandler.UploadThumbnail)
		}
	}

	return r
}
