package api

import "Folio/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ResourceHandler      *handler.ResourceHandler
	PostHandler          *handler.PostHandler
	CategoryHandler      *handler.CategoryHandler
	CategoryPostsHandler *handler.CategoryPostsHandler
	AuthorHandler        *handler.AuthorHandler
	MediaHandler         *handler.MediaHandler
}
