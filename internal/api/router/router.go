package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/jinhanworks/board-notifier/internal/api/handlers/announcement"
	"github.com/jinhanworks/board-notifier/internal/api/handlers/board"
	"github.com/jinhanworks/board-notifier/internal/api/handlers/notification"
	"github.com/jinhanworks/board-notifier/internal/api/middleware"
)

// New builds the API router. Every route requires a valid bearer token.
func New(
	notifHandler *notification.Handler,
	boardHandler *board.Handler,
	annHandler *announcement.Handler,
	jwtSecret string,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	api.Use(middleware.Auth(jwtSecret))

	api.GET("/notifications", notifHandler.List)
	api.PUT("/notifications/:id/read", notifHandler.MarkRead)
	api.PUT("/notifications/announcements/:id/read", notifHandler.MarkAnnouncementRead)

	api.POST("/boards/:boardId/articles", boardHandler.WriteArticle)
	api.POST("/articles/:articleId/comments", boardHandler.WriteComment)

	api.POST("/announcements", annHandler.Create)
	api.GET("/announcements/:id", annHandler.Get)

	return e
}
