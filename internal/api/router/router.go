package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/chat-notifier/internal/api/handlers/chat"
)

func New(handler *chat.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	// A non-POST request to the dispatch routes must get 405, not 404. The
	// status route lives under /status so its :id segment cannot swallow a
	// GET on /chat before the method check runs.
	e.HandleMethodNotAllowed = true

	api := e.Group("/api/notifications")

	api.POST("/chat", handler.Send)
	api.POST("/chat/queue", handler.Enqueue)
	api.GET("/", handler.GetRecent)
	api.GET("/status/:id", handler.GetStatus)

	return e
}
