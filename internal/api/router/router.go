package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/morningbutler/butler/internal/api/handlers/briefing"
	"github.com/morningbutler/butler/internal/middlewares"
)

func New(handler *briefing.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.GET("/briefing/assignments", handler.Assignments)
		api.GET("/briefing/announcements", handler.Announcements)
		api.POST("/briefing/announcements/:id/seen", handler.MarkSeen)
		api.GET("/weather", handler.Weather)
		api.GET("/news", handler.News)
		api.GET("/emails", handler.Emails)
		api.GET("/config", handler.Preferences)
		api.PUT("/config", handler.SavePreferences)
	}

	return e
}
