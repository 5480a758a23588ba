package router

import (
	"eventScout/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/profile", handler.GetProfile, authRequired)
	users.POST("/questionnaire", handler.SubmitQuestionnaire, authRequired)
}

func SetupDiscoveryRoutes(api *echo.Group, handler *rest.DiscoveryHandler, authRequired echo.MiddlewareFunc) {
	disc := api.Group("/discovery", authRequired)

	disc.GET("", handler.Discover)
	disc.GET("/explain", handler.Explain)
}

func SetupSocialRoutes(api *echo.Group, handler *rest.SocialHandler, authRequired echo.MiddlewareFunc) {
	social := api.Group("/social", authRequired)

	social.POST("/rsvp", handler.SetRSVP)
	social.GET("/rsvp", handler.ListRSVPs)
	social.POST("/friends", handler.AddFriend)
}
