package routes

import (
	"github.com/gin-gonic/gin"

	"saferide/internal/authz"
	"saferide/internal/handlers"
	"saferide/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	chatHandler *handlers.ChatHandler,
	messageHandler *handlers.MessageHandler,
	orderHandler *handlers.OrderHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/register", userHandler.Register)
	r.POST("/token/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.GET("/current-user", userHandler.GetCurrentUser)

	// USERS
	users := r.Group("/users")
	{
		users.GET("/", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUserByID)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.PATCH("/:id/location", userHandler.UpdateLocation)
		users.PATCH("/:id/password", userHandler.UpdatePassword)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// CHATS
	chats := r.Group("/chats")
	{
		chats.POST("/", chatHandler.CreateChat)
		chats.GET("/user/:user_id", chatHandler.ListUserChats)
		chats.GET("/all", middleware.RequireRoles(authz.RoleAdmin), chatHandler.ListAllChats)
		chats.GET("/find/:first_id/:second_id", chatHandler.FindChat)
	}

	// MESSAGES
	messages := r.Group("/messages")
	{
		messages.POST("/", messageHandler.SendMessage)
		messages.GET("/:chat_id", messageHandler.ListMessages)
	}

	// ORDERS
	orders := r.Group("/orders")
	{
		orders.POST("/", orderHandler.CreateOrder)
		orders.GET("/all", orderHandler.ListAllOrders)
		orders.GET("/:id/waybill", orderHandler.Waybill)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	return r
}
