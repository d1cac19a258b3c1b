package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mirror520/users"
)

func SetRouter(r *gin.Engine, endpoints users.Endpoints) {
	usersGroup := r.Group("/users")
	{
		usersGroup.GET("", ListUsersHandler(endpoints.ListUsers))
		usersGroup.POST("", CreateUserHandler(endpoints.CreateUser))
		usersGroup.GET("/:id", GetUserHandler(endpoints.GetUser))
		usersGroup.PUT("/:id", UpdateUserHandler(endpoints.UpdateUser))
		usersGroup.DELETE("/:id", DeleteUserHandler(endpoints.DeleteUser))
	}
}
