package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/endpoint"

	"github.com/mirror520/users"
	"github.com/mirror520/users/model"
	"github.com/mirror520/users/user"
)

func abortWithError(ctx *gin.Context, err error) {
	result := model.FailureResult(err)

	if errors.Is(err, user.ErrUserNotFound) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, result)
		return
	}

	ctx.AbortWithStatusJSON(http.StatusInternalServerError, result)
}

func CreateUserHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req users.CreateUserRequest
		if err := ctx.ShouldBind(&req); err != nil {
			result := model.FailureResult(err)
			ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
			return
		}

		resp, err := endpoint(ctx, req)
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, resp)
	}
}

func GetUserHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := user.ParseID(ctx.Param("id"))
		if err != nil {
			result := model.FailureResult(err)
			ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
			return
		}

		resp, err := endpoint(ctx, id)
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, resp)
	}
}

func ListUsersHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resp, err := endpoint(ctx, nil)
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, resp)
	}
}

func UpdateUserHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := user.ParseID(ctx.Param("id"))
		if err != nil {
			result := model.FailureResult(err)
			ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
			return
		}

		var req users.UpdateUserRequest
		if err := ctx.ShouldBind(&req); err != nil {
			result := model.FailureResult(err)
			ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
			return
		}
		req.ID = id

		resp, err := endpoint(ctx, req)
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, resp)
	}
}

func DeleteUserHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := user.ParseID(ctx.Param("id"))
		if err != nil {
			result := model.FailureResult(err)
			ctx.AbortWithStatusJSON(http.StatusBadRequest, result)
			return
		}

		resp, err := endpoint(ctx, id)
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, resp)
	}
}
