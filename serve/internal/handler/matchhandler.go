package handler

import (
	"net/http"

	"github.com/HuXin0817/power-boxes/serve/internal/logic"
	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func CreateMatchHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateMatchRequest
		if err := parse(c, &req); err != nil {
			writeError(c, err)
			return
		}

		resp, err := logic.NewMatchLogic(c.Request.Context(), svcCtx).Create(&req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusCreated, resp)
	}
}

func GetMatchHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewMatchLogic(c.Request.Context(), svcCtx).Get(c.Param("uid"))
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MoveRequest
		if err := parse(c, &req); err != nil {
			writeError(c, err)
			return
		}

		resp, err := logic.NewMatchLogic(c.Request.Context(), svcCtx).Move(c.Param("uid"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func PowerHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PowerRequest
		if err := parse(c, &req); err != nil {
			writeError(c, err)
			return
		}

		resp, err := logic.NewMatchLogic(c.Request.Context(), svcCtx).Power(c.Param("uid"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func AIHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewMatchLogic(c.Request.Context(), svcCtx).AI(c.Param("uid"))
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}
