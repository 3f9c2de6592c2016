package handler

import (
	"net/http"
	"time"

	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := router.Group("/v1")
	v1.POST("/assess", AssessHandler(svcCtx))
	v1.POST("/games", CreateMatchHandler(svcCtx))
	v1.GET("/games/:uid", GetMatchHandler(svcCtx))
	v1.POST("/games/:uid/moves", MoveHandler(svcCtx))
	v1.POST("/games/:uid/power", PowerHandler(svcCtx))
	v1.POST("/games/:uid/ai", AIHandler(svcCtx))
}

// Logger writes one access line per request through logx.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logx.WithContext(c.Request.Context()).WithDuration(time.Since(start)).Infof("%s %s %d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
