package handler

import (
	"net/http"

	"github.com/HuXin0817/power-boxes/serve/internal/logic"
	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func AssessHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AssessRequest
		if err := parse(c, &req); err != nil {
			writeError(c, err)
			return
		}

		resp, err := logic.NewAssessLogic(c.Request.Context(), svcCtx).Assess(&req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}
