package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/HuXin0817/power-boxes/pkg/match"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/serve/internal/logic"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

const jsonContentType = "application/json; charset=utf-8"

func parse(c *gin.Context, v any) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", logic.ErrBadRequest, err)
	}
	if len(body) == 0 {
		return nil
	}
	if err = sonic.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", logic.ErrBadRequest, err)
	}
	return nil
}

func writeJSON(c *gin.Context, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		logx.WithContext(c.Request.Context()).Errorf("encode response: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, jsonContentType, body)
}

func writeError(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	writeJSON(c, status, types.ErrorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, logic.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrNotYourTurn),
		errors.Is(err, match.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, logic.ErrBadRequest),
		errors.Is(err, logic.ErrDepthOutOfRange),
		errors.Is(err, match.ErrIllegalMove),
		errors.Is(err, chess.ErrBoardSizeOutOfRange),
		errors.Is(err, chess.ErrInvalidSnapshot),
		errors.Is(err, chess.ErrPowerDisabled),
		errors.Is(err, chess.ErrNoPowerToken),
		errors.Is(err, chess.ErrNothingToReverse),
		errors.Is(err, chess.ErrInvalidPowerPlan):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
