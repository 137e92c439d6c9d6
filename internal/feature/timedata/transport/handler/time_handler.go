// Package handler provides the HTTP handler for the time lookup endpoint.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/feature/timedata/domain"
	"movie_backend/internal/feature/timedata/domain/entity"
	"movie_backend/internal/feature/timedata/transport/http/dto"
	"movie_backend/internal/platform/http/apierr"
)

// TimeProvider は外部の時刻サービスへの問い合わせを抽象化します。
type TimeProvider interface {
	GetTime(ctx context.Context, area, location, region string) (*entity.TimeData, error)
}

// TimeHandler handles GET /time/:area/:location.
type TimeHandler struct {
	provider TimeProvider
}

// NewTimeHandler creates a new TimeHandler.
func NewTimeHandler(provider TimeProvider) *TimeHandler {
	return &TimeHandler{provider: provider}
}

// Get は指定されたタイムゾーンの現在時刻を返します。
// 上流サービスが失敗した場合は502 REQUEST_ERRORを返します。
func (h *TimeHandler) Get(c *gin.Context) {
	var q dto.TimeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid query parameters.")
		return
	}

	t, err := h.provider.GetTime(c.Request.Context(), c.Param("area"), c.Param("location"), q.Region)
	if err != nil {
		var reqErr *domain.RequestError
		if errors.As(err, &reqErr) {
			slog.Error("time lookup failed", "url", reqErr.URL, "error", reqErr.Err)
			apierr.Abort(c, http.StatusBadGateway, apierr.CodeRequestError,
				fmt.Sprintf("Error during request to %s.", reqErr.URL))
			return
		}
		slog.Error("time lookup failed", "error", err)
		apierr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.NewTimeRes(t))
}
