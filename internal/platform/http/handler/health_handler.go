// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthRes is the body of /healthz.
type HealthRes struct {
	Status     string `json:"status"`
	Repository string `json:"repository,omitempty"`
}

// NewHealth は /healthz 用のハンドラーを返します。backend は稼働中のリポジトリ種別です。
// HEADはボディなし200、OPTIONSは204、それ以外はJSONを返し、キャッシュを防止します。
func NewHealth(backend string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, HealthRes{Status: "ok", Repository: backend})
		}
	}
}
