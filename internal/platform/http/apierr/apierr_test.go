package apierr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantCode   Code
		wantHeader string
	}{
		{"unauthenticated", Unauthenticated, http.StatusUnauthorized, CodeUnauthorized, "Bearer"},
		{"forbidden", Forbidden, http.StatusForbidden, CodeUnauthorized, ""},
		{"internal", Internal, http.StatusInternalServerError, CodeInternalError, ""},
		{"custom", func(c *gin.Context) { Abort(c, http.StatusBadRequest, CodeMissing, "m") }, http.StatusBadRequest, CodeMissing, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.write(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("WWW-Authenticate"))

			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}
