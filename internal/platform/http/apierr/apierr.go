// Package apierr renders the structured error body shared by every endpoint:
//
//	{"error": {"code": "NOT_FOUND", "message": "Movie not found."}}
package apierr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeUserAlreadyExists Code = "USER_ALREADY_EXISTS"
	CodeMissing           Code = "MISSING"
	CodeAuthError         Code = "AUTH_ERROR"
	CodeInvalidRequest    Code = "INVALID_REQUEST"
	CodeRequestError      Code = "REQUEST_ERROR"
	CodeInternalError     Code = "INTERNAL_ERROR"
)

// Detail is the content of the error envelope.
type Detail struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Response is the error envelope.
type Response struct {
	Error Detail `json:"error"`
}

// Abort writes the error body with status and stops the handler chain.
func Abort(c *gin.Context, status int, code Code, message string) {
	c.AbortWithStatusJSON(status, Response{Error: Detail{Code: code, Message: message}})
}

// Unauthenticated aborts with 401 and a Bearer challenge.
func Unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	Abort(c, http.StatusUnauthorized, CodeUnauthorized, "Could not validate credentials.")
}

// Forbidden aborts with 403. The code is shared with Unauthenticated; the status tells them apart.
func Forbidden(c *gin.Context) {
	Abort(c, http.StatusForbidden, CodeUnauthorized, "You are not authorized to perform this action.")
}

// Internal aborts with 500 without leaking the cause.
func Internal(c *gin.Context) {
	Abort(c, http.StatusInternalServerError, CodeInternalError, "Internal server error.")
}
