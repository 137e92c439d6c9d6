// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for the /user/create endpoint.
type CreateUserReq struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required"`
}

// MessageRes is a plain acknowledgement.
type MessageRes struct {
	Msg string `json:"msg"`
}
