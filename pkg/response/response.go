package response

import (
	"github.com/gin-gonic/gin"
	"github.com/thienel/filepick/pkg/apperror"
)

// Response is the standard API response structure.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody contains error details.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success creates a successful response.
func Success(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Error creates an error response.
func Error(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

// FromAppError creates an error response from an AppError.
func FromAppError(err *apperror.AppError) Response {
	return Response{
		Success: false,
		Error: &ErrorBody{
			Code:    err.Code,
			Message: err.Message,
			Details: err.Details,
		},
	}
}

// Gin helper functions for common HTTP responses

// OK sends a 200 OK response with data.
func OK(c *gin.Context, data any) {
	c.JSON(200, Success(data))
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(204)
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(400, Error(apperror.CodeBadRequest, message))
}

// InternalError sends a 500 Internal Server Error response.
func InternalError(c *gin.Context, message string) {
	c.JSON(500, Error(apperror.CodeInternalServer, message))
}

// HandleAppError sends the appropriate response based on the AppError.
func HandleAppError(c *gin.Context, err *apperror.AppError) {
	c.JSON(err.HTTPStatus, FromAppError(err))
}
