package response

import (
	"github.com/labstack/echo/v4"
)

// Response is the envelope of every successful API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope written by the error handler.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	// RetryAfter is set on rate limit rejections only, in whole seconds.
	RetryAfter *int `json:"retryAfter,omitempty"`
	// Stack is only populated in development.
	Stack string `json:"stack,omitempty"`
}

// Success writes data with an optional message.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Message writes a data-less success response.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Failure writes an error body. Only the error handler should call it.
func Failure(c echo.Context, statusCode int, body ErrorResponse) error {
	body.Success = false

	return c.JSON(statusCode, body)
}
