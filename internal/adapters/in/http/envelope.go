package http

import (
	"time"

	"github.com/labstack/echo/v4"
)

// apiResponse is the success envelope every endpoint wraps its payload in.
type apiResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// apiErrorResponse is the failure envelope.
type apiErrorResponse struct {
	Success bool         `json:"success"`
	Error   errorDetails `json:"error"`
}

type errorDetails struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

func successResponse(ctx echo.Context, status int, data any, message string) error {
	return ctx.JSON(status, apiResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      ctx.Request().RequestURI,
	})
}

func errorResponse(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, apiErrorResponse{
		Success: false,
		Error: errorDetails{
			Code:      code,
			Message:   message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      ctx.Request().RequestURI,
		},
	})
}
