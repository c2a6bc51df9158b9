package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope every API endpoint replies with.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ListMeta describes a list response.
type ListMeta struct {
	Count int `json:"count"`
	Limit int `json:"limit"`
}

func send(c *fiber.Ctx, resp StandardResponse) error {
	return c.Status(resp.Code).JSON(resp)
}

// SuccessResponse sends a success envelope carrying data.
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return send(c, StandardResponse{Status: "success", Code: code, Message: message, Data: data})
}

// SuccessWithMetaResponse sends a success envelope carrying data and meta.
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return send(c, StandardResponse{Status: "success", Code: code, Message: message, Data: data, Meta: meta})
}

// ErrorResponse sends an error envelope. Server-side failures report status
// "fail", client errors report "error".
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	status := "error"
	if code >= fiber.StatusInternalServerError {
		status = "fail"
	}
	return send(c, StandardResponse{Status: status, Code: code, Message: message})
}
