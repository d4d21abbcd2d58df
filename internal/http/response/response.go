// Package response contains the helper types and functions that shape the
// unified JSON replies of the HTTP handlers. Success replies carry the
// payload under "data" with an optional "message"; error replies carry a
// single string or a list of validation messages under "error".
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response describes the standard success envelope.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the error envelope. Error holds a string for single
// failures and a []string for validation failures; used in @Failure
// annotations as the returned error type.
type ErrorResponse struct {
	Error any `json:"error" swaggertype:"string" example:"invalid request body"`
}

// Data returns a success Response with the given payload.
func Data(data any) Response {
	return Response{Data: data}
}

// DataWithMessage returns a success Response with a payload and a
// human-readable message.
func DataWithMessage(data any, message string) Response {
	return Response{
		Data:    data,
		Message: message,
	}
}

// Error returns an ErrorResponse with a single message.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationError turns validator violations into an ErrorResponse whose
// Error field is a list of per-field human-readable messages.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is below the minimum allowed", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is above the maximum allowed", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of the allowed values", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: errsMsgs}
}
