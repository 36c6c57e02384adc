package api

import "github.com/donatelife/donatelife-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1001: "authorization required",
		1003: "invalid token",
		1004: "forbidden",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid id",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrInvalidTransition.Error(),
		1202: store.ErrConflictingTransition.Error(),
		1203: store.ErrNotAllowed.Error(),

		1300: store.ErrBlogNotFound.Error(),

		1400: "payment gateway error",
	}

	errorInternalServer = errorJSON(999)

	errorAuthorizationRequired = errorJSON(1001)
	errorInvalidToken          = errorJSON(1003)
	errorForbidden             = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidID          = errorJSON(1012)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound       = errorJSON(1200)
	errorInvalidTransition     = errorJSON(1201)
	errorConflictingTransition = errorJSON(1202)
	errorNotAllowed            = errorJSON(1203)

	errorBlogNotFound = errorJSON(1300)

	errorPaymentGateway = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
