package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrDuplicateCode
	ErrInvalidQuantity
	ErrInvalidOperation
	ErrInsufficientStock
	ErrSameBranch
	ErrValidation
	ErrConflict
	ErrTimeout
	ErrInUse
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrCredentialExists:  "email or phone already exists",
	ErrInvalidPassword:   "password invalid",
	ErrDuplicateCode:     "code already exists",
	ErrInvalidQuantity:   "quantity must be a non-negative number",
	ErrInvalidOperation:  "invalid stock operation",
	ErrInsufficientStock: "insufficient stock",
	ErrSameBranch:        "source and destination branch must differ",
	ErrValidation:        "validation error",
	ErrConflict:          "concurrent update conflict, please retry",
	ErrTimeout:           "operation timed out, please retry",
	ErrInUse:             "record still has inventory or transfer history",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrCredentialExists:  http.StatusBadRequest,
	ErrInvalidPassword:   http.StatusBadRequest,
	ErrDuplicateCode:     http.StatusBadRequest,
	ErrInvalidQuantity:   http.StatusBadRequest,
	ErrInvalidOperation:  http.StatusBadRequest,
	ErrInsufficientStock: http.StatusBadRequest,
	ErrSameBranch:        http.StatusBadRequest,
	ErrValidation:        http.StatusBadRequest,
	ErrConflict:          http.StatusConflict,
	ErrTimeout:           http.StatusGatewayTimeout,
	ErrInUse:             http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrCredentialExists:  "0005",
	ErrInvalidPassword:   "0006",
	ErrDuplicateCode:     "0007",
	ErrInvalidQuantity:   "0008",
	ErrInvalidOperation:  "0009",
	ErrInsufficientStock: "0010",
	ErrSameBranch:        "0011",
	ErrValidation:        "0012",
	ErrConflict:          "0013",
	ErrTimeout:           "0014",
	ErrInUse:             "0015",
}
