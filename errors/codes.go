package errors

// ErrorCode identifies the category of an AppError on the wire.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL              ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT      ErrorCode = 1001
	ErrorCode_NOT_FOUND             ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS        ErrorCode = 1003
	ErrorCode_CONNECTIVITY          ErrorCode = 1004
	ErrorCode_QUERY_FAILED          ErrorCode = 1005
	ErrorCode_UNSUPPORTED_OPERATION ErrorCode = 1006
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:             "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:        "ALREADY_EXISTS",
	ErrorCode_CONNECTIVITY:          "CONNECTIVITY",
	ErrorCode_QUERY_FAILED:          "QUERY_FAILED",
	ErrorCode_UNSUPPORTED_OPERATION: "UNSUPPORTED_OPERATION",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
