package errors

// ErrorCode classifies an AppError independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Resources
	ErrorCode_MEETING_NOT_FOUND ErrorCode = 2000
	ErrorCode_TEAM_NOT_FOUND    ErrorCode = 2001
	ErrorCode_TEAM_INVALID      ErrorCode = 2002
	ErrorCode_PROFILE_NOT_FOUND ErrorCode = 2003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_TEAM_NOT_FOUND:             "TEAM_NOT_FOUND",
	ErrorCode_TEAM_INVALID:               "TEAM_INVALID",
	ErrorCode_PROFILE_NOT_FOUND:          "PROFILE_NOT_FOUND",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
