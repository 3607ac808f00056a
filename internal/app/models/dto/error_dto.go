package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeUnauthorized ErrorCode = "AUTH_008"
	ErrorCodeForbidden    ErrorCode = "FORBIDDEN"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Request errors
	ErrorCodeTooManyRequests ErrorCode = "REQ_429"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// Fixed response messages
const (
	MsgAccessDenied     = "Access Denied ლ(ಠ_ಠლ)"
	MsgOwnCoursesOnly   = `Sorry. You can only make changes to your own courses ¯\_(ツ)_/¯`
	MsgUserNotFound     = "User not found (╯°□°)╯︵ ┻━┻"
	MsgCourseNotFound   = "Course not found"
	MsgRouteNotFound    = "Route Not Found"
	MsgInternalError    = "Internal server error"
	MsgTooManyRequests  = "Too many requests"
	MsgMalformedPayload = "Request body must be valid JSON"
)

// MessageResponse is the body of every non-validation error
type MessageResponse struct {
	Message string    `json:"message" example:"Access Denied"`
	Code    ErrorCode `json:"code,omitempty" example:"AUTH_008"`
}

// ValidationErrorResponse lists every violated rule
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"Please provide a title"`
}

// NewMessageResponse creates a message body
func NewMessageResponse(code ErrorCode, message string) *MessageResponse {
	return &MessageResponse{Message: message, Code: code}
}

// NewValidationErrorResponse creates a validation body, never with a null list
func NewValidationErrorResponse(messages []string) *ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return &ValidationErrorResponse{Errors: messages}
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
