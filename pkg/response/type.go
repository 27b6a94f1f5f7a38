package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
	ForbiddenCode           = 403
)
