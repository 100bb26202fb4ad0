package response

const (
	// MessageSuccess is the message body for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real cause must stay internal.
	DefaultErrorMessage = "Something went wrong"

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Error codes carried in Resp.ErrorCode.
const (
	BadRequestErrorCode         = 1
	UnauthorizedErrorCode       = 401
	NotFoundErrorCode           = 404
	TooManyRequestsErrorCode    = 429
	InternalServerErrorCode     = 500
	ServiceUnavailableErrorCode = 503
)
