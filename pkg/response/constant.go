package response

import "time"

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode     = 400
	NotFoundErrorCode       = 404
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500

	DateTimeFormat = time.RFC3339
)
