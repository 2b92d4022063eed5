package httpdto

// ErrorResponse is the generic error payload for non-validation failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// NonFieldErrors is the payload for request-level rejections that must not
// point at a specific field, such as failed logins.
func NonFieldErrors(messages ...string) map[string][]string {
	return map[string][]string{"non_field_errors": messages}
}
