package types

type ApiErrorType string

const (
	// ApiErrorTypeNetwork means the transport could not complete the request.
	ApiErrorTypeNetwork ApiErrorType = "network"

	// ApiErrorTypeUnauthorized means the token is missing, expired or
	// invalid. Callers treat this as "session ended" and force a new
	// sign in.
	ApiErrorTypeUnauthorized ApiErrorType = "unauthorized"

	// ApiErrorTypeDomain means the server replied with a transport-level
	// success but a false business flag, or rejected validation.
	ApiErrorTypeDomain ApiErrorType = "domain"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}
