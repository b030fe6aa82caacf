package votetrackdomain

// ErrorResponse é o corpo de erro retornado pela API
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e ErrorResponse) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
