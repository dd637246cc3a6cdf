package common

type SuccessResponse struct {
	Data interface{} `json:"data"`
	// Warning carries non-fatal failures, e.g. a notification that could
	// not be delivered while the primary mutation was persisted.
	Warning string `json:"warning,omitempty"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

func NewWarningResponse(data interface{}, warning string) *SuccessResponse {
	return &SuccessResponse{
		Data:    data,
		Warning: warning,
	}
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}
