package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func SuccessResponse[T any](message string, data T) *Response[T] {
	return &Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) *ErrorBody {
	return &ErrorBody{
		Success: false,
		Error:   message,
	}
}

// SourcedResponse is a SuccessResponse tagged with the backend that served it.
type SourcedResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Source  string `json:"source"`
}

func SuccessSourcedResponse[T any](message, source string, data T) *SourcedResponse[T] {
	return &SourcedResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Source:  source,
	}
}
