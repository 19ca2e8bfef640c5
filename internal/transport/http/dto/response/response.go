package response

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response обертка успешного ответа, который не возвращает модель напрямую
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse тело любого ответа с ошибкой: машинный код + пояснение
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data any) Response {
	return Response{
		Status: statusSuccess,
		Data:   data,
	}
}

// Fail ошибка с кодом code
func Fail(code, details string) ErrorResponse {
	return ErrorResponse{
		Status:  statusError,
		Error:   code,
		Details: details,
	}
}

// InvalidRequest тело запроса разобрано, но не прошло валидацию
func InvalidRequest(details string) ErrorResponse {
	return Fail("invalid_request", details)
}
