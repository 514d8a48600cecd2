package models

// Response is the uniform envelope wrapping every API response.
//
// Invariant: Success == true implies Error is empty; Success == false
// implies Data is nil. Message is optional in both cases.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a success envelope carrying data and an optional message.
func OK(data any, message string) Response {
	return Response{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Fail builds a failure envelope carrying an error string and an optional
// human-readable message.
func Fail(errText, message string) Response {
	return Response{
		Success: false,
		Error:   errText,
		Message: message,
	}
}

// LoginResponse is the data section of a successful login envelope.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
