package response

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func WithMessage(msg string, data any) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

// Counted reports n even when it is zero.
func Counted(msg string, n int, data any) Envelope {
	return Envelope{Success: true, Message: msg, Count: &n, Data: data}
}
