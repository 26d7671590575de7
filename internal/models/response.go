package models

// Response, hata gövdeleri ve veri taşımayan onaylar için ortak zarf.
// Veri taşıyan yanıtların kendi tipleri var (CreateEventResponse vb.).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
