package dto

// SuccessResponse is the standard success envelope for all endpoints.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope around a data payload.
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

// NewMessageResponse builds a success envelope with a message and payload.
func NewMessageResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Message: message, Data: data}
}
