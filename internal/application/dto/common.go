package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available se llena solo en INSUFFICIENT_STOCK: cantidad disponible al rechazar.
	Available *int `json:"available,omitempty"`
}
