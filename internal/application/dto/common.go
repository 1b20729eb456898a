package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (ej. cambio de contraseña).
type MessageResponse struct {
	Msg string `json:"msg"`
}
