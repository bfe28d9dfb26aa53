package dto

// ErrorResponse cuerpo de error HTTP. Error es el mensaje visible para el cliente;
// Code es opcional y sirve para distinguir casos sin parsear el texto.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
