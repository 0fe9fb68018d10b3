package dto

// PageRequest paginación para listados (base 1).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// PageMeta metadatos de página en respuestas paginadas.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP. Fields sólo viene en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple (p.ej. DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}
