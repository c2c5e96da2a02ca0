package dto

import "time"

// ValidateRequest entrada para validar una identificación.
// DocumentType vacío autodetecta; si se envía fuerza las reglas de ese tipo.
type ValidateRequest struct {
	Number       string `json:"number"`
	DocumentType string `json:"document_type,omitempty"` // cedula | ruc_natural | ruc_private | ruc_public
}

// ValidationResponse resultado de validar una identificación.
type ValidationResponse struct {
	Number       string `json:"number"`
	Valid        bool   `json:"valid"`
	DocumentType string `json:"document_type"`
	Error        string `json:"error,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
}

// DetailsResponse resultado de validar y descomponer una identificación.
type DetailsResponse struct {
	ValidationResponse
	ProvinceCode      int    `json:"province_code,omitempty"`
	ProvinceName      string `json:"province_name,omitempty"`
	ThirdDigit        int    `json:"third_digit"`
	EstablishmentCode string `json:"establishment_code,omitempty"`
	Cedula            string `json:"cedula,omitempty"`
}

// BatchRequest entrada para validar (o reportar) varias identificaciones.
type BatchRequest struct {
	Numbers []string `json:"numbers"`
}

// BatchResponse resultado de una validación por lote.
type BatchResponse struct {
	BatchID      string               `json:"batch_id"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Total        int                  `json:"total"`
	ValidCount   int                  `json:"valid_count"`
	InvalidCount int                  `json:"invalid_count"`
	ByType       map[string]int       `json:"by_type"`
	Items        []ValidationResponse `json:"items"`
}
