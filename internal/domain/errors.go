package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidIdentification = errors.New("identificación inválida")
	ErrInvalidVoucher        = errors.New("comprobante electrónico inválido")
	ErrUnsupportedDocument   = errors.New("tipo de documento no soportado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
)
