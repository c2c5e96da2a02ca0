package ports

import (
	"context"

	"github.com/jhoicas/validador-ec/internal/domain/entity"
)

// VoucherParser define el puerto de entrada de comprobantes electrónicos en XML.
// El adaptador decide cómo leer el documento (etree, encoding/xml, etc.); la
// aplicación solo recibe la entidad con los campos a validar.
type VoucherParser interface {
	// Parse lee el XML del comprobante. Devuelve error si el documento no es XML
	// legible o su elemento raíz no es un comprobante soportado.
	Parse(ctx context.Context, data []byte) (*entity.Voucher, error)
}
