package entity

import "github.com/shopspring/decimal"

// Elementos raíz de los comprobantes electrónicos SRI soportados.
const (
	VoucherRootInvoice     = "factura"
	VoucherRootCreditNote  = "notaCredito"
	VoucherRootDebitNote   = "notaDebito"
	VoucherRootWithholding = "comprobanteRetencion"
)

// Voucher datos de un comprobante electrónico relevantes para validar sus identificaciones.
type Voucher struct {
	Root          string // elemento raíz del XML
	Version       string // atributo version
	Environment   string // 1 = pruebas, 2 = producción
	EmissionType  string
	IssuerName    string // razonSocial
	TradeName     string // nombreComercial
	IssuerRuc     string
	AccessKey     string // claveAcceso (49 dígitos)
	VoucherType   string // codDoc
	Establishment string // estab
	EmissionPoint string // ptoEmi
	Sequential    string // secuencial
	IssueDate     string // fechaEmision dd/mm/aaaa
	BuyerIDType   string // tipoIdentificacionComprador / SujetoRetenido
	BuyerID       string
	BuyerName     string
	Subtotal      decimal.Decimal // totalSinImpuestos
	Total         decimal.Decimal // importeTotal o valorTotal
}

// Number devuelve el número visible del comprobante: estab-ptoEmi-secuencial.
func (v *Voucher) Number() string {
	return v.Establishment + "-" + v.EmissionPoint + "-" + v.Sequential
}
