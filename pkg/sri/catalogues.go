package sri

// =============================================================================
// Provincias (dos primeros dígitos de la cédula / RUC), Registro Civil del Ecuador.
// 30 se asigna a ecuatorianos registrados en el exterior.
// =============================================================================

var provinceNames = map[int]string{
	1:  "Azuay",
	2:  "Bolívar",
	3:  "Cañar",
	4:  "Carchi",
	5:  "Cotopaxi",
	6:  "Chimborazo",
	7:  "El Oro",
	8:  "Esmeraldas",
	9:  "Guayas",
	10: "Imbabura",
	11: "Loja",
	12: "Los Ríos",
	13: "Manabí",
	14: "Morona Santiago",
	15: "Napo",
	16: "Pastaza",
	17: "Pichincha",
	18: "Tungurahua",
	19: "Zamora Chinchipe",
	20: "Galápagos",
	21: "Sucumbíos",
	22: "Orellana",
	23: "Santo Domingo de los Tsáchilas",
	24: "Santa Elena",
	30: "Ecuatorianos registrados en el exterior",
}

// ProvinceName devuelve el nombre de la provincia para un código válido.
func ProvinceName(code int) (string, bool) {
	name, ok := provinceNames[code]
	return name, ok
}

// =============================================================================
// Tabla 6 - Tipo de identificación del comprador (Ficha técnica de comprobantes
// electrónicos SRI).
// =============================================================================

const (
	IdentificationTypeRUC           = "04" // RUC
	IdentificationTypeCedula        = "05" // Cédula
	IdentificationTypePassport      = "06" // Pasaporte
	IdentificationTypeFinalConsumer = "07" // Venta a consumidor final
	IdentificationTypeForeign       = "08" // Identificación del exterior

	// FinalConsumerIdentification identificación fija para ventas a consumidor final.
	FinalConsumerIdentification = "9999999999999"
)

// ValidIdentificationTypeCodes códigos de tipo de identificación aceptados por el SRI.
var ValidIdentificationTypeCodes = map[string]bool{
	IdentificationTypeRUC:           true,
	IdentificationTypeCedula:        true,
	IdentificationTypePassport:      true,
	IdentificationTypeFinalConsumer: true,
	IdentificationTypeForeign:       true,
}

// =============================================================================
// Tabla 3 - Tipos de comprobante (codDoc).
// =============================================================================

const (
	VoucherTypeInvoice     = "01" // Factura
	VoucherTypeCreditNote  = "04" // Nota de crédito
	VoucherTypeDebitNote   = "05" // Nota de débito
	VoucherTypeWaybill     = "06" // Guía de remisión
	VoucherTypeWithholding = "07" // Comprobante de retención
)
