// Package sri valida cédulas y RUC ecuatorianos según las reglas de formato y
// dígito verificador del SRI (Servicio de Rentas Internas).
//
// Las funciones del paquete son puras y seguras para uso concurrente; el tipo
// Validator mantiene el último resultado para quien prefiera getters.
package sri

// DocumentType identifica el tipo de documento detectado o forzado.
type DocumentType string

const (
	DocumentTypeNone              DocumentType = ""
	DocumentTypeCedula            DocumentType = "cedula"
	DocumentTypeRucNatural        DocumentType = "ruc_natural"
	DocumentTypeRucPrivateCompany DocumentType = "ruc_private"
	DocumentTypeRucPublicCompany  DocumentType = "ruc_public"
)

// Longitudes fijas de los documentos.
const (
	CedulaLength = 10
	RucLength    = 13
)

// String devuelve el identificador textual ("cedula", "ruc_natural", ...).
func (t DocumentType) String() string { return string(t) }

// IsRuc indica si el tipo corresponde a alguna variante de RUC.
func (t DocumentType) IsRuc() bool {
	switch t {
	case DocumentTypeRucNatural, DocumentTypeRucPrivateCompany, DocumentTypeRucPublicCompany:
		return true
	}
	return false
}

// ParseDocumentType convierte el texto a DocumentType. Devuelve false si no existe.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocumentTypeCedula, DocumentTypeRucNatural, DocumentTypeRucPrivateCompany, DocumentTypeRucPublicCompany:
		return DocumentType(s), true
	}
	return DocumentTypeNone, false
}

// layout describe dónde está cada campo del documento y qué checksum aplica.
type layout struct {
	length int
	// allowsForeignSkip: provincia 30 omite la validación del tercer dígito.
	allowsForeignSkip bool
	thirdDigit        func(d int) bool
	thirdDigitMsg     string
	// estabFrom/estabTo delimitan el código de establecimiento; estabTo == 0 si no aplica.
	estabFrom, estabTo int
	checkIndex         int
	scheme             checksumScheme
}

var layouts = map[DocumentType]layout{
	DocumentTypeCedula: {
		length:            CedulaLength,
		allowsForeignSkip: true,
		thirdDigit:        naturalThirdDigit,
		thirdDigitMsg:     MsgThirdDigitNatural,
		checkIndex:        9,
		scheme:            modulo10,
	},
	DocumentTypeRucNatural: {
		length:            RucLength,
		allowsForeignSkip: true,
		thirdDigit:        naturalThirdDigit,
		thirdDigitMsg:     MsgThirdDigitNatural,
		estabFrom:         10,
		estabTo:           13,
		checkIndex:        9,
		scheme:            modulo10,
	},
	DocumentTypeRucPrivateCompany: {
		length:        RucLength,
		thirdDigit:    func(d int) bool { return d == 9 },
		thirdDigitMsg: MsgThirdDigitPrivate,
		estabFrom:     10,
		estabTo:       13,
		checkIndex:    9,
		scheme:        modulo11Private,
	},
	DocumentTypeRucPublicCompany: {
		length:        RucLength,
		thirdDigit:    func(d int) bool { return d == 6 },
		thirdDigitMsg: MsgThirdDigitPublic,
		estabFrom:     9,
		estabTo:       13,
		checkIndex:    8,
		scheme:        modulo11Public,
	},
}

func naturalThirdDigit(d int) bool { return d >= 0 && d <= 5 }

// detectRucType clasifica un RUC de 13 dígitos por su tercer dígito.
func detectRucType(thirdDigit int) (DocumentType, bool) {
	switch {
	case naturalThirdDigit(thirdDigit):
		return DocumentTypeRucNatural, true
	case thirdDigit == 6:
		return DocumentTypeRucPublicCompany, true
	case thirdDigit == 9:
		return DocumentTypeRucPrivateCompany, true
	}
	return DocumentTypeNone, false
}
