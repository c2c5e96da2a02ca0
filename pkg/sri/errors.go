package sri

import "fmt"

// Mensajes de error. Son contrato estable: integraciones externas los comparan literalmente.
const (
	MsgEmpty               = "Value cannot be empty"
	MsgNonDigit            = "Value can only contain digits"
	MsgLengthFormat        = "Value must have %d characters"
	MsgProvince            = "Province code (first two digits) must be between 01-24 or 30"
	MsgThirdDigitNatural   = "Third digit must be between 0 and 5 for cedula and natural person RUC"
	MsgThirdDigitPrivate   = "Third digit must be 9 for private companies"
	MsgThirdDigitPublic    = "Third digit must be 6 for public companies"
	MsgEstablishment       = "Establishment code cannot be 0"
	MsgCheckDigit          = "Check digit validation failed"
	MsgRucThirdDigit       = "Invalid third digit for RUC. Must be 0-5 (natural), 6 (public), or 9 (private)"
	MsgDocumentLength      = "Invalid document length. Cedula must have 10 digits, RUC must have 13 digits"
	msgUnknownDocumentType = "Unknown document type"
)

// ErrorKind clasifica la falla de forma legible por máquina, junto al mensaje.
type ErrorKind string

const (
	KindNone           ErrorKind = ""
	KindEmpty          ErrorKind = "empty"
	KindNonDigit       ErrorKind = "non_digit"
	KindLength         ErrorKind = "length"
	KindProvince       ErrorKind = "province"
	KindThirdDigit     ErrorKind = "third_digit"
	KindEstablishment  ErrorKind = "establishment"
	KindCheckDigit     ErrorKind = "check_digit"
	KindRucThirdDigit  ErrorKind = "ruc_third_digit"
	KindDocumentLength ErrorKind = "document_length"
	KindUnknownType    ErrorKind = "unknown_type"
)

// ValidationError es la única taxonomía de falla del validador.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newError(kind ErrorKind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg}
}

func lengthError(n int) *ValidationError {
	return newError(KindLength, fmt.Sprintf(MsgLengthFormat, n))
}
