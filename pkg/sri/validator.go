package sri

import (
	"errors"
	"strconv"
	"strings"
)

// Código de provincia reservado para ecuatorianos registrados en el exterior.
const ForeignProvinceCode = 30

// Result es el resultado de una validación. DocumentType se completa en cuanto el
// tipo se conoce, incluso si la validación falla después.
type Result struct {
	Valid        bool
	Error        string
	Kind         ErrorKind
	DocumentType DocumentType
}

// Err devuelve la falla como *ValidationError, o nil si el documento es válido.
func (r Result) Err() error {
	if r.Valid || r.Kind == KindNone {
		return nil
	}
	return &ValidationError{Kind: r.Kind, Message: r.Error}
}

func failure(err error, t DocumentType) Result {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		ve = newError(KindNone, err.Error())
	}
	return Result{Error: ve.Message, Kind: ve.Kind, DocumentType: t}
}

// Validate detecta el tipo de documento por longitud y tercer dígito, y aplica sus reglas.
// Es el único punto de entrada que recorta espacios.
func Validate(number string) Result {
	number = strings.TrimSpace(number)
	if number == "" {
		return failure(newError(KindEmpty, MsgEmpty), DocumentTypeNone)
	}
	if !isDigits(number) {
		return failure(newError(KindNonDigit, MsgNonDigit), DocumentTypeNone)
	}

	t, err := detect(number)
	if err != nil {
		return failure(err, DocumentTypeNone)
	}
	res := ValidateAs(t, number)
	res.DocumentType = t
	return res
}

func detect(number string) (DocumentType, error) {
	switch len(number) {
	case CedulaLength:
		return DocumentTypeCedula, nil
	case RucLength:
		if t, ok := detectRucType(int(number[2] - '0')); ok {
			return t, nil
		}
		return DocumentTypeNone, newError(KindRucThirdDigit, MsgRucThirdDigit)
	default:
		return DocumentTypeNone, newError(KindDocumentLength, MsgDocumentLength)
	}
}

// ValidateCedula aplica las reglas de cédula sin importar la longitud.
func ValidateCedula(number string) Result { return ValidateAs(DocumentTypeCedula, number) }

// ValidateNaturalPersonRuc aplica las reglas de RUC de persona natural.
func ValidateNaturalPersonRuc(number string) Result {
	return ValidateAs(DocumentTypeRucNatural, number)
}

// ValidatePrivateCompanyRuc aplica las reglas de RUC de sociedad privada.
func ValidatePrivateCompanyRuc(number string) Result {
	return ValidateAs(DocumentTypeRucPrivateCompany, number)
}

// ValidatePublicCompanyRuc aplica las reglas de RUC de sociedad pública.
func ValidatePublicCompanyRuc(number string) Result {
	return ValidateAs(DocumentTypeRucPublicCompany, number)
}

// ValidateAs fuerza las reglas de t. El resultado no lleva DocumentType: el tipo
// solo se informa cuando lo detecta Validate.
func ValidateAs(t DocumentType, number string) Result {
	l, ok := layouts[t]
	if !ok {
		return failure(newError(KindUnknownType, msgUnknownDocumentType), DocumentTypeNone)
	}
	if err := l.check(number); err != nil {
		return failure(err, DocumentTypeNone)
	}
	return Result{Valid: true}
}

// check recorre los guardas en orden y se detiene en el primero que falla.
func (l layout) check(number string) error {
	if err := checkFormat(number, l.length); err != nil {
		return err
	}
	province, err := checkProvince(number[:2])
	if err != nil {
		return err
	}
	if !(l.allowsForeignSkip && province == ForeignProvinceCode) {
		if !l.thirdDigit(int(number[2] - '0')) {
			return newError(KindThirdDigit, l.thirdDigitMsg)
		}
	}
	if l.estabTo > 0 {
		if err := checkEstablishment(number[l.estabFrom:l.estabTo]); err != nil {
			return err
		}
	}
	if !l.scheme.verify(number, l.checkIndex) {
		return newError(KindCheckDigit, MsgCheckDigit)
	}
	return nil
}

func checkFormat(number string, length int) error {
	if number == "" {
		return newError(KindEmpty, MsgEmpty)
	}
	if !isDigits(number) {
		return newError(KindNonDigit, MsgNonDigit)
	}
	if len(number) != length {
		return lengthError(length)
	}
	return nil
}

// checkProvince acepta 01-24 y 30. Devuelve el código numérico.
func checkProvince(code string) (int, error) {
	n, err := strconv.Atoi(code)
	if err != nil || !IsValidProvinceCode(n) {
		return 0, newError(KindProvince, MsgProvince)
	}
	return n, nil
}

func checkEstablishment(code string) error {
	n, err := strconv.Atoi(code)
	if err != nil || n < 1 {
		return newError(KindEstablishment, MsgEstablishment)
	}
	return nil
}

// IsValidProvinceCode indica si el código está en 1-24 o es 30.
func IsValidProvinceCode(code int) bool {
	return (code >= 1 && code <= 24) || code == ForeignProvinceCode
}

// IsValid valida con autodetección y devuelve solo el booleano.
func IsValid(number string) bool { return Validate(number).Valid }

// IsValidCedula atajo de ValidateCedula.
func IsValidCedula(number string) bool { return ValidateCedula(number).Valid }

// IsValidNaturalPersonRuc atajo de ValidateNaturalPersonRuc.
func IsValidNaturalPersonRuc(number string) bool { return ValidateNaturalPersonRuc(number).Valid }

// IsValidPrivateCompanyRuc atajo de ValidatePrivateCompanyRuc.
func IsValidPrivateCompanyRuc(number string) bool { return ValidatePrivateCompanyRuc(number).Valid }

// IsValidPublicCompanyRuc atajo de ValidatePublicCompanyRuc.
func IsValidPublicCompanyRuc(number string) bool { return ValidatePublicCompanyRuc(number).Valid }
