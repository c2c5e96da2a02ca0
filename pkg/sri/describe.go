package sri

import (
	"strconv"
	"strings"
)

// Details descompone un documento en sus campos, además del resultado de validación.
type Details struct {
	Result
	Number            string
	ProvinceCode      int
	ProvinceName      string
	ThirdDigit        int
	EstablishmentCode string
	// Cedula es la cédula raíz de un RUC de persona natural válido.
	Cedula string
}

// Describe valida con autodetección y, si el formato lo permite, extrae provincia,
// tercer dígito, establecimiento y cédula raíz. Los campos que no se pudieron
// determinar quedan en su valor cero.
func Describe(number string) Details {
	number = strings.TrimSpace(number)
	d := Details{Result: Validate(number), Number: number}
	if len(number) < 3 || !isDigits(number) {
		return d
	}
	if p, err := strconv.Atoi(number[:2]); err == nil && IsValidProvinceCode(p) {
		d.ProvinceCode = p
		d.ProvinceName, _ = ProvinceName(p)
	}
	d.ThirdDigit = int(number[2] - '0')
	if l, ok := layouts[d.DocumentType]; ok && l.estabTo > 0 && len(number) == l.length {
		d.EstablishmentCode = number[l.estabFrom:l.estabTo]
	}
	if d.DocumentType == DocumentTypeRucNatural {
		d.Cedula, _ = ExtractCedulaFromRuc(number)
	}
	return d
}

// ExtractCedulaFromRuc devuelve los 10 primeros dígitos de un RUC de persona natural
// cuando forman una cédula válida. Para RUC de sociedades, longitudes distintas de 13,
// caracteres no numéricos o cédula raíz inválida devuelve "", false.
func ExtractCedulaFromRuc(ruc string) (string, bool) {
	if len(ruc) != RucLength || !isDigits(ruc) {
		return "", false
	}
	if t, ok := detectRucType(int(ruc[2] - '0')); !ok || t != DocumentTypeRucNatural {
		return "", false
	}
	cedula := ruc[:CedulaLength]
	if !ValidateCedula(cedula).Valid {
		return "", false
	}
	return cedula, true
}
