package sri

import "fmt"

// AccessKeyLength longitud de la clave de acceso de un comprobante electrónico.
const AccessKeyLength = 49

// AccessKey campos de la clave de acceso (Ficha técnica SRI, esquema offline):
//
//	fecha(8) + codDoc(2) + ruc(13) + ambiente(1) + serie(6) + secuencial(9) +
//	código numérico(8) + tipo de emisión(1) + dígito verificador(1)
type AccessKey struct {
	Date         string // ddmmaaaa
	VoucherType  string
	Ruc          string
	Environment  string // 1 = pruebas, 2 = producción
	Series       string // establecimiento(3) + punto de emisión(3)
	Sequential   string
	NumericCode  string
	EmissionType string
	CheckDigit   int
}

// ParseAccessKey descompone la clave y verifica su dígito verificador (módulo 11,
// pesos 2..7 cíclicos desde la derecha; 11 se convierte en 0 y 10 en 1).
func ParseAccessKey(key string) (*AccessKey, error) {
	if len(key) != AccessKeyLength {
		return nil, fmt.Errorf("sri: la clave de acceso debe tener %d dígitos, se recibieron %d", AccessKeyLength, len(key))
	}
	if !isDigits(key) {
		return nil, fmt.Errorf("sri: la clave de acceso solo puede contener dígitos")
	}
	expected := AccessKeyCheckDigit(key[:AccessKeyLength-1])
	actual := int(key[AccessKeyLength-1] - '0')
	if expected != actual {
		return nil, fmt.Errorf("sri: dígito verificador de la clave de acceso inválido: esperado %d, recibido %d", expected, actual)
	}
	return &AccessKey{
		Date:         key[0:8],
		VoucherType:  key[8:10],
		Ruc:          key[10:23],
		Environment:  key[23:24],
		Series:       key[24:30],
		Sequential:   key[30:39],
		NumericCode:  key[39:47],
		EmissionType: key[47:48],
		CheckDigit:   actual,
	}, nil
}

// AccessKeyCheckDigit calcula el dígito verificador de los 48 primeros dígitos.
func AccessKeyCheckDigit(base string) int {
	var sum int
	weight := 2
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	d := 11 - sum%11
	switch d {
	case 11:
		return 0
	case 10:
		return 1
	}
	return d
}
