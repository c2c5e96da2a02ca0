package sri

import "fmt"

// Coeficientes del SRI, aplicados de izquierda a derecha sobre los dígitos base.
var (
	// Cédula y RUC de persona natural (módulo 10).
	coefficientsModulo10 = []int{2, 1, 2, 1, 2, 1, 2, 1, 2}
	// RUC de sociedad privada (módulo 11, 9 dígitos).
	coefficientsPrivate = []int{4, 3, 2, 7, 6, 5, 4, 3, 2}
	// RUC de sociedad pública (módulo 11, 8 dígitos).
	coefficientsPublic = []int{3, 2, 7, 6, 5, 4, 3, 2}
)

// checksumScheme parametriza la suma ponderada posicional.
type checksumScheme struct {
	coefficients []int
	modulus      int
	// reduce: si el producto es >= 10 se reemplaza por la suma de sus dígitos (solo módulo 10).
	reduce bool
}

var (
	modulo10        = checksumScheme{coefficients: coefficientsModulo10, modulus: 10, reduce: true}
	modulo11Private = checksumScheme{coefficients: coefficientsPrivate, modulus: 11}
	modulo11Public  = checksumScheme{coefficients: coefficientsPublic, modulus: 11}
)

// expected calcula el dígito verificador para base (solo dígitos ASCII, len == len(coefficients)).
// Con módulo 11 puede devolver 10, valor que nunca coincide con un dígito.
func (s checksumScheme) expected(base string) int {
	var sum int
	for i := 0; i < len(base); i++ {
		p := int(base[i]-'0') * s.coefficients[i]
		if s.reduce && p >= 10 {
			p = p/10 + p%10
		}
		sum += p
	}
	r := sum % s.modulus
	if r == 0 {
		return 0
	}
	return s.modulus - r
}

// verify compara el dígito esperado contra el carácter en checkIndex.
func (s checksumScheme) verify(number string, checkIndex int) bool {
	base := number[:len(s.coefficients)]
	return s.expected(base) == int(number[checkIndex]-'0')
}

// ComputeCheckDigit calcula el dígito verificador para los dígitos base del tipo indicado:
// 9 dígitos para cédula, RUC natural y RUC privado; 8 para RUC público.
// Devuelve error si la base no es válida o si el módulo 11 no admite dígito (residuo 1).
func ComputeCheckDigit(t DocumentType, base string) (int, error) {
	l, ok := layouts[t]
	if !ok {
		return 0, fmt.Errorf("sri: tipo de documento desconocido %q", t)
	}
	if len(base) != len(l.scheme.coefficients) {
		return 0, fmt.Errorf("sri: se requieren %d dígitos base, se recibieron %d", len(l.scheme.coefficients), len(base))
	}
	if !isDigits(base) {
		return 0, fmt.Errorf("sri: la base solo puede contener dígitos")
	}
	d := l.scheme.expected(base)
	if d > 9 {
		return 0, fmt.Errorf("sri: la base %s no admite dígito verificador (módulo %d)", base, l.scheme.modulus)
	}
	return d, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
