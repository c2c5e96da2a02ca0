package sri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validador-ec/pkg/sri"
)

// Clave de acceso de prueba:
//
//	01012024 | 01 | 0992397535001 | 1 | 001001 | 000000123 | 12345678 | 1 | 7
const testAccessKey = "0101202401099239753500110010010000001231234567817"

func TestParseAccessKey_Campos(t *testing.T) {
	k, err := sri.ParseAccessKey(testAccessKey)
	require.NoError(t, err)
	assert.Equal(t, "01012024", k.Date)
	assert.Equal(t, sri.VoucherTypeInvoice, k.VoucherType)
	assert.Equal(t, rucPrivadoValido, k.Ruc)
	assert.Equal(t, "1", k.Environment)
	assert.Equal(t, "001001", k.Series)
	assert.Equal(t, "000000123", k.Sequential)
	assert.Equal(t, "12345678", k.NumericCode)
	assert.Equal(t, "1", k.EmissionType)
	assert.Equal(t, 7, k.CheckDigit)
}

func TestAccessKeyCheckDigit_Vectores(t *testing.T) {
	cases := map[string]int{
		"010120240109923975350011001001000000123123456781": 7,
		"150320250417600015500012001002000000456876543211": 6,
		"200620240106029109450012002001000000001000000011": 0,
	}
	for base, expected := range cases {
		assert.Equal(t, expected, sri.AccessKeyCheckDigit(base), base)
	}
}

func TestParseAccessKey_Errores(t *testing.T) {
	_, err := sri.ParseAccessKey(testAccessKey[:48])
	assert.Error(t, err, "longitud incorrecta")

	_, err = sri.ParseAccessKey("A" + testAccessKey[1:])
	assert.Error(t, err, "caracteres no numéricos")

	_, err = sri.ParseAccessKey(testAccessKey[:48] + "8")
	assert.Error(t, err, "dígito verificador incorrecto")
}
