package afip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/asientos-afip/pkg/afip"
)

func TestValidarCAE(t *testing.T) {
	casos := []struct {
		nombre string
		cae    string
		valido bool
	}{
		{"catorce dígitos", "71234567890123", true},
		{"con espacios alrededor", " 71234567890123 ", true},
		{"trece dígitos", "7123456789012", false},
		{"quince dígitos", "712345678901234", false},
		{"con letras", "7123456789012A", false},
		{"vacío", "", false},
		{"solo espacios", "   ", false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.valido, afip.ValidarCAE(c.cae))
		})
	}
}

func TestPadPuntoVentaYNumero(t *testing.T) {
	assert.Equal(t, "0001", afip.PadPuntoVenta("1"))
	assert.Equal(t, "0034", afip.PadPuntoVenta(" 34 "))
	assert.Equal(t, "12345", afip.PadPuntoVenta("12345"), "no debe truncar valores más largos")
	assert.Equal(t, "00000042", afip.PadNumero("42"))
	assert.Equal(t, "99999999", afip.PadNumero("99999999"))
}
