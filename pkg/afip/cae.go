package afip

import "strings"

// LargoCAE cantidad de dígitos del Código de Autorización Electrónico.
const LargoCAE = 14

// ValidarCAE verifica que el CAE tenga exactamente 14 dígitos numéricos.
// Un comprobante sin CAE válido no fue autorizado por AFIP y no debe
// registrarse contablemente.
func ValidarCAE(cae string) bool {
	cae = strings.TrimSpace(cae)
	if len(cae) != LargoCAE {
		return false
	}
	for _, r := range cae {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PadPuntoVenta normaliza el punto de venta a 4 dígitos ("1" -> "0001").
func PadPuntoVenta(pv string) string {
	return padIzquierda(strings.TrimSpace(pv), 4)
}

// PadNumero normaliza el número de comprobante a 8 dígitos ("42" -> "00000042").
func PadNumero(n string) string {
	return padIzquierda(strings.TrimSpace(n), 8)
}

func padIzquierda(s string, largo int) string {
	if len(s) >= largo {
		return s
	}
	return strings.Repeat("0", largo-len(s)) + s
}
