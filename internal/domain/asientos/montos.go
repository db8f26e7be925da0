package asientos

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizarMonto convierte un importe en formato local ambiguo a decimal.
//
// Reglas (mismo criterio que el export de AFIP):
//   - se eliminan símbolo de pesos y espacios
//   - si aparecen "." y "," juntos, "." es separador de miles y "," la coma
//     decimal ("1.234,56" -> 1234.56)
//   - si solo aparece ",", es la coma decimal ("1234,56" -> 1234.56)
//   - vacío o no numérico degrada a 0 sin error; el segundo retorno en false
//     marca el caso no numérico para que el llamador lo cuente y loguee
//
// Es idempotente sobre strings ya normalizados ("1234.56" -> 1234.56).
func NormalizarMonto(valor string) (decimal.Decimal, bool) {
	limpio := strings.Map(func(r rune) rune {
		if r == '$' || r == ' ' || r == '\t' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(valor))

	if limpio == "" {
		return decimal.Zero, true
	}

	if strings.Contains(limpio, ",") {
		if strings.Contains(limpio, ".") {
			limpio = strings.ReplaceAll(limpio, ".", "")
		}
		limpio = strings.ReplaceAll(limpio, ",", ".")
	}

	monto, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero, false
	}
	return monto, true
}
