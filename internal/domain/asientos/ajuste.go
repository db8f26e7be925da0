package asientos

import (
	"github.com/shopspring/decimal"
)

// AjustadorRT54 reexpresa importes históricos por inflación según RT 54:
// interés compuesto sobre el coeficiente mensual IPC durante el retraso de
// reconocimiento. El coeficiente se inyecta por configuración.
type AjustadorRT54 struct {
	coefMensual decimal.Decimal
}

// NewAjustadorRT54 crea el ajustador con el coeficiente mensual inyectado
// (ej. 0.00407 ≈ 5 % anual).
func NewAjustadorRT54(coefMensual decimal.Decimal) *AjustadorRT54 {
	return &AjustadorRT54{coefMensual: coefMensual}
}

// Ajustar aplica monto × (1 + coef)^meses redondeado a centavos.
// Es una función total: cero ajusta a cero exacto y el signo se preserva
// (una NC negativa ajustada sigue negativa). Con meses = 0 devuelve el monto
// sin cambios.
func (a *AjustadorRT54) Ajustar(monto decimal.Decimal, meses int) decimal.Decimal {
	if monto.IsZero() {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(1).Add(a.coefMensual).Pow(decimal.NewFromInt(int64(meses)))
	return monto.Mul(factor).Round(2)
}
