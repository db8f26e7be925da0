package asientos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

func decimalRequire(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func fechaTest(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
}

// planCuentasTest plan de cuentas usado por todos los tests del generador.
func planCuentasTest() entity.PlanCuentas {
	return entity.PlanCuentas{
		Proveedores:      "2.1.01",
		IVACreditoFiscal: "1.1.04",
		Compras:          "5.1.01",
		AjusteRT54:       "6.1.01",
	}
}
