package asientos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/asientos-afip/internal/domain/asientos"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

var codigosDeduciblesTest = []int{4, 5, 6, 8, 9}

func TestClasificar_TablaDeDecision(t *testing.T) {
	clasificador := asientos.NewClasificadorDeducible(codigosDeduciblesTest)

	casos := []struct {
		nombre     string
		tipo       entity.TipoComprobante
		codTributo int
		deducible  bool
		signo      int
	}{
		{"FC con alícuota deducible", entity.TipoDesdeCodigo("1"), 5, true, 1},
		{"NC con alícuota deducible revierte", entity.TipoDesdeCodigo("11"), 5, true, -1},
		{"FC con alícuota no deducible", entity.TipoDesdeCodigo("1"), 0, false, 1},
		{"NC con alícuota no deducible", entity.TipoDesdeCodigo("11"), 3, false, 1},
		{"ND nunca deduce", entity.TipoDesdeCodigo("2"), 5, false, 1},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			deducible, signo := clasificador.Clasificar(c.tipo, c.codTributo)
			assert.Equal(t, c.deducible, deducible)
			assert.Equal(t, c.signo, signo, "el signo del caso no deducible debe ser +1 neutro")
		})
	}
}

func TestIVADeducible_Derivados(t *testing.T) {
	clasificador := asientos.NewClasificadorDeducible(codigosDeduciblesTest)
	ivaAjustado := decimalRequire(t, "212.57")

	t.Run("FC deducible: todo el IVA es crédito fiscal", func(t *testing.T) {
		deducible, noDeducible := clasificador.IVADeducible(entity.TipoDesdeCodigo("1"), 5, ivaAjustado)
		assert.True(t, deducible.Equal(ivaAjustado))
		assert.True(t, noDeducible.IsZero())
	})

	t.Run("NC deducible: mismo importe con signo invertido", func(t *testing.T) {
		deducible, _ := clasificador.IVADeducible(entity.TipoDesdeCodigo("11"), 5, ivaAjustado)
		assert.True(t, deducible.Equal(ivaAjustado.Neg()))
	})

	t.Run("no deducible: deducible cero y el total queda no deducible", func(t *testing.T) {
		deducible, noDeducible := clasificador.IVADeducible(entity.TipoDesdeCodigo("1"), 0, ivaAjustado)
		assert.True(t, deducible.IsZero())
		assert.True(t, noDeducible.Equal(ivaAjustado))
	})
}

// TestClasificar_ConjuntoInyectado el conjunto deducible viene por
// configuración: con otro conjunto la misma alícuota deja de deducir.
func TestClasificar_ConjuntoInyectado(t *testing.T) {
	soloVeintisiete := asientos.NewClasificadorDeducible([]int{6})

	deducible, _ := soloVeintisiete.Clasificar(entity.TipoDesdeCodigo("1"), 5)
	assert.False(t, deducible)

	deducible, _ = soloVeintisiete.Clasificar(entity.TipoDesdeCodigo("1"), 6)
	assert.True(t, deducible)
}
