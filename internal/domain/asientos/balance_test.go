package asientos_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/asientos-afip/internal/domain"
	"github.com/tu-usuario/asientos-afip/internal/domain/asientos"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

func libroConDelta(t *testing.T, debe, haber string) *entity.Libro {
	t.Helper()
	libro := entity.NuevoLibro(entity.LibroHistorico)
	libro.Agregar(
		entity.Linea{Cuenta: "5.1.01", Debe: decimalRequire(t, debe), Haber: decimal.Zero},
		entity.Linea{Cuenta: "2.1.01", Debe: decimal.Zero, Haber: decimalRequire(t, haber)},
	)
	return libro
}

func TestValidarLibro_CuadradoOK(t *testing.T) {
	assert.NoError(t, asientos.ValidarLibro(libroConDelta(t, "1210.00", "1210.00")))
}

// TestValidarLibro_DentroDeLaBanda la tolerancia agregada absorbe redondeos
// de hasta un peso (exclusivo).
func TestValidarLibro_DentroDeLaBanda(t *testing.T) {
	assert.NoError(t, asientos.ValidarLibro(libroConDelta(t, "1210.99", "1210.00")))
	assert.NoError(t, asientos.ValidarLibro(libroConDelta(t, "1210.00", "1210.99")))
}

func TestValidarLibro_DescuadreSeñalado(t *testing.T) {
	err := asientos.ValidarLibro(libroConDelta(t, "1211.00", "1210.00"))
	require.Error(t, err)

	var imbalance *domain.ImbalanceError
	require.True(t, errors.As(err, &imbalance), "debe ser un ImbalanceError tipado")
	assert.Equal(t, entity.LibroHistorico, imbalance.Libro, "el error identifica el libro")
	assert.Equal(t, "1.00", imbalance.Delta.StringFixed(2), "el error lleva la diferencia exacta")
}

func TestValidarLibro_DescuadreNegativo(t *testing.T) {
	err := asientos.ValidarLibro(libroConDelta(t, "1210.00", "1215.50"))
	require.Error(t, err)

	var imbalance *domain.ImbalanceError
	require.True(t, errors.As(err, &imbalance))
	assert.Equal(t, "-5.50", imbalance.Delta.StringFixed(2))
}

func TestCuadraPartida_ExactaSinTolerancia(t *testing.T) {
	assert.True(t, asientos.CuadraPartida(libroConDelta(t, "100.00", "100.00").Lineas))
	assert.False(t, asientos.CuadraPartida(libroConDelta(t, "100.01", "100.00").Lineas),
		"el balance local no admite ni un centavo de diferencia")
}

func TestValidarLibro_VacioCuadra(t *testing.T) {
	assert.NoError(t, asientos.ValidarLibro(entity.NuevoLibro(entity.LibroAjuste)),
		"un libro sin líneas cuadra trivialmente")
}
