package afip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/asientos-afip/internal/infrastructure/afip"
	"github.com/tu-usuario/asientos-afip/pkg/logger"
)

func escribirArchivo(t *testing.T, nombre string, contenido []byte) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), nombre)
	require.NoError(t, os.WriteFile(ruta, contenido, 0o644))
	return ruta
}

func lectorTest() *afip.LectorCSV {
	return afip.NewLectorCSV(logger.New(logger.Config{Level: "error"}).Zerolog())
}

func TestLeer_UTF8ConSeparadorPuntoYComa(t *testing.T) {
	ruta := escribirArchivo(t, "export.csv", []byte(
		"Fecha de Emisión;Cód. Autorización;Imp. Total\n"+
			"01/03/2025;71234567890123;1.210,00\n"+
			"02/03/2025;71234567890124;500,00\n"))

	columnas, filas, err := lectorTest().Leer(ruta)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fecha de Emisión", "Cód. Autorización", "Imp. Total"}, columnas)
	require.Len(t, filas, 2)
	assert.Equal(t, "71234567890123", filas[0]["Cód. Autorización"])
	assert.Equal(t, "1.210,00", filas[0]["Imp. Total"])
	assert.Equal(t, "500,00", filas[1]["Imp. Total"])
}

// Los exports descargados con navegadores viejos vienen en Latin-1 /
// Windows-1252: "Cód." lleva un 0xF3 crudo que no es UTF-8 válido.
func TestLeer_Latin1SeDecodifica(t *testing.T) {
	contenido := append([]byte("Fecha de Emisi"), 0xF3)
	contenido = append(contenido, []byte("n;C")...)
	contenido = append(contenido, 0xF3)
	contenido = append(contenido, []byte("d. Autorizaci")...)
	contenido = append(contenido, 0xF3)
	contenido = append(contenido, []byte("n\n01/03/2025;71234567890123\n")...)
	ruta := escribirArchivo(t, "latin1.csv", contenido)

	columnas, filas, err := lectorTest().Leer(ruta)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fecha de Emisión", "Cód. Autorización"}, columnas)
	require.Len(t, filas, 1)
	assert.Equal(t, "71234567890123", filas[0]["Cód. Autorización"])
}

func TestLeer_BOMEnElEncabezado(t *testing.T) {
	ruta := escribirArchivo(t, "bom.csv", []byte(
		"\ufeffFecha de Emisión;Imp. Total\n01/03/2025;100,00\n"))

	columnas, _, err := lectorTest().Leer(ruta)
	require.NoError(t, err)
	assert.Equal(t, "Fecha de Emisión", columnas[0], "el BOM no debe quedar pegado al nombre")
}

func TestLeer_FilasConMenosCamposQueElEncabezado(t *testing.T) {
	ruta := escribirArchivo(t, "corto.csv", []byte(
		"Fecha de Emisión;Cód. Autorización;Imp. Total\n01/03/2025;71234567890123\n"))

	_, filas, err := lectorTest().Leer(ruta)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "71234567890123", filas[0]["Cód. Autorización"])
	assert.NotContains(t, filas[0], "Imp. Total")
}

func TestLeer_ArchivoInexistente(t *testing.T) {
	_, _, err := lectorTest().Leer(filepath.Join(t.TempDir(), "no-existe.csv"))
	assert.Error(t, err)
}

func TestLeer_ArchivoSoloEncabezado(t *testing.T) {
	ruta := escribirArchivo(t, "vacio.csv", []byte("Fecha de Emisión;Imp. Total\n"))

	columnas, filas, err := lectorTest().Leer(ruta)
	require.NoError(t, err)
	assert.Len(t, columnas, 2)
	assert.Empty(t, filas)
}
