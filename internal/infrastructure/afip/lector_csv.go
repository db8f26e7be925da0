// Package afip lee los exports tabulares de AFIP ("Mis Comprobantes" /
// "Comprobantes en línea"): CSV separado por punto y coma, con codificación
// variable según el navegador que lo descargó.
package afip

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/tu-usuario/asientos-afip/internal/domain/asientos"
)

// LectorCSV lee un export AFIP y lo entrega como filas indexadas por nombre
// de columna, listas para el normalizador.
type LectorCSV struct {
	log zerolog.Logger
}

// NewLectorCSV crea el lector.
func NewLectorCSV(log zerolog.Logger) *LectorCSV {
	return &LectorCSV{log: log}
}

// Leer abre el archivo, resuelve la codificación (UTF-8 o Windows-1252 /
// Latin-1, habituales en los exports) y parsea el CSV con separador ";".
// La primera fila es el encabezado; el chequeo de columnas requeridas lo hace
// el normalizador aguas arriba del motor.
func (l *LectorCSV) Leer(ruta string) ([]string, []asientos.Fila, error) {
	datos, err := os.ReadFile(ruta)
	if err != nil {
		return nil, nil, fmt.Errorf("afip: leer %s: %w", ruta, err)
	}

	datos, codificacion := decodificar(datos)
	l.log.Debug().Str("archivo", ruta).Str("codificacion", codificacion).Msg("archivo decodificado")

	r := csv.NewReader(bytes.NewReader(datos))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	registros, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("afip: parsear CSV %s: %w", ruta, err)
	}
	if len(registros) == 0 {
		return nil, nil, fmt.Errorf("afip: el archivo %s está vacío", ruta)
	}

	columnas := make([]string, len(registros[0]))
	for i, c := range registros[0] {
		columnas[i] = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
	}

	filas := make([]asientos.Fila, 0, len(registros)-1)
	for _, registro := range registros[1:] {
		fila := make(asientos.Fila, len(columnas))
		for i, valor := range registro {
			if i < len(columnas) {
				fila[columnas[i]] = valor
			}
		}
		filas = append(filas, fila)
	}

	l.log.Info().Str("archivo", ruta).Int("filas", len(filas)).Msg("export AFIP leído")
	return columnas, filas, nil
}

// decodificar devuelve los bytes en UTF-8. Si el contenido ya es UTF-8 válido
// se usa tal cual; si no, se decodifica como Windows-1252 (superconjunto
// práctico de Latin-1 en estos exports, y total: nunca falla).
func decodificar(datos []byte) ([]byte, string) {
	if utf8.Valid(datos) {
		return datos, "utf-8"
	}
	decodificados, err := charmap.Windows1252.NewDecoder().Bytes(datos)
	if err != nil {
		// Windows-1252 es una decodificación total; esto no debería pasar.
		return datos, "utf-8"
	}
	return decodificados, "windows-1252"
}
