// Package export escribe los libros generados a disco (CSV por libro más un
// metadata.json de auditoría de la corrida). El motor no conoce formatos de
// salida; cualquier otro renderizado es un colaborador externo equivalente.
package export

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

// Metadata registro de auditoría de una corrida: qué archivo se procesó, con
// qué parámetros y cuándo. Los CUIT van cifrados, nunca en claro.
type Metadata struct {
	RunID           string    `json:"run_id"`
	ArchivoOrigen   string    `json:"archivo_origen"`
	SHA256Origen    string    `json:"sha256_origen"`
	CoefMensual     string    `json:"ipc_mensual"`
	MesesRT54       int       `json:"meses_rt54"`
	ProcesadoEl     time.Time `json:"procesado_el"`
	CUITsProtegidos []string  `json:"cuits_cifrados,omitempty"`
}

// EscritorCSV exporta libros bajo un directorio raíz, en un subdirectorio por
// período (YYYY-MM) como hace el circuito contable mensual.
type EscritorCSV struct {
	raiz string
}

// NewEscritorCSV crea el escritor con el directorio raíz de salida.
func NewEscritorCSV(raiz string) *EscritorCSV {
	return &EscritorCSV{raiz: raiz}
}

// Exportar escribe un CSV por libro (historico.csv, ajustado.csv,
// ajuste_rt54.csv) más metadata.json. Devuelve el directorio de salida.
func (e *EscritorCSV) Exportar(libros []*entity.Libro, meta Metadata) (string, error) {
	dir := filepath.Join(e.raiz, meta.ProcesadoEl.Format("2006-01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: crear directorio %s: %w", dir, err)
	}

	for _, libro := range libros {
		ruta := filepath.Join(dir, string(libro.Tipo)+".csv")
		if err := escribirLibro(ruta, libro); err != nil {
			return "", err
		}
	}

	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: serializar metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), metaJSON, 0o644); err != nil {
		return "", fmt.Errorf("export: escribir metadata: %w", err)
	}

	return dir, nil
}

func escribirLibro(ruta string, libro *entity.Libro) error {
	f, err := os.Create(ruta)
	if err != nil {
		return fmt.Errorf("export: crear %s: %w", ruta, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"fecha", "leyenda", "cuenta", "debe", "haber", "moneda"}); err != nil {
		return fmt.Errorf("export: escribir encabezado: %w", err)
	}
	for _, ln := range libro.Lineas {
		registro := []string{
			ln.Fecha.Format("02/01/2006"),
			ln.Leyenda,
			ln.Cuenta,
			ln.Debe.StringFixed(2),
			ln.Haber.StringFixed(2),
			ln.Moneda,
		}
		if err := w.Write(registro); err != nil {
			return fmt.Errorf("export: escribir línea: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: volcar %s: %w", ruta, err)
	}
	return nil
}

// SHA256Archivo calcula el hash del archivo de origen para dejar trazado en
// la metadata qué contenido exacto produjo los libros.
func SHA256Archivo(ruta string) (string, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return "", fmt.Errorf("export: abrir %s: %w", ruta, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("export: hashear %s: %w", ruta, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
