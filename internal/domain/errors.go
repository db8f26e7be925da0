package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrCAEInvalido        = errors.New("CAE inválido: debe tener 14 dígitos numéricos")
	ErrEntradaVacia       = errors.New("no hay filas para procesar")
	ErrEsquemaDesconocido = errors.New("esquema de columnas desconocido")
)

// IngestionError indica que al origen le faltan columnas estructurales.
// Es fatal: se señala antes de correr el motor y aborta la corrida completa.
type IngestionError struct {
	Faltantes []string
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("faltan columnas requeridas en el origen: %s", strings.Join(e.Faltantes, ", "))
}

// ImbalanceError indica que un libro no cuadra: |debe - haber| supera la
// tolerancia agregada. Es fatal para ese libro; los demás libros de la
// corrida no se ven afectados.
type ImbalanceError struct {
	Libro entity.TipoLibro
	Delta decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("el libro %s no cuadra: diferencia debe-haber de %s", e.Libro, e.Delta.StringFixed(2))
}
