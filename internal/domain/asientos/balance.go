package asientos

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

// ToleranciaLibro banda de tolerancia agregada por libro (1 peso): absorbe la
// acumulación de redondeos a centavos entre muchos comprobantes. El balance
// local de cada partida, en cambio, es igualdad exacta.
var ToleranciaLibro = decimal.NewFromInt(1)

// CuadraPartida verifica el balance local de un grupo de líneas de un mismo
// comprobante: suma del debe igual a la suma del haber, exacto, sin tolerancia.
func CuadraPartida(lineas []entity.Linea) bool {
	debe := decimal.Zero
	haber := decimal.Zero
	for _, ln := range lineas {
		debe = debe.Add(ln.Debe)
		haber = haber.Add(ln.Haber)
	}
	return debe.Equal(haber)
}

// ValidarLibro verifica el invariante agregado de partida doble de un libro:
// |sum(debe) - sum(haber)| < ToleranciaLibro. Si no cuadra devuelve un
// ImbalanceError con el libro y la diferencia exacta; ese libro se descarta
// pero los demás libros de la corrida no se ven afectados.
func ValidarLibro(libro *entity.Libro) error {
	delta := libro.TotalDebe().Sub(libro.TotalHaber())
	if delta.Abs().GreaterThanOrEqual(ToleranciaLibro) {
		return &domain.ImbalanceError{Libro: libro.Tipo, Delta: delta}
	}
	return nil
}
