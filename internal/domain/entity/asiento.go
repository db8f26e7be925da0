package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoLibro identifica cada una de las tres vistas de valuación generadas.
type TipoLibro string

const (
	LibroHistorico TipoLibro = "historico"   // valores originales del comprobante
	LibroAjustado  TipoLibro = "ajustado"    // valores reexpresados por RT 54
	LibroAjuste    TipoLibro = "ajuste_rt54" // solo la porción inflacionaria
)

// Linea es una línea de asiento contable. Exactamente uno de Debe/Haber es
// distinto de cero (una línea con ambos en cero es omitible y no se emite).
type Linea struct {
	Fecha   time.Time
	Leyenda string
	Cuenta  string
	Debe    decimal.Decimal
	Haber   decimal.Decimal
	Moneda  string
}

// Libro es la secuencia ordenada de líneas de todos los comprobantes para una
// vista de valuación. Invariante agregado: |TotalDebe - TotalHaber| < 1.0.
type Libro struct {
	Tipo   TipoLibro
	Lineas []Linea
}

// NuevoLibro crea un libro vacío de la vista indicada.
func NuevoLibro(tipo TipoLibro) *Libro {
	return &Libro{Tipo: tipo}
}

// Agregar anexa líneas al final del libro preservando el orden de emisión.
func (l *Libro) Agregar(lineas ...Linea) {
	l.Lineas = append(l.Lineas, lineas...)
}

// TotalDebe suma del debe de todas las líneas.
func (l *Libro) TotalDebe() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range l.Lineas {
		total = total.Add(ln.Debe)
	}
	return total
}

// TotalHaber suma del haber de todas las líneas.
func (l *Libro) TotalHaber() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range l.Lineas {
		total = total.Add(ln.Haber)
	}
	return total
}

// PlanCuentas códigos de cuenta a los que imputa el generador de asientos.
// Se inyecta por configuración; el motor no conoce códigos fijos.
type PlanCuentas struct {
	Proveedores      string
	IVACreditoFiscal string
	Compras          string
	AjusteRT54       string
}
