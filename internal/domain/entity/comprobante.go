package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClaseComprobante distingue el tratamiento contable del documento.
type ClaseComprobante int

const (
	Factura ClaseComprobante = iota // código AFIP "1"
	NotaCredito                     // código AFIP "11"
	NotaDebito                      // cualquier otro código, conserva el código crudo
)

// TipoComprobante es la variante cerrada de tipos de documento: Factura,
// Nota de Crédito, o Nota de Débito con su código AFIP original.
type TipoComprobante struct {
	Clase  ClaseComprobante
	Codigo string // código crudo del export AFIP ("1", "11", "3", ...)
}

// TipoDesdeCodigo clasifica el código de "Tipo de Comprobante" del export AFIP.
func TipoDesdeCodigo(codigo string) TipoComprobante {
	codigo = strings.TrimSpace(codigo)
	switch codigo {
	case "1":
		return TipoComprobante{Clase: Factura, Codigo: codigo}
	case "11":
		return TipoComprobante{Clase: NotaCredito, Codigo: codigo}
	default:
		return TipoComprobante{Clase: NotaDebito, Codigo: codigo}
	}
}

// EsNotaCredito indica si corresponde invertir debe y haber.
func (t TipoComprobante) EsNotaCredito() bool {
	return t.Clase == NotaCredito
}

func (t TipoComprobante) String() string {
	switch t.Clase {
	case Factura:
		return "FC " + t.Codigo
	case NotaCredito:
		return "NC " + t.Codigo
	default:
		return "ND " + t.Codigo
	}
}

// Comprobante es el registro canónico de un comprobante de compra ya
// normalizado y validado. Es inmutable: los valores derivados del ajuste por
// inflación viven en ComprobanteAjustado, nunca se pisan sobre el original.
//
// Invariantes tras la normalización:
//   - |Neto + IVA - Total| <= 1.0 (pesos) para FC/ND
//   - NC lleva Neto = -Total e IVA = 0 (el IVA viene plegado en el total)
//   - CAE con exactamente 14 dígitos numéricos
type Comprobante struct {
	Tipo        TipoComprobante
	PuntoVenta  string // 4 dígitos
	Numero      string // 8 dígitos
	Fecha       time.Time
	CUITEmisor  string
	CAE         string
	Neto        decimal.Decimal
	IVA         decimal.Decimal
	Total       decimal.Decimal
	CodTributo  int // código de alícuota AFIP (5 = 21 %, etc.)
}

// ID identificador legible del comprobante: "FC 1 0001-00000042".
func (c *Comprobante) ID() string {
	return fmt.Sprintf("%s %s-%s", c.Tipo, c.PuntoVenta, c.Numero)
}

// Leyenda texto de trazabilidad para las líneas de asiento: incluye tipo,
// punto de venta, número y CAE para poder volver al comprobante origen.
func (c *Comprobante) Leyenda() string {
	return fmt.Sprintf("%s CAE %s", c.ID(), c.CAE)
}

// ComprobanteAjustado agrega al comprobante los valores derivados del ajuste
// RT 54 y de la clasificación de deducibilidad RG 4115. Se construye una sola
// vez por corrida; el Comprobante embebido no se modifica.
type ComprobanteAjustado struct {
	Comprobante

	NetoAjustado   decimal.Decimal
	IVAAjustado    decimal.Decimal
	IVADeducible   decimal.Decimal // IVAAjustado con signo según deducibilidad
	IVANoDeducible decimal.Decimal // IVAAjustado - IVADeducible
}
