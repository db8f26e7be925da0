// Package afip contiene catálogos y validaciones de los comprobantes
// electrónicos AFIP (Argentina) tal como llegan en el export
// "Mis Comprobantes" / "Comprobantes en línea".
package afip

// =============================================================================
// Tipos de comprobante AFIP (tabla de tipos de la RG 1415)
// En el export el campo "Tipo de Comprobante" trae el código numérico.
// =============================================================================

const (
	CodigoFactura     = "1"  // Factura A
	CodigoNotaCredito = "11" // Nota de Crédito A
)

// =============================================================================
// Códigos de alícuota de IVA (campo "Alícuota" de AFIP)
// =============================================================================

const (
	CodAlicuota105 = 4 // 10,5 %
	CodAlicuota21  = 5 // 21 %
	CodAlicuota27  = 6 // 27 %
	CodAlicuota5   = 8 // 5 %
	CodAlicuota25  = 9 // 2,5 %
)

// AlicuotaACodigo mapea la tasa porcentual de cada columna del export
// multi-alícuota a su código AFIP. Las claves coinciden con los encabezados
// "IVA 21%", "IVA 10,5%", etc.
var AlicuotaACodigo = map[string]int{
	"21":   CodAlicuota21,
	"27":   CodAlicuota27,
	"10,5": CodAlicuota105,
	"5":    CodAlicuota5,
	"2,5":  CodAlicuota25,
}

// AlicuotasOrdenadas tasas en orden descendente, para elegir la alícuota
// principal de forma determinística cuando un comprobante trae varias.
var AlicuotasOrdenadas = []string{"27", "21", "10,5", "5", "2,5"}

// MonedaPesos etiqueta ISO de la moneda de curso legal.
const MonedaPesos = "ARS"
