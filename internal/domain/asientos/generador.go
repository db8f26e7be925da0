package asientos

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

// umbralAjuste por debajo de este delta el ajuste por inflación se considera
// ruido de redondeo y no genera partida en el libro de ajuste.
var umbralAjuste = decimal.RequireFromString("0.01")

// prefijoAjuste distingue las líneas del libro de ajuste de las partidas
// normales que referencian el mismo comprobante.
const prefijoAjuste = "Ajuste RT54 "

// GeneradorAsientos emite los grupos de líneas balanceados de cada
// comprobante para los tres libros. El plan de cuentas y la moneda se
// inyectan; el espejado debe/haber de las NC se resuelve en un único punto
// (lados) compartido por todas las cuentas.
type GeneradorAsientos struct {
	cuentas entity.PlanCuentas
	moneda  string
	log     zerolog.Logger
}

// NewGeneradorAsientos crea el generador.
func NewGeneradorAsientos(cuentas entity.PlanCuentas, moneda string, log zerolog.Logger) *GeneradorAsientos {
	return &GeneradorAsientos{cuentas: cuentas, moneda: moneda, log: log}
}

// ResultadoGeneracion los tres libros más el contador de comprobantes
// excluidos por datos derivados incompletos.
type ResultadoGeneracion struct {
	Historico *entity.Libro
	Ajustado  *entity.Libro
	Ajuste    *entity.Libro
	Excluidos int
}

// Generar emite, por cada comprobante, la partida normal en valuación
// histórica (neto e IVA originales) y ajustada (neto reexpresado e IVA
// deducible), más la partida de ajuste puro cuando supera el umbral.
// Un comprobante con fecha inválida se excluye de los tres libros completo:
// nunca se emite un grupo a medias.
func (g *GeneradorAsientos) Generar(comprobantes []entity.ComprobanteAjustado) *ResultadoGeneracion {
	res := &ResultadoGeneracion{
		Historico: entity.NuevoLibro(entity.LibroHistorico),
		Ajustado:  entity.NuevoLibro(entity.LibroAjustado),
		Ajuste:    entity.NuevoLibro(entity.LibroAjuste),
	}

	for i := range comprobantes {
		c := &comprobantes[i]
		if c.Fecha.IsZero() {
			res.Excluidos++
			g.log.Warn().Str("comprobante", c.ID()).
				Msg("comprobante excluido de los tres libros: fecha de emisión inválida")
			continue
		}

		leyenda := c.Leyenda()
		esNC := c.Tipo.EsNotaCredito()

		netoHist := c.Neto.Abs()
		ivaHist := c.IVA.Abs()
		netoAjustado := c.NetoAjustado.Abs()
		ivaDeducible := c.IVADeducible.Abs()

		res.Historico.Agregar(g.partidaNormal(c, leyenda, netoHist, ivaHist, esNC)...)
		res.Ajustado.Agregar(g.partidaNormal(c, leyenda, netoAjustado, ivaDeducible, esNC)...)

		delta := netoAjustado.Sub(netoHist).Add(ivaDeducible.Sub(ivaHist))
		if delta.Abs().GreaterThan(umbralAjuste) {
			res.Ajuste.Agregar(g.partidaAjuste(c, prefijoAjuste+leyenda, delta.Abs(), esNC)...)
		}
	}

	return res
}

// lados resuelve el espejado de las notas de crédito: toda NC invierte debe y
// haber respecto de una factura, aplicado idéntico en cada cuenta tocada.
// Única función de resolución de signo de todo el generador.
func lados(esNC bool, monto decimal.Decimal) (debe, haber decimal.Decimal) {
	if esNC {
		return decimal.Zero, monto
	}
	return monto, decimal.Zero
}

// partidaNormal emite el grupo balanceado de un comprobante en una valuación:
// Compras y, si hay IVA, IVA Crédito Fiscal del lado del documento;
// Proveedores del lado contrario por neto + IVA. El grupo cuadra exacto por
// construcción.
func (g *GeneradorAsientos) partidaNormal(c *entity.ComprobanteAjustado, leyenda string, neto, iva decimal.Decimal, esNC bool) []entity.Linea {
	lineas := make([]entity.Linea, 0, 3)

	debe, haber := lados(esNC, neto)
	lineas = append(lineas, entity.Linea{
		Fecha: c.Fecha, Leyenda: leyenda, Cuenta: g.cuentas.Compras,
		Debe: debe, Haber: haber, Moneda: g.moneda,
	})

	if !iva.IsZero() {
		debe, haber = lados(esNC, iva)
		lineas = append(lineas, entity.Linea{
			Fecha: c.Fecha, Leyenda: leyenda, Cuenta: g.cuentas.IVACreditoFiscal,
			Debe: debe, Haber: haber, Moneda: g.moneda,
		})
	}

	debe, haber = lados(!esNC, neto.Add(iva))
	lineas = append(lineas, entity.Linea{
		Fecha: c.Fecha, Leyenda: leyenda, Cuenta: g.cuentas.Proveedores,
		Debe: debe, Haber: haber, Moneda: g.moneda,
	})

	return lineas
}

// partidaAjuste emite las dos líneas del libro de ajuste puro: Compras y
// Ajuste RT54 en lados opuestos por el mismo importe, espejadas para NC.
func (g *GeneradorAsientos) partidaAjuste(c *entity.ComprobanteAjustado, leyenda string, delta decimal.Decimal, esNC bool) []entity.Linea {
	debeCompras, haberCompras := lados(esNC, delta)
	debeAjuste, haberAjuste := lados(!esNC, delta)
	return []entity.Linea{
		{
			Fecha: c.Fecha, Leyenda: leyenda, Cuenta: g.cuentas.Compras,
			Debe: debeCompras, Haber: haberCompras, Moneda: g.moneda,
		},
		{
			Fecha: c.Fecha, Leyenda: leyenda, Cuenta: g.cuentas.AjusteRT54,
			Debe: debeAjuste, Haber: haberAjuste, Moneda: g.moneda,
		},
	}
}
