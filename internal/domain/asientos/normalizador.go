// Package asientos implementa el motor de generación de asientos contables a
// partir de comprobantes de compra AFIP: normalización del registro crudo,
// ajuste por inflación RT 54, deducibilidad de IVA RG 4115/2017 y partida
// doble en tres libros (histórico, ajustado y ajuste puro).
package asientos

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
	"github.com/tu-usuario/asientos-afip/pkg/afip"
)

// Esquema identifica el layout de columnas del export AFIP de origen.
type Esquema string

const (
	// EsquemaTotales layout con totales consolidados por comprobante
	// ("Imp. Neto Gravado Total" / "Total IVA" / "Imp. Total").
	EsquemaTotales Esquema = "totales"
	// EsquemaAlicuotas layout con una columna de base e IVA por alícuota
	// ("Imp. Neto Gravado IVA 21%" / "IVA 21%" / ...).
	EsquemaAlicuotas Esquema = "alicuotas"
)

// EsquemaDesdeString parsea el valor de configuración del esquema.
func EsquemaDesdeString(s string) (Esquema, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EsquemaTotales):
		return EsquemaTotales, nil
	case string(EsquemaAlicuotas):
		return EsquemaAlicuotas, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrEsquemaDesconocido, s)
	}
}

// Fila es una fila cruda del origen tabular, indexada por nombre de columna.
type Fila map[string]string

// Nombres de columna del export AFIP, comunes a ambos esquemas.
const (
	ColTipoComprobante = "Tipo de Comprobante"
	ColPuntoVenta      = "Punto de Venta"
	ColNumero          = "Número Desde"
	ColFecha           = "Fecha de Emisión"
	ColCUITEmisor      = "Nro. Doc. Emisor"
	ColCAE             = "Cód. Autorización"

	ColNetoTotal = "Imp. Neto Gravado Total"
	ColTotalIVA  = "Total IVA"
	ColImpTotal  = "Imp. Total"
)

// colNetoAlicuota y colIVAAlicuota arman los encabezados por alícuota del
// esquema multi-tasa ("Imp. Neto Gravado IVA 10,5%", "IVA 10,5%", ...).
func colNetoAlicuota(tasa string) string { return fmt.Sprintf("Imp. Neto Gravado IVA %s%%", tasa) }
func colIVAAlicuota(tasa string) string  { return fmt.Sprintf("IVA %s%%", tasa) }

// toleranciaConciliacion discrepancia máxima admitida entre neto+IVA y total
// declarados antes de recalcular el neto (1 peso, absorbe redondeos de AFIP).
var toleranciaConciliacion = decimal.NewFromInt(1)

// Normalizador convierte filas crudas del export AFIP en comprobantes
// canónicos validados. Las dos variantes de layout se eligen por esquema;
// el resto del pipeline no distingue de cuál vinieron.
type Normalizador struct {
	esquema           Esquema
	codTributoDefault int
	log               zerolog.Logger
}

// NewNormalizador crea el normalizador. codTributoDefault es el código de
// alícuota asumido cuando el origen trae IVA pero no discrimina la tasa.
func NewNormalizador(esquema Esquema, codTributoDefault int, log zerolog.Logger) *Normalizador {
	return &Normalizador{esquema: esquema, codTributoDefault: codTributoDefault, log: log}
}

// ColumnasRequeridas columnas que el origen debe traer para este esquema.
func (n *Normalizador) ColumnasRequeridas() []string {
	base := []string{
		ColTipoComprobante, ColPuntoVenta, ColNumero,
		ColFecha, ColCUITEmisor, ColCAE,
	}
	switch n.esquema {
	case EsquemaAlicuotas:
		for _, tasa := range afip.AlicuotasOrdenadas {
			base = append(base, colNetoAlicuota(tasa), colIVAAlicuota(tasa))
		}
	default:
		base = append(base, ColNetoTotal, ColTotalIVA, ColImpTotal)
	}
	return base
}

// ValidarColumnas verifica que el origen tenga todas las columnas del
// esquema. Una columna estructuralmente ausente es un error de ingesta fatal,
// distinto de un valor vacío en una fila (que se degrada por valor).
func (n *Normalizador) ValidarColumnas(columnas []string) error {
	presentes := make(map[string]bool, len(columnas))
	for _, c := range columnas {
		presentes[strings.TrimSpace(c)] = true
	}
	var faltantes []string
	for _, req := range n.ColumnasRequeridas() {
		if !presentes[req] {
			faltantes = append(faltantes, req)
		}
	}
	if len(faltantes) > 0 {
		return &domain.IngestionError{Faltantes: faltantes}
	}
	return nil
}

// ResultadoNormalizacion comprobantes canónicos más los contadores de
// degradación que se reportan en el resumen de la corrida.
type ResultadoNormalizacion struct {
	Comprobantes      []entity.Comprobante
	DescartadosCAE    int // filas excluidas por CAE inválido (filtro duro)
	MontosNoNumericos int // importes no numéricos degradados a 0
	FechasInvalidas   int // fechas no parseables (marcador de fecha cero)
}

// Normalizar transforma cada fila en un comprobante canónico. Las filas con
// CAE inválido se excluyen del resultado por completo; los importes no
// numéricos degradan a cero y se cuentan, nunca abortan la corrida.
func (n *Normalizador) Normalizar(filas []Fila) *ResultadoNormalizacion {
	res := &ResultadoNormalizacion{}

	for i, fila := range filas {
		cae := strings.TrimSpace(fila[ColCAE])
		if !afip.ValidarCAE(cae) {
			res.DescartadosCAE++
			n.log.Debug().Int("fila", i).Str("cae", cae).Err(domain.ErrCAEInvalido).
				Msg("comprobante descartado")
			continue
		}

		tipo := entity.TipoDesdeCodigo(fila[ColTipoComprobante])

		var netoDeclarado, iva, total decimal.Decimal
		switch n.esquema {
		case EsquemaAlicuotas:
			netoDeclarado, iva, total = n.montosPorAlicuota(fila, i, res)
		default:
			netoDeclarado = n.monto(fila[ColNetoTotal], i, ColNetoTotal, res)
			iva = n.monto(fila[ColTotalIVA], i, ColTotalIVA, res)
			total = n.monto(fila[ColImpTotal], i, ColImpTotal, res)
		}

		// Conciliación neto/IVA/total. Para NC el IVA viene plegado en el
		// total: se registra neto = -total con IVA en cero. Para FC/ND se
		// confía en el neto declarado salvo discrepancia mayor a la
		// tolerancia, en cuyo caso mandan total e IVA.
		ivaInformado := iva
		var neto decimal.Decimal
		if tipo.EsNotaCredito() {
			neto = total.Neg()
			iva = decimal.Zero
		} else {
			neto = netoDeclarado
			if neto.Add(iva).Sub(total).Abs().GreaterThan(toleranciaConciliacion) {
				neto = total.Sub(iva)
			}
		}

		fecha := ParsearFecha(fila[ColFecha])
		if fecha.IsZero() {
			res.FechasInvalidas++
			n.log.Warn().Int("fila", i).Str("valor", fila[ColFecha]).Msg("fecha de emisión no parseable")
		}

		res.Comprobantes = append(res.Comprobantes, entity.Comprobante{
			Tipo:       tipo,
			PuntoVenta: afip.PadPuntoVenta(fila[ColPuntoVenta]),
			Numero:     afip.PadNumero(fila[ColNumero]),
			Fecha:      fecha,
			CUITEmisor: strings.TrimSpace(fila[ColCUITEmisor]),
			CAE:        cae,
			Neto:       neto,
			IVA:        iva,
			Total:      total,
			CodTributo: n.codTributo(fila, ivaInformado),
		})
	}

	return res
}

// monto normaliza un importe contando las degradaciones no numéricas.
func (n *Normalizador) monto(valor string, fila int, columna string, res *ResultadoNormalizacion) decimal.Decimal {
	m, ok := NormalizarMonto(valor)
	if !ok {
		res.MontosNoNumericos++
		n.log.Warn().Int("fila", fila).Str("columna", columna).Str("valor", valor).
			Msg("importe no numérico degradado a cero")
	}
	return m
}

// montosPorAlicuota suma las columnas de base e IVA de todas las alícuotas
// pobladas en un único neto e IVA por comprobante. Si el export trae
// "Imp. Total" se usa como total; si no, total = neto + IVA.
func (n *Normalizador) montosPorAlicuota(fila Fila, i int, res *ResultadoNormalizacion) (neto, iva, total decimal.Decimal) {
	for _, tasa := range afip.AlicuotasOrdenadas {
		neto = neto.Add(n.monto(fila[colNetoAlicuota(tasa)], i, colNetoAlicuota(tasa), res))
		iva = iva.Add(n.monto(fila[colIVAAlicuota(tasa)], i, colIVAAlicuota(tasa), res))
	}
	if valor, ok := fila[ColImpTotal]; ok && strings.TrimSpace(valor) != "" {
		total = n.monto(valor, i, ColImpTotal, res)
	} else {
		total = neto.Add(iva)
	}
	return neto, iva, total
}

// codTributo resuelve el código de alícuota del comprobante. En el esquema
// multi-tasa gana la alícuota poblada más alta; en el esquema de totales se
// asume el código default configurado siempre que haya IVA informado.
func (n *Normalizador) codTributo(fila Fila, ivaInformado decimal.Decimal) int {
	if n.esquema == EsquemaAlicuotas {
		for _, tasa := range afip.AlicuotasOrdenadas {
			if m, ok := NormalizarMonto(fila[colIVAAlicuota(tasa)]); ok && m.IsPositive() {
				return afip.AlicuotaACodigo[tasa]
			}
		}
		return 0
	}
	if ivaInformado.IsPositive() {
		return n.codTributoDefault
	}
	return 0
}
