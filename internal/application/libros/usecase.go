package libros

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain"
	"github.com/tu-usuario/asientos-afip/internal/domain/asientos"
	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
	"github.com/tu-usuario/asientos-afip/pkg/logger"
)

// Config parámetros inyectados de la corrida. Nada de esto tiene valores
// fijos en el motor: todo llega desde pkg/config.
type Config struct {
	CoefMensual       decimal.Decimal
	MesesRT54         int
	CodigosDeducibles []int
	CodTributoDefault int
	Esquema           asientos.Esquema
	Cuentas           entity.PlanCuentas
	Moneda            string
}

// EstadoLibro resultado de la validación de partida doble de un libro.
type EstadoLibro struct {
	Valido bool
	Lineas int
	Delta  decimal.Decimal // diferencia debe-haber exacta si no cuadra
}

// Resumen contadores de la corrida que se reportan al usuario: filas
// descartadas o degradadas y el estado de cada libro.
type Resumen struct {
	RunID             string
	Filas             int
	Comprobantes      int
	DescartadosCAE    int
	MontosNoNumericos int
	FechasInvalidas   int
	Excluidos         int
	Libros            map[entity.TipoLibro]EstadoLibro
	Duracion          time.Duration
}

// Resultado de una corrida completa: los libros que cuadran, el resumen y los
// CUIT de emisores ya cifrados para cualquier persistencia externa.
type Resultado struct {
	Libros          []*entity.Libro
	Resumen         Resumen
	CUITsProtegidos []string
}

// GenerarLibrosUseCase orquesta el pipeline completo: normalización de filas,
// ajuste RT 54, deducibilidad RG 4115, generación de partida doble en tres
// libros y validación de balance por libro. Sin estado entre corridas salvo
// la configuración inyectada.
type GenerarLibrosUseCase struct {
	cfg          Config
	cifrador     CifradorCUIT
	normalizador *asientos.Normalizador
	ajustador    *asientos.AjustadorRT54
	clasificador *asientos.ClasificadorDeducible
	generador    *asientos.GeneradorAsientos
	log          *logger.Logger
}

// NewGenerarLibrosUseCase construye el caso de uso con sus colaboradores.
func NewGenerarLibrosUseCase(cfg Config, cifrador CifradorCUIT, log *logger.Logger) *GenerarLibrosUseCase {
	return &GenerarLibrosUseCase{
		cfg:          cfg,
		cifrador:     cifrador,
		normalizador: asientos.NewNormalizador(cfg.Esquema, cfg.CodTributoDefault, log.Componente("normalizador")),
		ajustador:    asientos.NewAjustadorRT54(cfg.CoefMensual),
		clasificador: asientos.NewClasificadorDeducible(cfg.CodigosDeducibles),
		generador:    asientos.NewGeneradorAsientos(cfg.Cuentas, cfg.Moneda, log.Componente("generador")),
		log:          log,
	}
}

// Generar corre el pipeline sobre las filas crudas. Solo dos fallas son
// fatales: columnas faltantes en el origen (aborta la corrida completa) y el
// descuadre de un libro (descarta ese libro; los demás se devuelven igual).
// Todo lo demás degrada con contadores en el resumen.
func (uc *GenerarLibrosUseCase) Generar(columnas []string, filas []asientos.Fila) (*Resultado, error) {
	inicio := time.Now()

	if err := uc.normalizador.ValidarColumnas(columnas); err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, domain.ErrEntradaVacia
	}

	norm := uc.normalizador.Normalizar(filas)
	uc.log.Info().
		Int("filas", len(filas)).
		Int("comprobantes", len(norm.Comprobantes)).
		Int("descartados_cae", norm.DescartadosCAE).
		Msg("comprobantes normalizados")

	ajustados := uc.ajustarYClasificar(norm.Comprobantes)

	gen := uc.generador.Generar(ajustados)

	resumen := Resumen{
		RunID:             uuid.New().String(),
		Filas:             len(filas),
		Comprobantes:      len(norm.Comprobantes),
		DescartadosCAE:    norm.DescartadosCAE,
		MontosNoNumericos: norm.MontosNoNumericos,
		FechasInvalidas:   norm.FechasInvalidas,
		Excluidos:         gen.Excluidos,
		Libros:            make(map[entity.TipoLibro]EstadoLibro, 3),
	}

	resultado := &Resultado{}
	for _, libro := range []*entity.Libro{gen.Historico, gen.Ajustado, gen.Ajuste} {
		estado := EstadoLibro{Lineas: len(libro.Lineas)}
		if err := asientos.ValidarLibro(libro); err != nil {
			imbalance := err.(*domain.ImbalanceError)
			estado.Delta = imbalance.Delta
			uc.log.Error().
				Str("libro", string(libro.Tipo)).
				Str("delta", imbalance.Delta.StringFixed(2)).
				Msg("libro descartado por descuadre de partida doble")
		} else {
			estado.Valido = true
			resultado.Libros = append(resultado.Libros, libro)
		}
		resumen.Libros[libro.Tipo] = estado
	}

	cuits, err := uc.protegerCUITs(norm.Comprobantes)
	if err != nil {
		return nil, err
	}
	resultado.CUITsProtegidos = cuits

	resumen.Duracion = time.Since(inicio)
	resultado.Resumen = resumen

	uc.log.Info().
		Str("run_id", resumen.RunID).
		Int("libros_validos", len(resultado.Libros)).
		Dur("duracion", resumen.Duracion).
		Msg("corrida finalizada")

	return resultado, nil
}

// ajustarYClasificar deriva por comprobante los valores ajustados y la
// apertura deducible/no deducible. Los derivados se anexan en un registro
// nuevo; el comprobante canónico no se muta.
func (uc *GenerarLibrosUseCase) ajustarYClasificar(comprobantes []entity.Comprobante) []entity.ComprobanteAjustado {
	ajustados := make([]entity.ComprobanteAjustado, 0, len(comprobantes))
	for _, c := range comprobantes {
		netoAjustado := uc.ajustador.Ajustar(c.Neto, uc.cfg.MesesRT54)
		ivaAjustado := uc.ajustador.Ajustar(c.IVA, uc.cfg.MesesRT54)
		deducible, noDeducible := uc.clasificador.IVADeducible(c.Tipo, c.CodTributo, ivaAjustado)
		ajustados = append(ajustados, entity.ComprobanteAjustado{
			Comprobante:    c,
			NetoAjustado:   netoAjustado,
			IVAAjustado:    ivaAjustado,
			IVADeducible:   deducible,
			IVANoDeducible: noDeducible,
		})
	}
	return ajustados
}

// protegerCUITs cifra los CUIT únicos de los emisores, ordenados para que la
// salida sea determinística. El CUIT en claro no sale del proceso.
func (uc *GenerarLibrosUseCase) protegerCUITs(comprobantes []entity.Comprobante) ([]string, error) {
	unicos := make(map[string]bool, len(comprobantes))
	for _, c := range comprobantes {
		if c.CUITEmisor != "" {
			unicos[c.CUITEmisor] = true
		}
	}
	ordenados := make([]string, 0, len(unicos))
	for cuit := range unicos {
		ordenados = append(ordenados, cuit)
	}
	sort.Strings(ordenados)

	cifrados := make([]string, 0, len(ordenados))
	for _, cuit := range ordenados {
		token, err := uc.cifrador.Cifrar(cuit)
		if err != nil {
			return nil, err
		}
		cifrados = append(cifrados, token)
	}
	return cifrados, nil
}
