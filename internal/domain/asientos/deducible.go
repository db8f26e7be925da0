package asientos

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/asientos-afip/internal/domain/entity"
)

// ClasificadorDeducible decide si el IVA de un comprobante es crédito fiscal
// computable (RG 4115/2017 + Ley 27.430) y con qué signo. El conjunto de
// códigos de alícuota deducibles se inyecta por configuración.
type ClasificadorDeducible struct {
	codigos map[int]bool
}

// NewClasificadorDeducible crea el clasificador con los códigos deducibles.
func NewClasificadorDeducible(codigosDeducibles []int) *ClasificadorDeducible {
	codigos := make(map[int]bool, len(codigosDeducibles))
	for _, c := range codigosDeducibles {
		codigos[c] = true
	}
	return &ClasificadorDeducible{codigos: codigos}
}

// Clasificar aplica la tabla de decisión:
//
//	FC con código deducible -> deducible, signo +1
//	NC con código deducible -> deducible, signo -1 (revierte la factura que corrige)
//	cualquier otra combinación -> no deducible, signo +1
//
// El signo +1 del caso no deducible es deliberadamente neutro: multiplicar un
// IVA no deducible por +1 nunca invierte un signo.
func (c *ClasificadorDeducible) Clasificar(tipo entity.TipoComprobante, codTributo int) (esDeducible bool, signo int) {
	if !c.codigos[codTributo] {
		return false, 1
	}
	switch tipo.Clase {
	case entity.Factura:
		return true, 1
	case entity.NotaCredito:
		return true, -1
	default:
		return false, 1
	}
}

// IVADeducible deriva los importes de IVA deducible y no deducible a partir
// del IVA ajustado: deducible = IVA ajustado × signo si corresponde, si no 0;
// no deducible = IVA ajustado - deducible.
func (c *ClasificadorDeducible) IVADeducible(tipo entity.TipoComprobante, codTributo int, ivaAjustado decimal.Decimal) (deducible, noDeducible decimal.Decimal) {
	esDeducible, signo := c.Clasificar(tipo, codTributo)
	if esDeducible {
		deducible = ivaAjustado.Mul(decimal.NewFromInt(int64(signo)))
	} else {
		deducible = decimal.Zero
	}
	return deducible, ivaAjustado.Sub(deducible)
}
