package asientos

import (
	"strings"
	"time"
)

// formatos de fecha aceptados en el export AFIP, en orden de preferencia.
var formatosFecha = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
}

// ParsearFecha interpreta la fecha de emisión en día/mes/año con "/" o "-",
// o ISO año-mes-día. Una fecha no parseable devuelve el time.Time cero como
// marcador de fecha inválida; nunca falla.
func ParsearFecha(valor string) time.Time {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return time.Time{}
	}
	for _, formato := range formatosFecha {
		if t, err := time.Parse(formato, valor); err == nil {
			return t
		}
	}
	return time.Time{}
}
