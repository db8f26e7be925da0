package libros

import "github.com/tu-usuario/asientos-afip/internal/domain/asientos"

// CifradorCUIT cifra de forma reversible el CUIT de los emisores antes de que
// salga del proceso (Ley 25.326). La clave vive fuera del caso de uso.
// Implementado por infrastructure/crypto.
type CifradorCUIT interface {
	Cifrar(cuit string) (string, error)
}

// LectorComprobantes entrega las filas crudas del origen tabular junto con
// sus nombres de columna. Implementado por infrastructure/afip (CSV).
type LectorComprobantes interface {
	Leer(ruta string) (columnas []string, filas []asientos.Fila, err error)
}
