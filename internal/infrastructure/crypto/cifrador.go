// Package crypto implementa el cifrado reversible de CUIT exigido por la
// Ley 25.326 antes de cualquier persistencia fuera del proceso.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// infoHKDF contexto fijo de derivación: ata la clave derivada a este uso.
const infoHKDF = "asientos-afip/cuit-ley-25326"

// CifradorAESGCM cifra CUIT con AES-256-GCM. La clave simétrica se inyecta
// desde la configuración (CUIT_KEY) y se estira a 256 bits con HKDF-SHA256.
type CifradorAESGCM struct {
	aead cipher.AEAD
}

// NewCifradorAESGCM deriva la clave y arma el AEAD. clave no puede ser vacía.
func NewCifradorAESGCM(clave string) (*CifradorAESGCM, error) {
	if clave == "" {
		return nil, fmt.Errorf("crypto: la clave de cifrado de CUIT es obligatoria")
	}

	kdf := hkdf.New(sha256.New, []byte(clave), nil, []byte(infoHKDF))
	claveAES := make([]byte, 32)
	if _, err := io.ReadFull(kdf, claveAES); err != nil {
		return nil, fmt.Errorf("crypto: derivar clave: %w", err)
	}

	block, err := aes.NewCipher(claveAES)
	if err != nil {
		return nil, fmt.Errorf("crypto: inicializar AES: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: inicializar GCM: %w", err)
	}
	return &CifradorAESGCM{aead: aead}, nil
}

// ClaveAleatoria genera una clave efímera para corridas de desarrollo donde
// no hay CUIT_KEY configurada. Los tokens de esa corrida no son descifrables
// en otro proceso.
func ClaveAleatoria() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto: generar clave aleatoria: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Cifrar devuelve el CUIT cifrado como token base64 url-safe (nonce ||
// ciphertext). Cada llamada usa un nonce nuevo: el mismo CUIT produce tokens
// distintos.
func (c *CifradorAESGCM) Cifrar(cuit string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("crypto: generar nonce: %w", err)
	}
	sellado := c.aead.Seal(nonce, nonce, []byte(cuit), nil)
	return base64.RawURLEncoding.EncodeToString(sellado), nil
}

// Descifrar revierte Cifrar; el cifrado es reversible por diseño para poder
// responder requerimientos del titular del dato.
func (c *CifradorAESGCM) Descifrar(token string) (string, error) {
	sellado, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("crypto: token inválido: %w", err)
	}
	if len(sellado) < c.aead.NonceSize() {
		return "", fmt.Errorf("crypto: token demasiado corto")
	}
	nonce, ciphertext := sellado[:c.aead.NonceSize()], sellado[c.aead.NonceSize():]
	claro, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("crypto: descifrar CUIT: %w", err)
	}
	return string(claro), nil
}
