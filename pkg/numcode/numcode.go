// Package numcode genera los códigos numéricos de 9 dígitos usados como
// identificador externo de reservas y como API key de administradores.
package numcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits longitud fija de cada código.
const Digits = 9

var upper = big.NewInt(1_000_000_000)

// Generator produce códigos candidatos. Los casos de uso lo reciben inyectado para
// poder forzar colisiones en tests.
type Generator func() (string, error)

// New devuelve un entero uniforme en [0, 999999999] con ceros a la izquierda.
func New() (string, error) {
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("numcode: leer aleatorio: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}

// Valid indica si s tiene exactamente 9 dígitos decimales.
func Valid(s string) bool {
	if len(s) != Digits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
