package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing señala un fallo del primitivo de hashing. Es fatal: nunca se
// continúa con una contraseña sin hashear.
var ErrHashing = errors.New("password hashing failed")

// HashPassword produce un hash bcrypt con el costo indicado.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hash), nil
}

// CheckPassword compara en tiempo constante; un mismatch devuelve false,
// nunca error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
