package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashea una contraseña en texto plano con bcrypt (sal aleatoria interna).
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("password vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara la contraseña en texto plano con el hash almacenado.
// Un mismatch devuelve error, nunca panic. Un hash vacío es un error de
// configuración de datos, no una condición por request.
func VerifyPassword(hash, password string) error {
	if hash == "" {
		return errors.New("password hash vacío")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
