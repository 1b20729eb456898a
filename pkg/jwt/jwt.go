package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims estándar JWT. El único dato propio es el subject
// (username): access y refresh comparten exactamente el mismo payload y solo
// se distinguen por la duración que les pasa el caller.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token HS256 firmado con subject y expiración absoluta (now + ttl).
// Un secret vacío es un error de configuración, no una condición por request.
func Generate(secret, subject, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración juntas y devuelve los claims.
// Firma inválida, token expirado y payload malformado colapsan en un solo
// modo de fallo: el caller no puede distinguirlos.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Subject valida el token y extrae el subject (username). Falla igual que
// Parse, más un error explícito cuando el token es válido pero no trae 'sub'.
func Subject(secret, tokenString string) (string, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.RegisteredClaims.Subject == "" {
		return "", fmt.Errorf("token inválido: campo 'sub' no encontrado")
	}
	return claims.RegisteredClaims.Subject, nil
}
