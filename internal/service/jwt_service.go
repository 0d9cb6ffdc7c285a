package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devconnector/internal/domain"
)

// JWTService emite y valida tokens de acceso autocontenidos. No hay
// estado del lado del servidor: el logout es un descarte del cliente.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// Claims es el payload embebido en el token: identidad del sujeto más
// nombre y avatar para que el cliente no tenga que resolverlos.
type Claims struct {
	UserID    string `json:"uid"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrUnknownSubject    = errors.New("token subject unknown")
)

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "devconnector",
	}
}

// Issue firma un token HS256 con la identidad del usuario y expiración
// derivada del TTL configurado.
func (s *JWTService) Issue(user domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenMalformed
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID:    user.ID,
		Name:      user.Name,
		AvatarURL: user.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida firma y expiración y devuelve los claims. Un token bien
// formado no prueba por sí solo que el sujeto siga existiendo: esa
// resolución la hace el middleware contra el repositorio de usuarios.
func (s *JWTService) Parse(tokenString string) (Claims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrTokenMalformed
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenBadSignature
		default:
			return Claims{}, ErrTokenMalformed
		}
	}

	if !s.isValidClaims(claims) {
		return Claims{}, ErrTokenMalformed
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
