package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed credential lifetime. Every issued token
// expires one hour after issuance.
const tokenTTL = time.Hour

// TokenService signs caller-supplied claim sets with a shared secret.
type TokenService struct {
	secret string
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

// Issue signs the given claims with HS256. The exp and iat claims are
// set here and override anything the caller supplied.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}

	now := time.Now()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(tokenTTL).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString([]byte(s.secret))
}
