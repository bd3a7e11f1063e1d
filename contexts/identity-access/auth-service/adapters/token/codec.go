package tokenadapter

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "mdd/contexts/identity-access/auth-service/domain/errors"
)

// Codec implements ports.TokenCodec with HMAC-SHA256 signed JWTs carrying
// issuer, issued-at, expiry and the subject email. Tokens stay valid for
// their full lifetime once issued; there is no revocation. Callers own the
// TTL; config supplies the default.
type Codec struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (c Codec) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    c.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
}

func (c Codec) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrTokenInvalid
		}
		return c.Secret, nil
	}, jwt.WithIssuer(c.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domainerrors.ErrTokenExpired
		}
		return "", domainerrors.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", domainerrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}
