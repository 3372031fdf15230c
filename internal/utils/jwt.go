package utils // helpers for signing and inspecting access tokens

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT handed to a client after login.
// ID carries the jti claim so a token can later be revoked individually.
type AccessToken struct {
	Token string    // serialized JWT
	ID    string    // jti claim (random hex)
	Exp   time.Time // UTC expiration time
}

// TokenClaims is the decoded view of an access token used by middleware
// and the logout handlers.
type TokenClaims struct {
	Identity string    // sub claim: the user's email
	Role     string    // role claim
	ID       string    // jti claim
	Exp      time.Time // exp claim
}

var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT for the given identity string.
// Claims follow the usual shape: sub (email), role, exp, iat plus a
// random jti so logout can target this exact token.
func NewAccessToken(secret, identity, role string, ttlMin int) (AccessToken, error) {
	jti, err := randomHex(16)
	if err != nil {
		return AccessToken{}, err
	}
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  identity,
		"role": role,
		"jti":  jti,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, ID: jti, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token and
// returns its claims. Only HMAC-signed tokens are accepted.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}
	var out TokenClaims
	if v, ok := mc["sub"].(string); ok {
		out.Identity = v
	}
	if v, ok := mc["role"].(string); ok {
		out.Role = v
	}
	if v, ok := mc["jti"].(string); ok {
		out.ID = v
	}
	if v, ok := mc["exp"].(float64); ok {
		out.Exp = time.Unix(int64(v), 0).UTC()
	}
	if out.Identity == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	return out, nil
}

// randomHex returns a hex string built from n bytes of crypto/rand data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
