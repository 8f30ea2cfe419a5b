// internal/httpserver/token.go
//
// Round tokens: HS256 JWTs whose subject is the game id. A client may only
// read or guess in the round it was issued a token for.

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid token")

// tokens issues and verifies HS256 round tokens. A token's subject is the
// game ID, so only the client that started a round can play or inspect it.
type tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokens(secret string, ttl time.Duration) *tokens {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *tokens) issue(gameID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   gameID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// verify returns the game ID the token was issued for.
func (t *tokens) verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: %v", errBadToken, err)
	}
	return claims.Subject, nil
}

// authorize checks that the request carries a token for gameID.
func (t *tokens) authorize(r *http.Request, gameID string) error {
	raw := bearer(r)
	if raw == "" {
		return errBadToken
	}
	id, err := t.verify(raw)
	if err != nil {
		return err
	}
	if id != gameID {
		return fmt.Errorf("%w: issued for another game", errBadToken)
	}
	return nil
}

// bearer extracts a token from the Authorization header or the token query
// parameter (browsers cannot set headers on WebSocket upgrades).
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return r.URL.Query().Get("token")
}
