package embed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TokenSigner creates and validates signed embed tokens for public property
// pages. The token binds a property and its tenant so an embed link can never
// be replayed against another tenant's listing.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner constructs a signer with the provided secret and TTL.
func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate returns a signed token referencing the property within its tenant.
func (s *TokenSigner) Generate(tenantID, propertyID string) (string, time.Time, error) {
	if tenantID == "" || propertyID == "" {
		return "", time.Time{}, fmt.Errorf("tenantID and propertyID required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := time.Now().Add(s.ttl)
	encodedTenant := base64.RawURLEncoding.EncodeToString([]byte(tenantID))
	payload := fmt.Sprintf("%s|%d|%s", propertyID, expiresAt.Unix(), encodedTenant)
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	signature := hex.EncodeToString(mac.Sum(nil))
	token := strings.Join([]string{propertyID, fmt.Sprintf("%d", expiresAt.Unix()), encodedTenant, signature}, ".")
	return token, expiresAt, nil
}

// Parse validates a token and returns the embedded property and tenant.
func (s *TokenSigner) Parse(token string) (propertyID, tenantID string, expiresAt time.Time, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", time.Time{}, fmt.Errorf("invalid token format")
	}
	propertyID = parts[0]
	ts := parts[1]
	encodedTenant := parts[2]
	signature := parts[3]

	rawTenant, err := base64.RawURLEncoding.DecodeString(encodedTenant)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode tenant: %w", err)
	}

	expUnix, err := parseUnix(ts)
	if err != nil {
		return "", "", time.Time{}, err
	}
	expiresAt = time.Unix(expUnix, 0)

	payload := fmt.Sprintf("%s|%s|%s", propertyID, ts, encodedTenant)
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", "", time.Time{}, fmt.Errorf("invalid token signature")
	}
	if time.Now().After(expiresAt) {
		return "", "", time.Time{}, fmt.Errorf("token expired")
	}
	return propertyID, string(rawTenant), expiresAt, nil
}

func parseUnix(raw string) (int64, error) {
	var ts int64
	_, err := fmt.Sscanf(raw, "%d", &ts)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp")
	}
	return ts, nil
}
