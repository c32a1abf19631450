package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates signed auth token carrying user id and admin flag.
func (s *HMACStrategy) IssueToken(claims Claims) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	admin := 0
	if claims.Admin {
		admin = 1
	}
	payload := fmt.Sprintf("%d:%d:%d", claims.UserID, admin, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns encoded claims.
func (s *HMACStrategy) ParseToken(token string) (Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return Claims{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return Claims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	admin, err := strconv.Atoi(parts[1])
	if err != nil || (admin != 0 && admin != 1) {
		return Claims{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Admin: admin == 1}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
