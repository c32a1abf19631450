package auth

import "time"

// Claims is the identity carried by an issued token.
type Claims struct {
	UserID int64
	Admin  bool
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
