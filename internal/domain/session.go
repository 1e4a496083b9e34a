package domain

import "strings"

type Credentials struct {
	Email    string
	Password string
}

// Session holds the source API credential pair. RefreshToken is opaque and is
// sent back to the source exactly as it was issued.
type Session struct {
	AccessToken  string
	RefreshToken string
}

func (s Session) Active() bool {
	return strings.TrimSpace(s.AccessToken) != "" && strings.TrimSpace(s.RefreshToken) != ""
}
