package ports

import "context"

// SecretStore resolves credential references such as "airella/password".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
}
