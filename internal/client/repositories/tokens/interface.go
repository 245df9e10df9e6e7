// Package tokens provides durable client-side key-value storage for
// session credentials, the cookie analog of the browser client.
package tokens

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
