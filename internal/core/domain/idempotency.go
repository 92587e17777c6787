package domain

import "context"

type idempotencyKeyCtx struct{}

// WithIdempotencyKey pins the Idempotency-Key sent with billing writes made
// under ctx.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// IdempotencyKeyFrom returns the key stored by WithIdempotencyKey.
func IdempotencyKeyFrom(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtx{}).(string)
	return key, ok && key != ""
}
