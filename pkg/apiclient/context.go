package apiclient

import "context"

type requestIDKey struct{}

// WithRequestID, context'e bir correlation id ekler. Client bu id'yi
// X-Request-ID header'ı olarak backend'e iletir.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom, context'teki correlation id'yi döner (yoksa "").
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
