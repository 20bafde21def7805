package ports

import "context"

// KV is the namespaced JSON-blob persistence facade. Each entity collection
// lives wholesale under one fixed key.
//
// Get unmarshals the blob stored at key into dest. A missing key or a blob
// that fails to unmarshal leaves dest untouched — callers pre-load dest with
// their default — and is not an error. Only transport failures are returned,
// and repositories degrade those to the same default rather than propagating.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}
