package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated caller's user id, as extracted from
// a verified bearer token by AuthnMiddleware.
const CtxKeyUserID ctxKey = "user_id"

// CallerID returns the authenticated user id from the request context, or
// empty when the request was not authenticated.
func CallerID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
