package context

import (
	"context"

	"github.com/mazhilunthu/car-marketplace/constant"
)

// GetExternalUserID returns the auth-provider subject of the caller, or
// false when the request is anonymous.
func GetExternalUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ExternalUserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
