package constant

type ContextKey string

// ExternalUserIDKey carries the authenticated caller's auth-provider
// subject (user.external_id) through the request context.
const ExternalUserIDKey ContextKey = "external_user_id"
