package contextkeys

// ContextKey is the type used for values shared through request contexts.
type ContextKey string

// UserIDContextKey carries the authenticated user id set by the auth middleware.
const UserIDContextKey ContextKey = "userID"
