package port

type Authorizer interface {
	// IsAdmin reports whether the user may run admin-only commands.
	IsAdmin(userID string) bool
}
