package usercontext

// Session and Locals keys shared by the middleware, the controllers
// and the login flow.
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
	KeyIsAdmin       = "is_admin"
	KeyFromProtected = "from_protected"
)
