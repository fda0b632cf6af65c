package constants

// Session
const (
	SessionName      = "ops_session"
	SessionMaxAge    = 86400 * 7 // 7 days
	ContextKeyUserID = "user_id"
)

// Auth
const MinPasswordLength = 8

// Listing routes whose cached renders are revalidated after mutations.
const (
	RouteDashboard = "/dashboard"
	RouteClients   = "/dashboard/clients"
	RouteTasks     = "/dashboard/tasks"
	RouteTeam      = "/dashboard/team"
)
