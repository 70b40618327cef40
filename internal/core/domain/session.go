package domain

import "time"

// Modes a user can log in as. The mode gates navigation only; the commute
// API decides what the bearer token may actually do.
const (
	RoleAdmin    = "admin"
	RoleCommuter = "commuter"
)

// Keys held in a session's key-value store.
const (
	KeyToken     = "token"
	KeyMode      = "mode"
	KeyPoolIDs   = "fleet_demo_rewards_pool_members"
	KeyUsername  = "username"
	KeyExpiresAt = "expires_at"
)

// ValidMode reports whether mode is one of the supported login modes.
func ValidMode(mode string) bool {
	return mode == RoleAdmin || mode == RoleCommuter
}

// Session describes an authenticated console session.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Mode      string    `json:"mode"`
	ExpiresAt time.Time `json:"expires_at"`
}
