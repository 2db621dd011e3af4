package models

// Session identifies a participant across requests. It is created at login
// and resolved from the opaque playerId the client sends with every call.
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastSeen int64  `json:"lastSeen"`
}
