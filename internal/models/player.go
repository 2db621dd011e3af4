package models

// RoomPlayer is one participant inside a room. Role is empty until the game
// starts; the per-round flags are reset on every new round.
type RoomPlayer struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	IsReady           bool   `json:"isReady"`
	Role              Role   `json:"role,omitempty"`
	Eliminated        bool   `json:"eliminated"`
	LockedOutOfAsking bool   `json:"lockedOutOfAsking"`
	CalledVote        bool   `json:"calledVote"`
}
