package dto

type LoginRequest struct {
	Name string `json:"name"`
}

// RoomSettingsRequest covers both room creation and the host's settings
// update: pointers distinguish "absent" from zero so absent fields keep
// their defaults (create) or current values (update).
type RoomSettingsRequest struct {
	SpyCount     *int     `json:"spyCount"`
	TimerMinutes *int     `json:"timerMinutes"`
	Locations    []string `json:"locations"`
}

type ReadyRequest struct {
	Ready bool `json:"ready"`
}

type QuestionRequest struct {
	TargetID string `json:"targetId"`
	Question string `json:"question"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type VoteRequest struct {
	TargetID string `json:"targetId"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type EndVoteRequest struct {
	Choice string `json:"choice"`
}
