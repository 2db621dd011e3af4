package models

type TurnStatus string

const (
	TurnAwaitingQuestion TurnStatus = "awaiting-question"
	TurnAwaitingAnswer   TurnStatus = "awaiting-answer"
	TurnResolved         TurnStatus = "resolved"
)

// TurnState is one question/answer exchange. Only the latest turn is kept;
// its text is mirrored into the chat log for history.
type TurnState struct {
	AskerID            string     `json:"askerId"`
	AskWindowEndsAt    int64      `json:"askWindowEndsAt"`
	TargetID           string     `json:"targetId,omitempty"`
	Question           string     `json:"question,omitempty"`
	Answer             string     `json:"answer,omitempty"`
	AnswerWindowEndsAt int64      `json:"answerWindowEndsAt,omitempty"`
	Status             TurnStatus `json:"status"`
}
