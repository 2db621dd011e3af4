package game

import (
	"time"

	"github.com/thereayou/spyfall-lite/internal/models"
)

// ChatTail limits how much of the chat log a snapshot carries.
const ChatTail = 40

type PlayerView struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	IsReady           bool        `json:"isReady"`
	Eliminated        bool        `json:"eliminated"`
	LockedOutOfAsking bool        `json:"lockedOutOfAsking"`
	CalledVote        bool        `json:"calledVote"`
	IsHost            bool        `json:"isHost"`
	Role              models.Role `json:"role,omitempty"`
}

type TurnView struct {
	models.TurnState
	RemainingMs int64 `json:"remainingMs"`
}

// RoomView is the viewer-scoped snapshot returned by every endpoint.
// Deadlines are absolute unix milliseconds; the client derives countdowns as
// deadline minus its own clock.
type RoomView struct {
	Code           string                      `json:"code"`
	Phase          models.Phase                `json:"phase"`
	Settings       models.Settings             `json:"settings"`
	Players        []PlayerView                `json:"players"`
	YourRole       models.Role                 `json:"yourRole,omitempty"`
	Location       string                      `json:"location,omitempty"`
	RevealEndsAt   int64                       `json:"revealEndsAt,omitempty"`
	TimerEndsAt    int64                       `json:"timerEndsAt,omitempty"`
	SpiesRemaining int                         `json:"spiesRemaining"`
	Turn           *TurnView                   `json:"turn"`
	Chat           []models.ChatMessage        `json:"chat"`
	VoteEndsAt     int64                       `json:"voteEndsAt,omitempty"`
	LastVote       *models.LastVote            `json:"lastVote,omitempty"`
	EndVotes       map[string]models.EndChoice `json:"endVotes"`
	Winner         models.Role                 `json:"winner,omitempty"`
	ClosedReason   string                      `json:"closedReason,omitempty"`
}

// Snapshot progresses the room, then projects it for one viewer. Roles stay
// hidden from everyone but the viewer until the game finishes, when spy
// identities become public; the secret location is shown only to a civilian
// viewer.
func Snapshot(room *models.Room, viewerID string, now time.Time) RoomView {
	Progress(room, now)

	ms := now.UnixMilli()
	viewer := room.FindPlayer(viewerID)

	players := make([]PlayerView, len(room.Players))
	for i, p := range room.Players {
		var role models.Role
		switch {
		case p.ID == viewerID && room.Phase != models.PhaseLobby:
			role = p.Role
		case room.Phase == models.PhaseFinished && room.IsSpy(p.ID):
			role = models.RoleSpy
		}
		players[i] = PlayerView{
			ID:                p.ID,
			Name:              p.Name,
			IsReady:           p.IsReady,
			Eliminated:        p.Eliminated,
			LockedOutOfAsking: p.LockedOutOfAsking,
			CalledVote:        p.CalledVote,
			IsHost:            room.HostID == p.ID,
			Role:              role,
		}
	}

	var yourRole models.Role
	location := ""
	if viewer != nil {
		yourRole = viewer.Role
		if viewer.Role == models.RoleCivilian {
			location = room.Location
		}
	}

	var turn *TurnView
	if room.Turn != nil {
		remaining := int64(0)
		switch {
		case room.Turn.Status == models.TurnAwaitingQuestion:
			remaining = room.Turn.AskWindowEndsAt - ms
		case room.Turn.AnswerWindowEndsAt != 0:
			remaining = room.Turn.AnswerWindowEndsAt - ms
		}
		if remaining < 0 {
			remaining = 0
		}
		turn = &TurnView{TurnState: *room.Turn, RemainingMs: remaining}
	}

	chatStart := 0
	if len(room.Chat) > ChatTail {
		chatStart = len(room.Chat) - ChatTail
	}
	chat := append([]models.ChatMessage(nil), room.Chat[chatStart:]...)

	endVotes := room.EndVotes
	if endVotes == nil {
		endVotes = map[string]models.EndChoice{}
	}

	spies := room.AliveSpies()

	return RoomView{
		Code:           room.Code,
		Phase:          room.Phase,
		Settings:       room.Settings,
		Players:        players,
		YourRole:       yourRole,
		Location:       location,
		RevealEndsAt:   room.RevealEndsAt,
		TimerEndsAt:    room.TimerEndsAt,
		SpiesRemaining: spies,
		Turn:           turn,
		Chat:           chat,
		VoteEndsAt:     room.VoteEndsAt,
		LastVote:       room.LastVote,
		EndVotes:       endVotes,
		Winner:         room.Winner,
		ClosedReason:   room.ClosedReason,
	}
}
