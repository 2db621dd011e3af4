package models

type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhaseReveal   Phase = "reveal"
	PhasePlaying  Phase = "playing"
	PhaseVoting   Phase = "voting"
	PhaseFinished Phase = "finished"
)

type Role string

const (
	RoleSpy      Role = "spy"
	RoleCivilian Role = "civilian"
)

// EndChoice is a rematch preference cast after a game ends.
type EndChoice string

const (
	EndSame EndChoice = "same"
	EndNew  EndChoice = "new"
)
