package models

type Settings struct {
	SpyCount     int      `json:"spyCount"`
	TimerMinutes int      `json:"timerMinutes"`
	Locations    []string `json:"locations"`
}

var DefaultLocations = []string{
	"Hospital",
	"School",
	"Police Station",
	"Supermarket",
	"Cinema",
	"Restaurant",
	"Hotel",
	"Bank",
	"Airplane",
	"Library",
}

func DefaultSettings() Settings {
	return Settings{
		SpyCount:     1,
		TimerMinutes: 10,
		Locations:    DefaultLocations,
	}
}

func ClampSpyCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 2 {
		return 2
	}
	return n
}

func ClampTimerMinutes(n int) int {
	if n < 5 {
		return 5
	}
	if n > 25 {
		return 25
	}
	return n
}
