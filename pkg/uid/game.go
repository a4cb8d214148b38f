package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a match
func GenerateGameID() string {
	return uuid.NewString()
}

// ShortID is the first block of a game ID, enough to tell matches apart in logs
func ShortID(gameID string) string {
	if len(gameID) > 8 {
		return gameID[:8]
	}
	return gameID
}
