package model

// Attempt is one answered prompt in a practice session.
type Attempt struct {
	SessionId  string `json:"sessionId"`
	ChordId    int    `json:"chordId"`
	ChordName  string `json:"chordName"`
	Difficulty string `json:"difficulty"`
	Correct    bool   `json:"correct"`

	// time from prompt to answer, in millis (32 bits is plenty)
	Millis uint32 `json:"millis"`
}

type SessionScore struct {
	SessionId   string    `json:"sessionId"`
	NumAttempts int       `json:"numAttempts"`
	NumCorrect  int       `json:"numCorrect"`
	Attempts    []Attempt `json:"attempts"`
}
