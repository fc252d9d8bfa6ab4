package model

type CheckRequestBody struct {
	Notes       []NoteString `json:"notes"`
	TargetNotes []NoteString `json:"targetNotes,omitempty"`
	TargetId    *int         `json:"targetId,omitempty"`
}

type CheckResponse struct {
	Match bool `json:"match"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
