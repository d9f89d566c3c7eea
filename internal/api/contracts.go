package api

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userIDResponse struct {
	UserID string `json:"userId"`
}

type createNoteRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type createNoteResponse struct {
	NoteID int64 `json:"noteId"`
}

type noteResponse struct {
	NoteID             int64  `json:"noteId"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	CreatedAtTimestamp int64  `json:"createdAtTimestamp"`
}

type updateNoteRequest struct {
	NoteID  int64   `json:"noteId" validate:"required"`
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type updateNoteResponse struct {
	NoteID  int64   `json:"noteId"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
