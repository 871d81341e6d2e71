package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle                UserState = "idle"
	StateWaitingPassword     UserState = "waiting_password"
	StateWaitingListName     UserState = "waiting_list_name"
	StateWaitingRename       UserState = "waiting_rename"
	StateWaitingWord         UserState = "waiting_word"
	StateWaitingMeaning      UserState = "waiting_meaning"
	StateWaitingEditWord     UserState = "waiting_edit_word"
	StateWaitingEditMeaning  UserState = "waiting_edit_meaning"
	StateWaitingReminderTime UserState = "waiting_reminder_time"
	StateQuizAnswer          UserState = "quiz_answer"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	ListID      int64
	WordID      int64
	CurrentWord string
	MessageID   int // For editing messages
}
