package model

// Bubble Tea message types

// ErrorMsg carries a failure from an async command with no better home.
type ErrorMsg struct {
	Err error
}

// SessionVerifiedMsg is sent when a stored token maps to an admin user.
type SessionVerifiedMsg struct {
	User User
}

// AuthFailedMsg is sent when session verification fails. Discard marks
// tokens that are no longer usable (expired, revoked, or not admin) so
// the stored session gets cleared.
type AuthFailedMsg struct {
	Message string
	Discard bool
}

// LoginResultMsg is sent when a login call completes. The admin-role check
// happens in the update loop so a non-admin token is never persisted.
type LoginResultMsg struct {
	Token string
	User  User
	Err   error
}

// LoggedOutMsg is sent once local session state has been cleared.
type LoggedOutMsg struct{}

// QueueLoadedMsg is sent when the review queue is (re)loaded.
type QueueLoadedMsg struct {
	Seq   int
	Queue ReviewQueue
	Err   error
}

// ActivityLoadedMsg is sent when a page of the activity log is loaded.
type ActivityLoadedMsg struct {
	Seq     int
	Page    int
	Filters ActivityFilters
	Actions []ModerationAction
	Meta    PaginationMeta
	Err     error
}

// LiveListingsLoadedMsg is sent when a page of live listings is loaded.
type LiveListingsLoadedMsg struct {
	Seq      int
	Page     int
	Listings []LiveListing
	Meta     PaginationMeta
	Err      error
}

// MutationDoneMsg is sent when a moderation mutation settles, success or
// not. Key is the in-flight action key; NoteKey locates the note draft to
// discard on success.
type MutationDoneMsg struct {
	Key     string
	NoteKey string
	Err     error
}

// PreviewLoadedMsg is sent when a listing preview fetch settles.
type PreviewLoadedMsg struct {
	Origin PreviewOrigin
	Data   *PreviewData
	Err    error
}
