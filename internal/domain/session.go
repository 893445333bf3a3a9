package domain

import "time"

const (
	DefaultFatwaLimit    = 5
	DefaultQuestionLimit = 10
)

// Role is the access level of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Language selects the template set and the answer language
type Language string

const (
	LanguageIndonesian Language = "id"
	LanguageEnglish    Language = "en"
	LanguageArabic     Language = "ar"
)

// Languages lists the supported locales in menu order
var Languages = []Language{LanguageIndonesian, LanguageEnglish, LanguageArabic}

// Valid reports whether the language is supported
func (l Language) Valid() bool {
	switch l {
	case LanguageIndonesian, LanguageEnglish, LanguageArabic:
		return true
	}
	return false
}

// CompletionName returns the natural-language name sent to the completion service
func (l Language) CompletionName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageArabic:
		return "Arabic"
	default:
		return "Indonesian"
	}
}

// QuotaKind identifies one of the daily counters
type QuotaKind string

const (
	QuotaFatwa    QuotaKind = "fatwa"
	QuotaQuestion QuotaKind = "question"
)

// Session is the per-user record kept for the lifetime of the process
type Session struct {
	UserID   int64
	Username string
	Role     Role

	Registered bool
	Blocked    bool
	Unlimited  bool

	FatwaLimit    int
	QuestionLimit int
	FatwaUsed     int
	QuestionUsed  int

	Language         Language
	AwaitingQuestion bool
	LastReset        Day
	CreatedAt        time.Time
}

// NewSession builds the default record for a first contact.
// The privileged id is the only one that gets the admin role and unlimited access.
func NewSession(userID int64, username string, adminID int64, now time.Time) Session {
	isAdmin := adminID != 0 && userID == adminID

	role := RoleUser
	if isAdmin {
		role = RoleAdmin
	}

	return Session{
		UserID:        userID,
		Username:      username,
		Role:          role,
		Unlimited:     isAdmin,
		FatwaLimit:    DefaultFatwaLimit,
		QuestionLimit: DefaultQuestionLimit,
		Language:      LanguageIndonesian,
		LastReset:     DayOf(now),
		CreatedAt:     now,
	}
}

// IsAdmin reports whether the session belongs to the privileged operator
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Handle returns the display handle used in listings
func (s Session) Handle() string {
	if s.Username == "" {
		return "@-"
	}
	return "@" + s.Username
}
