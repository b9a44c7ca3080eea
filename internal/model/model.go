// Package model defines domain entities used by services, stores and transports.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DefaultAnniversaryName is shown when no anniversary label was saved.
const DefaultAnniversaryName = "Our Anniversary"

// Moment is a single recorded memory.
type Moment struct {
	ID          string    // opaque, generated at creation, immutable
	Title       string    // non-empty
	Date        time.Time // calendar date of the memory
	Description string    // non-empty at save time
	ImageURL    string
	Tags        []string // duplicates suppressed, insertion order kept
	IsPrivate   bool     // display hint only
}

// AnniversarySetting is the singleton target date and its label.
type AnniversarySetting struct {
	Date time.Time
	Name string
}

// Countdown is the remaining time split at unit boundaries.
// Hours, Minutes and Seconds are remainders within their parent unit.
type Countdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// IsZero reports whether the target has been reached.
func (c Countdown) IsZero() bool {
	return c == Countdown{}
}

// AnniversaryView is what the anniversary view renders.
type AnniversaryView struct {
	Setting        AnniversarySetting
	Saved          bool // false when the default policy produced Setting
	NextOccurrence time.Time
	YearsElapsed   int
	Countdown      Countdown
}

// Home is the landing view: a few moments plus the anniversary countdown.
type Home struct {
	Recent      []Moment
	Anniversary AnniversarySetting
	Saved       bool
	Countdown   Countdown
}

// Countdown targets of the live countdown view.
const (
	TargetAnniversary = "anniversary" // next occurrence of the saved anniversary
	TargetHome        = "home"        // the saved anniversary date itself
)

// SortMode selects the derived ordering of a moment view.
type SortMode string

// Supported sort modes.
const (
	SortNewest       SortMode = "newest"
	SortOldest       SortMode = "oldest"
	SortAlphabetical SortMode = "alphabetical"
)

// Identity is an authenticated user as reported by the identity provider.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Session mirrors the provider session. It is persisted by the provider adapter only.
type Session struct {
	User         Identity
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the access token is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return s.AccessToken == "" || !now.Before(s.ExpiresAt)
}
