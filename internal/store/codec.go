package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/and161185/moment-keeper/internal/model"
)

// SchemaVersion is the current layout of the persisted moment sequence.
// Version 0 is the original bare JSON array.
const SchemaVersion = 1

// isoLayout is ISO-8601 with millisecond precision, as browsers write it.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t the way every stored date is written.
func FormatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ParseTime accepts RFC 3339 timestamps and date-only strings.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", s)
	}
	return t, nil
}

type isoTime time.Time

func (t isoTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatTime(time.Time(t)))
}

func (t *isoTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	v, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = isoTime(v)
	return nil
}

type momentRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        isoTime  `json:"date"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	IsPrivate   bool     `json:"isPrivate"`
}

type envelope struct {
	Version int            `json:"version"`
	Moments []momentRecord `json:"moments"`
}

func toRecord(m model.Moment) momentRecord {
	return momentRecord{
		ID:          m.ID,
		Title:       m.Title,
		Date:        isoTime(m.Date),
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Tags:        m.Tags,
		IsPrivate:   m.IsPrivate,
	}
}

func fromRecord(r momentRecord) model.Moment {
	return model.Moment{
		ID:          r.ID,
		Title:       r.Title,
		Date:        time.Time(r.Date),
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
		IsPrivate:   r.IsPrivate,
	}
}

// encodeMoments writes the current envelope version.
func encodeMoments(ms []model.Moment) (string, error) {
	env := envelope{Version: SchemaVersion, Moments: make([]momentRecord, 0, len(ms))}
	for _, m := range ms {
		env.Moments = append(env.Moments, toRecord(m))
	}
	b, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeMoments reads either the envelope or the legacy bare array.
func decodeMoments(s string) ([]model.Moment, error) {
	b := bytes.TrimSpace([]byte(s))
	var recs []momentRecord
	switch {
	case len(b) == 0:
		return nil, fmt.Errorf("empty value")
	case b[0] == '[':
		if err := json.Unmarshal(b, &recs); err != nil {
			return nil, err
		}
	case b[0] == '{':
		var env envelope
		if err := json.Unmarshal(b, &env); err != nil {
			return nil, err
		}
		if env.Version != SchemaVersion {
			return nil, fmt.Errorf("unsupported schema version %d", env.Version)
		}
		recs = env.Moments
	default:
		return nil, fmt.Errorf("unexpected leading byte %q", b[0])
	}

	out := make([]model.Moment, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromRecord(r))
	}
	return out, nil
}
