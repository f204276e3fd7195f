// Package catalog holds the game-catalog domain: entities, the provider
// ports, and the service consumed by the HTTP layer.
package catalog

import (
	"time"
)

// Date is a calendar date with day granularity. It marshals as "2006-01-02".
type Date struct {
	time.Time
}

// DateFromUnix converts upstream unix seconds to a UTC calendar date,
// discarding the time of day.
func DateFromUnix(sec int64) Date {
	t := time.Unix(sec, 0).UTC()
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Game is a catalog record mapped from the upstream wire shape.
// List fields are always non-nil, empty when the upstream omits them.
type Game struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Summary       string   `json:"summary,omitempty"`
	Storyline     string   `json:"storyline,omitempty"`
	ReleaseDate   *Date    `json:"release_date,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	Platforms     []string `json:"platforms"`
	Genres        []string `json:"genres"`
	Videos        []string `json:"videos"`
	Screenshots   []string `json:"screenshots"`
	Artworks      []string `json:"artworks"`
}

// PlatformType is the closed platform classification.
type PlatformType string

const (
	PlatformUnknown         PlatformType = "UNKNOWN"
	PlatformConsole         PlatformType = "CONSOLE"
	PlatformArcade          PlatformType = "ARCADE"
	PlatformPlatform        PlatformType = "PLATFORM"
	PlatformOperatingSystem PlatformType = "OPERATING_SYSTEM"
	PlatformPortableConsole PlatformType = "PORTABLE_CONSOLE"
	PlatformComputer        PlatformType = "COMPUTER"
)

// PlatformTypeFromCode maps an upstream category code to the enumeration.
// Unrecognized codes map to PlatformUnknown, never an error.
func PlatformTypeFromCode(code int) PlatformType {
	switch code {
	case 1:
		return PlatformConsole
	case 2:
		return PlatformArcade
	case 3:
		return PlatformPlatform
	case 4:
		return PlatformOperatingSystem
	case 5:
		return PlatformPortableConsole
	case 6:
		return PlatformComputer
	default:
		return PlatformUnknown
	}
}

// Platform is a gaming platform record.
type Platform struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Generation *int         `json:"generation,omitempty"`
	Type       PlatformType `json:"platform_type"`
}

// Page is a slice of results with pagination metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage builds a Page. Total pages derive from the total element count,
// not from the content length; size <= 0 yields zero pages.
func NewPage[T any](content []T, page, size int, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
