// Package models defines the profile, account, creator and session types
// shared by the PensUp client components.
package models

import (
	"strings"

	"github.com/pensup/pensup/internal/common"
)

// Field caps applied on every profile save. Tags beyond MaxTagCount are
// dropped, Name and Bio are truncated.
const (
	MaxNameLen  = 50
	MaxBioLen   = 150
	MaxTagCount = 5
)

// TagDisplaySeparator joins tag tokens for display; editing uses commas.
const TagDisplaySeparator = " · "

// Counts carries the public counters shown on a profile page.
type Counts struct {
	Works       uint `json:"works"`
	Followers   uint `json:"followers"`
	Subscribers uint `json:"subscribers"`
	Following   uint `json:"following"`
}

// ProfileRecord is the signed-in user's own editable profile. Every field
// has a total default (see EmptyProfile), so a loaded record is always
// fully populated: partial stored records merge over the defaults.
type ProfileRecord struct {
	Name       string `json:"name"`
	Tags       string `json:"tags"`
	Bio        string `json:"bio"`
	Avatar     string `json:"avatar"`
	Background string `json:"background"`
	Counts     Counts `json:"counts"`
}

// EmptyProfile returns the default record used when nothing is stored.
// The placeholder strings match what the profile page shows before the
// owner has written anything.
func EmptyProfile() ProfileRecord {
	return ProfileRecord{
		Name:       "",
		Tags:       "nothing · here · yet",
		Bio:        "nothing here yet",
		Avatar:     "",
		Background: "",
	}
}

// MergeDefaults fills any zero-valued text field of p from the defaults, so
// a partially stored record never surfaces with unset fields.
func (p ProfileRecord) MergeDefaults() ProfileRecord {
	defaults := EmptyProfile()
	if p.Tags == "" {
		p.Tags = defaults.Tags
	}
	if p.Bio == "" {
		p.Bio = defaults.Bio
	}
	return p
}

// Normalize applies the field caps: Name and Bio are truncated to their
// character limits and Tags is reduced to at most MaxTagCount tokens.
func (p ProfileRecord) Normalize() ProfileRecord {
	p.Name = common.TruncateRunes(strings.TrimSpace(p.Name), MaxNameLen)
	p.Bio = common.TruncateRunes(strings.TrimSpace(p.Bio), MaxBioLen)
	p.Tags = NormalizeTags(p.Tags)
	return p
}

// StripImages returns a copy without the two potentially oversized inline
// image fields. Used by the quota fallback on save.
func (p ProfileRecord) StripImages() ProfileRecord {
	p.Avatar = ""
	p.Background = ""
	return p
}

// NormalizeTags parses a comma-separated tag string, trims each token,
// drops empties, keeps at most MaxTagCount tokens and rejoins them in the
// comma-separated editing form.
func NormalizeTags(s string) string {
	tokens := SplitTags(s)
	return strings.Join(tokens, ", ")
}

// SplitTags returns the individual tag tokens of a comma-separated string,
// capped at MaxTagCount.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
		if len(tokens) == MaxTagCount {
			break
		}
	}
	return tokens
}

// DisplayTags joins the tag tokens with the display separator. A string
// with no commas (already display-formatted, like the defaults) is
// returned unchanged.
func DisplayTags(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	return strings.Join(SplitTags(s), TagDisplaySeparator)
}
