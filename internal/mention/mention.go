// Package mention extracts @-mentions from chat message text and resolves
// them against the participant list of the chat.
package mention

import (
	"regexp"
	"strings"

	"github.com/aliskhannn/chat-notifier/internal/model"
)

var (
	// An @ sign, optional whitespace, then 1-50 name characters.
	namePattern = regexp.MustCompile(`@\s?([\w. -]{1,50})`)

	trailingPunct = regexp.MustCompile(`[.,!?;:()]+$`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// Set holds the mention decision for one message.
type Set struct {
	// IDs are the resolved mentioned participant ids in order of resolution.
	// When the client supplied explicit ids they are taken verbatim; otherwise
	// they are derived from parsed name fragments.
	IDs []string

	// Names are the normalized name fragments parsed from the message text.
	Names []string

	ids map[string]struct{}
}

// Contains reports whether the participant id is mentioned.
func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Empty reports whether the message mentions anyone.
func (s *Set) Empty() bool {
	return len(s.IDs) == 0
}

// Normalize lowercases a name fragment, strips trailing punctuation and
// collapses whitespace runs. Applying it twice yields the same result.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = trailingPunct.ReplaceAllString(n, "")
	n = spaceRun.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// ParseNames scans the whole message for @-tokens and returns the normalized
// name fragments in order of appearance, without duplicates.
func ParseNames(message string) []string {
	matches := namePattern.FindAllStringSubmatch(message, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))

	for _, m := range matches {
		n := Normalize(m[1])
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}

	return names
}

// Resolve computes the mention set for a message. Explicit ids supplied by the
// client are authoritative when present; name fragments parsed from the text
// are used to derive mentioned ids only when the explicit list is empty.
//
// A derived match requires the participant's normalized name and a parsed
// fragment to extend each other as prefixes: "@John" matches "John Smith",
// and because fragments run greedily past spaces, the fragment
// "bob please check this" still matches "Bob".
func Resolve(message string, explicitIDs []string, participants []model.Participant) *Set {
	s := &Set{
		Names: ParseNames(message),
		ids:   make(map[string]struct{}),
	}

	for _, id := range explicitIDs {
		if id == "" {
			continue
		}
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		s.IDs = append(s.IDs, id)
	}

	if len(s.IDs) > 0 || len(s.Names) == 0 {
		return s
	}

	for _, p := range participants {
		name := Normalize(p.Name)
		if name == "" {
			continue
		}

		for _, frag := range s.Names {
			if !strings.HasPrefix(name, frag) && !strings.HasPrefix(frag, name) {
				continue
			}
			if _, ok := s.ids[p.UserID]; !ok {
				s.ids[p.UserID] = struct{}{}
				s.IDs = append(s.IDs, p.UserID)
			}
			break
		}
	}

	return s
}

// FirstMentionName returns the display name of the first mentioned person,
// prefixed with "@", for use in notification copy shown to non-mentioned
// recipients. It prefers the participant behind the first resolved id and
// falls back to matching parsed fragments against participant names, this
// time also by substring. Returns "@someone" when no name can be resolved,
// and "" when nobody is mentioned at all.
func FirstMentionName(s *Set, participants []model.Participant) string {
	if len(s.IDs) == 0 && len(s.Names) == 0 {
		return ""
	}

	for _, id := range s.IDs {
		for _, p := range participants {
			if p.UserID != id {
				continue
			}
			if name := displayName(p.Name); name != "" {
				return "@" + name
			}
		}
	}

	for _, p := range participants {
		name := Normalize(p.Name)
		if name == "" {
			continue
		}
		for _, frag := range s.Names {
			if strings.Contains(name, frag) || strings.Contains(frag, name) {
				if raw := displayName(p.Name); raw != "" {
					return "@" + raw
				}
			}
		}
	}

	return "@someone"
}

// displayName strips trailing punctuation from a raw participant name.
func displayName(name string) string {
	return trailingPunct.ReplaceAllString(strings.TrimSpace(name), "")
}
