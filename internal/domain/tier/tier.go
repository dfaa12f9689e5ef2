package tier

import "strings"

// Level is the semantic tier level. Raw tier strings from the database
// collapse onto three levels; ordering is linear.
type Level int

const (
	LevelFree     Level = 0
	LevelVisible  Level = 1
	LevelVerified Level = 2
)

// Canonical raw spellings used when writing tiers
const (
	RawFree     = "free"
	RawListed   = "listed"
	RawBasic    = "basic"
	RawVisible  = "visible"
	RawManaged  = "managed"
	RawVerified = "verified"
)

var rawLevels = map[string]Level{
	RawFree:     LevelFree,
	RawListed:   LevelFree,
	RawBasic:    LevelVisible,
	RawVisible:  LevelVisible,
	RawManaged:  LevelVerified,
	RawVerified: LevelVerified,
}

// Normalize maps a raw tier string to its level. Total: unknown or
// empty input defaults to the free level.
func Normalize(raw string) Level {
	if level, ok := rawLevels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level
	}
	return LevelFree
}

// HasAccess reports whether a vendor on currentRaw satisfies a feature
// requiring requiredRaw.
func HasAccess(currentRaw, requiredRaw string) bool {
	return Normalize(currentRaw) >= Normalize(requiredRaw)
}

// Label returns the display name for a raw tier
func Label(raw string) string {
	switch Normalize(raw) {
	case LevelVerified:
		return "Verified"
	case LevelVisible:
		return "Visible"
	default:
		return "Listed (Free)"
	}
}

// Canonical returns the canonical raw spelling for the level of a raw tier
func Canonical(raw string) string {
	switch Normalize(raw) {
	case LevelVerified:
		return RawVerified
	case LevelVisible:
		return RawVisible
	default:
		return RawFree
	}
}

// IsKnown reports whether raw is one of the recognized tier spellings.
// Used to validate admin tier updates; Normalize itself never rejects.
func IsKnown(raw string) bool {
	_, ok := rawLevels[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
