package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns a dated entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLegID returns a leg ID like "T1a" (leg 0='a', 1='b', etc.).
func FormatLegID(entryID string, leg int) string {
	return entryID + legSuffix(leg)
}

func legSuffix(leg int) string {
	var b []byte
	for {
		b = append([]byte{byte('a' + leg%26)}, b...)
		leg = leg/26 - 1
		if leg < 0 {
			return string(b)
		}
	}
}

// LegIndex returns the zero-based position encoded in a leg ID's suffix.
// "T1a" -> 0, "T1c" -> 2, "T1aa" -> 26. ok is false when there is no suffix.
func LegIndex(legID string) (idx int, ok bool) {
	suffix := legID[len(EntryGroup(legID)):]
	if suffix == "" {
		return 0, false
	}
	n := 0
	for _, c := range suffix {
		n = n*26 + int(c-'a') + 1
	}
	return n - 1, true
}

// ParseEntryID parses a dated ID like "2025-01-001" or "2025-01-001a".
func ParseEntryID(id string) (year, month, seq int, err error) {
	base := EntryGroup(id)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid month in entry ID %q", id)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// NextSeq returns the next free sequence number for dated IDs in the given
// month. IDs that are not dated are ignored.
func NextSeq(ids []string, year, month int) int {
	next := 1
	for _, s := range ids {
		y, m, seq, err := ParseEntryID(s)
		if err != nil || y != year || m != month {
			continue
		}
		if seq >= next {
			next = seq + 1
		}
	}
	return next
}

// EntryGroup strips the leg suffix from a leg ID.
// "2025-01-001a" -> "2025-01-001"
func EntryGroup(legID string) string {
	i := len(legID)
	for i > 0 && legID[i-1] >= 'a' && legID[i-1] <= 'z' {
		i--
	}
	return legID[:i]
}
