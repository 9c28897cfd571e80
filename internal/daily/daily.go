// Package daily derives the game of the day. Game choice and RNG seed come
// deterministically from the calendar date, so every player who opens the
// arcade on the same day gets the same game with the same questions.
package daily

import (
	"fmt"
	"hash/fnv"
	"time"
)

// DayFormat is the calendar date layout shared by commands and storage.
const DayFormat = "2006-01-02"

// Today returns the current local date.
func Today() string {
	return time.Now().Format(DayFormat)
}

// Parse validates a user-supplied date and returns it normalized.
func Parse(day string) (string, error) {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return "", fmt.Errorf("daily: invalid date %q (want YYYY-MM-DD): %w", day, err)
	}
	return t.Format(DayFormat), nil
}

// hash mixes the day through FNV-1a. The salt keeps the stream stable and
// distinct from any other date-keyed hashing a host system might do.
func hash(day string) uint64 {
	h := fnv.New64a()
	h.Write([]byte("mathday:" + day))
	return h.Sum64()
}

// Seed returns the shared RNG seed for the given day.
func Seed(day string) int64 {
	return int64(hash(day) & 0x7fffffffffffffff)
}

// Pick returns which of ids is the game of the day. ids must be non-empty
// and identically ordered everywhere or the pick will not agree across
// machines; registry.List() already returns a sorted slice.
func Pick(day string, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[hash(day)%uint64(len(ids))]
}
