package domain

import (
	"fmt"
	"strings"
)

// Quality is the human-facing recall rating that drives the scheduler.
type Quality string

// Possible quality values
const (
	QualityAgain Quality = "again"
	QualityHard  Quality = "hard"
	QualityGood  Quality = "good"
	QualityEasy  Quality = "easy"
)

// qualityGrades maps every quality rating to its SM-2 numeric grade.
// Adding a rating means adding exactly one row here.
var qualityGrades = map[Quality]int{
	QualityAgain: 1,
	QualityHard:  3,
	QualityGood:  4,
	QualityEasy:  5,
}

// Qualities lists the ratings in ascending order of recall strength.
func Qualities() []Quality {
	return []Quality{QualityAgain, QualityHard, QualityGood, QualityEasy}
}

// Grade returns the SM-2 numeric grade for q.
func (q Quality) Grade() (int, error) {
	grade, ok := qualityGrades[q]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, string(q))
	}
	return grade, nil
}

// Valid reports whether q is a known rating.
func (q Quality) Valid() bool {
	_, ok := qualityGrades[q]
	return ok
}

// String implements fmt.Stringer.
func (q Quality) String() string {
	return string(q)
}

// ParseQuality converts raw input (case-insensitive, surrounding whitespace
// ignored) into a Quality.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
	return q, nil
}
