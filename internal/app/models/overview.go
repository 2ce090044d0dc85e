package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// CountKind tells whether a CourseCount holds a real number.
type CountKind int

const (
	// CountFinite is a real row count
	CountFinite CountKind = iota
	// CountInfinite marks a catalog treated as unbounded (YouTube)
	CountInfinite
)

// infiniteLiteral is how CountInfinite is rendered on the wire
const infiniteLiteral = "inf"

// CourseCount is the number of known courses for one source.
type CourseCount struct {
	Kind  CountKind
	Value int64
}

// FiniteCount returns a count of n courses
func FiniteCount(n int64) CourseCount {
	return CourseCount{Kind: CountFinite, Value: n}
}

// InfiniteCount returns the unbounded sentinel
func InfiniteCount() CourseCount {
	return CourseCount{Kind: CountInfinite}
}

// IsInfinite reports whether c is the unbounded sentinel
func (c CourseCount) IsInfinite() bool {
	return c.Kind == CountInfinite
}

// String implements fmt.Stringer
func (c CourseCount) String() string {
	if c.IsInfinite() {
		return infiniteLiteral
	}
	return strconv.FormatInt(c.Value, 10)
}

// MarshalJSON renders finite counts as numbers and the sentinel as "inf"
func (c CourseCount) MarshalJSON() ([]byte, error) {
	if c.IsInfinite() {
		return []byte(strconv.Quote(infiniteLiteral)), nil
	}
	return []byte(strconv.FormatInt(c.Value, 10)), nil
}

// UnmarshalJSON accepts a JSON number or the string "inf"
func (c *CourseCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == strconv.Quote(infiniteLiteral) {
		*c = InfiniteCount()
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid course count %s: %w", data, err)
	}
	*c = FiniteCount(n)
	return nil
}

// SourceCounts holds the per-source course counts reported by the overview endpoints.
type SourceCounts struct {
	Coursera CourseCount
	Udacity  CourseCount
	YouTube  CourseCount
}
