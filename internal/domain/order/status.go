package order

import (
	"strings"

	"golang.org/x/text/cases"
)

// Status is the free-text fulfilment state of an order. The store does not
// constrain it, so unknown values are carried as-is.
type Status string

const (
	StatusShipped   Status = "Shipped"
	StatusResolved  Status = "Resolved"
	StatusCancelled Status = "Cancelled"
	StatusOnHold    Status = "On Hold"
	StatusDisputed  Status = "Disputed"
	StatusInProcess Status = "In Process"
)

var knownStatuses = []Status{
	StatusShipped,
	StatusResolved,
	StatusCancelled,
	StatusOnHold,
	StatusDisputed,
	StatusInProcess,
}

func (s Status) String() string {
	return string(s)
}

// Folded returns the case-folded form used for matching. A Caser is not
// safe for concurrent use, so one is built per call.
func (s Status) Folded() string {
	return cases.Fold().String(strings.TrimSpace(string(s)))
}

// Matches reports whether two statuses are equal ignoring case.
func (s Status) Matches(other Status) bool {
	return s.Folded() == other.Folded()
}

// IsKnown reports whether s belongs to the usual vocabulary, ignoring case.
func (s Status) IsKnown() bool {
	for _, k := range knownStatuses {
		if s.Matches(k) {
			return true
		}
	}
	return false
}

// Canonical returns the vocabulary spelling of s, or s unchanged when unknown.
func (s Status) Canonical() Status {
	for _, k := range knownStatuses {
		if s.Matches(k) {
			return k
		}
	}
	return s
}

// KnownStatuses lists the usual vocabulary.
func KnownStatuses() []Status {
	out := make([]Status, len(knownStatuses))
	copy(out, knownStatuses)
	return out
}
