package order

import (
	"strings"

	"classicmodels/internal/shared/query"
)

// Criteria describes an order lookup: an optional status set, an optional
// customer name, an ordering and a row cap. Predicates are ANDed.
//
// A status filter with an empty set matches nothing.
type Criteria struct {
	statuses     []string
	statusFilter bool
	customerName string
	customerSet  bool
	sort         query.Sort
	limit        int
}

// All matches every order.
func All() Criteria {
	return Criteria{}
}

// ByStatus matches orders whose status equals s, ignoring case.
func ByStatus(s Status) Criteria {
	return ByStatusIn(s)
}

// ByStatusOr matches orders in either status.
func ByStatusOr(a, b Status) Criteria {
	return ByStatusIn(a, b)
}

// ByStatusIn matches orders whose status is any of statuses.
func ByStatusIn(statuses ...Status) Criteria {
	return Criteria{}.WithStatuses(statuses...)
}

// ByCustomerName matches orders placed by the customer with that exact name.
// Unlike status, the name is compared case-sensitively.
func ByCustomerName(name string) Criteria {
	return Criteria{}.WithCustomerName(name)
}

// WithStatuses restricts the criteria to the given statuses. Values are
// trimmed, blanks dropped and case-insensitive duplicates collapsed; the
// first spelling wins. Folding for the match itself is left to the store so
// both sides of the comparison fold the same way.
func (c Criteria) WithStatuses(statuses ...Status) Criteria {
	seen := make(map[string]struct{}, len(statuses))
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		trimmed := strings.TrimSpace(string(s))
		if trimmed == "" {
			continue
		}
		f := s.Folded()
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		values = append(values, trimmed)
	}
	c.statuses = values
	c.statusFilter = true
	return c
}

// WithCustomerName restricts the criteria to one customer name.
func (c Criteria) WithCustomerName(name string) Criteria {
	c.customerName = name
	c.customerSet = true
	return c
}

// OrderBy sets the result ordering.
func (c Criteria) OrderBy(sort query.Sort) Criteria {
	c.sort = sort
	return c
}

// Top caps the number of returned rows.
func (c Criteria) Top(n int) Criteria {
	c.limit = n
	return c
}

// Statuses returns the trimmed status set and whether a status filter applies.
func (c Criteria) Statuses() ([]string, bool) {
	return c.statuses, c.statusFilter
}

// CustomerName returns the customer name and whether it applies.
func (c Criteria) CustomerName() (string, bool) {
	return c.customerName, c.customerSet
}

func (c Criteria) Sort() query.Sort {
	return c.sort
}

func (c Criteria) Limit() int {
	return c.limit
}

// MatchesNothing reports whether the criteria can be answered without a
// query: an empty status set.
func (c Criteria) MatchesNothing() bool {
	return c.statusFilter && len(c.statuses) == 0
}
