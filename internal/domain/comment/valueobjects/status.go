package valueobjects

import "strings"

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

var validStatuses = map[Status]bool{
	StatusOpen:     true,
	StatusResolved: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Filter selects comments by status on list views.
type Filter string

const (
	FilterOpen     Filter = "open"
	FilterResolved Filter = "resolved"
	FilterAll      Filter = "all"
)

// ParseFilter accepts any case and surrounding whitespace; unknown values
// fall back to FilterOpen.
func ParseFilter(raw string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterOpen, FilterResolved, FilterAll:
		return f
	default:
		return FilterOpen
	}
}

func (f Filter) String() string {
	return string(f)
}

// Status returns the single status the filter matches. ok is false for
// FilterAll.
func (f Filter) Status() (Status, bool) {
	switch f {
	case FilterResolved:
		return StatusResolved, true
	case FilterAll:
		return "", false
	default:
		return StatusOpen, true
	}
}
