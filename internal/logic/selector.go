package logic

import "github.com/vlrstats/vct-collector/internal/vlr"

// SelectEvents keeps events belonging to the target season year. An event is
// kept when its start year or end year matches, or when it carries no dates at
// all (unknown is treated as relevant rather than dropped). If the filter
// would empty a non-empty listing, the original listing is returned unchanged
// and fellBack reports it: fetching something beats fetching nothing.
func SelectEvents(events []vlr.Event, year int) (selected []vlr.Event, fellBack bool) {
	var filtered []vlr.Event
	for _, ev := range events {
		startYear, hasStart := dateYear(ev.StartDate)
		endYear, hasEnd := dateYear(ev.EndDate)
		switch {
		case hasStart && startYear == year:
			filtered = append(filtered, ev)
		case hasEnd && endYear == year:
			filtered = append(filtered, ev)
		case !hasStart && !hasEnd:
			filtered = append(filtered, ev)
		}
	}

	if len(filtered) == 0 && len(events) > 0 {
		return events, true
	}
	return filtered, false
}

func dateYear(d *vlr.Date) (int, bool) {
	if d == nil || d.IsZero() {
		return 0, false
	}
	return d.Year(), true
}
