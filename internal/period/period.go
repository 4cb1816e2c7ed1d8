// Package period maps reporting-period selectors such as "thisMonth" or
// "lastQuarter" to concrete calendar filters. All calendar arithmetic is done
// in UTC.
package period

import "time"

// Selector names a reporting window.
type Selector string

const (
	All           Selector = "all"
	ThisMonth     Selector = "thisMonth"
	LastMonth     Selector = "lastMonth"
	ThisQuarter   Selector = "thisQuarter"
	LastQuarter   Selector = "lastQuarter"
	ThisYear      Selector = "thisYear"
	CustomMonth   Selector = "customMonth"
	CustomQuarter Selector = "customQuarter"
)

// ParseSelector maps raw query input to a Selector. Empty and unrecognised
// values resolve to All.
func ParseSelector(s string) Selector {
	switch sel := Selector(s); sel {
	case ThisMonth, LastMonth, ThisQuarter, LastQuarter, ThisYear, CustomMonth, CustomQuarter:
		return sel
	}
	return All
}

// Params is the caller-supplied period request.
type Params struct {
	Period  string `form:"period"`
	Year    *int   `form:"year"`
	Month   *int   `form:"month"`
	Quarter *int   `form:"quarter"`
}

// Filter is a resolved (year, month|quarter) constraint. Nil axes are
// unconstrained.
type Filter struct {
	Selector Selector `json:"period"`
	Year     *int     `json:"year,omitempty"`
	Month    *int     `json:"month,omitempty"`
	Quarter  *int     `json:"quarter,omitempty"`
}

// QuarterOf returns the calendar quarter (1-4) of a month (1-12).
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}

// Resolve maps params to a concrete filter relative to now.
func Resolve(p Params, now time.Time) Filter {
	now = now.UTC()
	year := now.Year()
	month := int(now.Month())
	quarter := QuarterOf(month)

	sel := ParseSelector(p.Period)
	switch sel {
	case ThisMonth:
		return monthFilter(sel, year, month)
	case LastMonth:
		y, m := previousMonth(year, month)
		return monthFilter(sel, y, m)
	case ThisQuarter:
		return quarterFilter(sel, year, quarter)
	case LastQuarter:
		y, q := previousQuarter(year, quarter)
		return quarterFilter(sel, y, q)
	case ThisYear:
		return Filter{Selector: sel, Year: intPtr(year)}
	case CustomMonth:
		return Filter{Selector: sel, Year: copyInt(p.Year), Month: copyInt(p.Month)}
	case CustomQuarter:
		return Filter{Selector: sel, Year: copyInt(p.Year), Quarter: copyInt(p.Quarter)}
	default:
		return Filter{Selector: All}
	}
}

// Previous returns the immediately preceding window of the same granularity.
// Only month and quarter selectors relative to now have one.
func (f Filter) Previous() (Filter, bool) {
	switch f.Selector {
	case ThisMonth, LastMonth:
		if f.Year == nil || f.Month == nil {
			return Filter{}, false
		}
		y, m := previousMonth(*f.Year, *f.Month)
		return monthFilter(CustomMonth, y, m), true
	case ThisQuarter, LastQuarter:
		if f.Year == nil || f.Quarter == nil {
			return Filter{}, false
		}
		y, q := previousQuarter(*f.Year, *f.Quarter)
		return quarterFilter(CustomQuarter, y, q), true
	}
	return Filter{}, false
}

// Matches reports whether t falls inside the filter.
func (f Filter) Matches(t time.Time) bool {
	t = t.UTC()
	if f.Year != nil && t.Year() != *f.Year {
		return false
	}
	if f.Month != nil && int(t.Month()) != *f.Month {
		return false
	}
	if f.Quarter != nil && QuarterOf(int(t.Month())) != *f.Quarter {
		return false
	}
	return true
}

// Bounds returns a half-open [start, end) window containing every instant the
// filter can match. ok is false when the year is unconstrained, in which case
// callers must scan without a range and rely on Matches.
func (f Filter) Bounds() (start, end time.Time, ok bool) {
	if f.Year == nil {
		return time.Time{}, time.Time{}, false
	}
	y := *f.Year
	switch {
	case f.Month != nil && *f.Month >= 1 && *f.Month <= 12:
		start = time.Date(y, time.Month(*f.Month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	case f.Quarter != nil && *f.Quarter >= 1 && *f.Quarter <= 4:
		start = time.Date(y, time.Month((*f.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, 0), true
	}
	start = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0), true
}

func monthFilter(sel Selector, year, month int) Filter {
	return Filter{Selector: sel, Year: intPtr(year), Month: intPtr(month)}
}

func quarterFilter(sel Selector, year, quarter int) Filter {
	return Filter{Selector: sel, Year: intPtr(year), Quarter: intPtr(quarter)}
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func previousQuarter(year, quarter int) (int, int) {
	if quarter == 1 {
		return year - 1, 4
	}
	return year, quarter - 1
}

func intPtr(v int) *int { return &v }

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	return intPtr(*p)
}
