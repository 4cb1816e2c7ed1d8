package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func intp(v int) *int { return &v }

func assertFilter(t *testing.T, f Filter, year int, month, quarter *int) {
	t.Helper()
	if f.Year == nil || *f.Year != year {
		t.Fatalf("expected year %d, got %v", year, f.Year)
	}
	switch {
	case month == nil && f.Month != nil:
		t.Errorf("expected no month, got %d", *f.Month)
	case month != nil && (f.Month == nil || *f.Month != *month):
		t.Errorf("expected month %d, got %v", *month, f.Month)
	}
	switch {
	case quarter == nil && f.Quarter != nil:
		t.Errorf("expected no quarter, got %d", *f.Quarter)
	case quarter != nil && (f.Quarter == nil || *f.Quarter != *quarter):
		t.Errorf("expected quarter %d, got %v", *quarter, f.Quarter)
	}
}

func TestResolve(t *testing.T) {
	mid := FixedClock{At: date(2024, time.March, 15)}
	jan := FixedClock{At: date(2024, time.January, 15)}

	t.Run("this_month", func(t *testing.T) {
		f := Resolve(Params{Period: "thisMonth"}, mid.Now())
		assertFilter(t, f, 2024, intp(3), nil)
		if f.Selector != ThisMonth {
			t.Errorf("expected selector echo thisMonth, got %s", f.Selector)
		}
	})

	t.Run("last_month", func(t *testing.T) {
		assertFilter(t, Resolve(Params{Period: "lastMonth"}, mid.Now()), 2024, intp(2), nil)
	})

	t.Run("last_month_rolls_year_in_january", func(t *testing.T) {
		assertFilter(t, Resolve(Params{Period: "lastMonth"}, jan.Now()), 2023, intp(12), nil)
	})

	t.Run("this_quarter", func(t *testing.T) {
		assertFilter(t, Resolve(Params{Period: "thisQuarter"}, mid.Now()), 2024, nil, intp(1))
	})

	t.Run("last_quarter_rolls_year_in_q1", func(t *testing.T) {
		assertFilter(t, Resolve(Params{Period: "lastQuarter"}, mid.Now()), 2023, nil, intp(4))
	})

	t.Run("last_quarter_mid_year", func(t *testing.T) {
		aug := date(2024, time.August, 1)
		assertFilter(t, Resolve(Params{Period: "lastQuarter"}, aug), 2024, nil, intp(2))
	})

	t.Run("this_year", func(t *testing.T) {
		assertFilter(t, Resolve(Params{Period: "thisYear"}, mid.Now()), 2024, nil, nil)
	})

	t.Run("custom_month_verbatim", func(t *testing.T) {
		f := Resolve(Params{Period: "customMonth", Year: intp(2022), Month: intp(7)}, mid.Now())
		assertFilter(t, f, 2022, intp(7), nil)
	})

	t.Run("custom_quarter_verbatim", func(t *testing.T) {
		f := Resolve(Params{Period: "customQuarter", Year: intp(2021), Quarter: intp(3)}, mid.Now())
		assertFilter(t, f, 2021, nil, intp(3))
	})

	t.Run("custom_month_missing_month_filters_year_only", func(t *testing.T) {
		f := Resolve(Params{Period: "customMonth", Year: intp(2022)}, mid.Now())
		assertFilter(t, f, 2022, nil, nil)
	})

	t.Run("custom_quarter_missing_year_filters_quarter_only", func(t *testing.T) {
		f := Resolve(Params{Period: "customQuarter", Quarter: intp(2)}, mid.Now())
		if f.Year != nil {
			t.Errorf("expected no year, got %d", *f.Year)
		}
		if f.Quarter == nil || *f.Quarter != 2 {
			t.Errorf("expected quarter 2, got %v", f.Quarter)
		}
	})

	t.Run("unknown_selector_falls_back_to_all", func(t *testing.T) {
		f := Resolve(Params{Period: "fortnight", Year: intp(2020)}, mid.Now())
		if f.Selector != All || f.Year != nil || f.Month != nil || f.Quarter != nil {
			t.Errorf("expected unconstrained all filter, got %+v", f)
		}
	})

	t.Run("uses_utc", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		// 2024-04-01 02:00 at UTC+5 is still March 31 in UTC.
		now := time.Date(2024, time.April, 1, 2, 0, 0, 0, loc)
		assertFilter(t, Resolve(Params{Period: "thisMonth"}, now), 2024, intp(3), nil)
	})
}

func TestQuarterOf(t *testing.T) {
	want := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	for m := 1; m <= 12; m++ {
		if got := QuarterOf(m); got != want[m-1] {
			t.Errorf("QuarterOf(%d) = %d, want %d", m, got, want[m-1])
		}
	}
}

func TestFilter_Previous(t *testing.T) {
	now := date(2024, time.January, 10)

	t.Run("month", func(t *testing.T) {
		prev, ok := Resolve(Params{Period: "thisMonth"}, now).Previous()
		if !ok {
			t.Fatal("expected a previous period")
		}
		assertFilter(t, prev, 2023, intp(12), nil)
	})

	t.Run("last_month_previous", func(t *testing.T) {
		prev, ok := Resolve(Params{Period: "lastMonth"}, now).Previous()
		if !ok {
			t.Fatal("expected a previous period")
		}
		assertFilter(t, prev, 2023, intp(11), nil)
	})

	t.Run("quarter", func(t *testing.T) {
		prev, ok := Resolve(Params{Period: "thisQuarter"}, now).Previous()
		if !ok {
			t.Fatal("expected a previous period")
		}
		assertFilter(t, prev, 2023, nil, intp(4))
	})

	t.Run("none_for_year_custom_and_all", func(t *testing.T) {
		for _, p := range []Params{
			{Period: "thisYear"},
			{Period: "all"},
			{Period: "customMonth", Year: intp(2023), Month: intp(5)},
			{Period: "customQuarter", Year: intp(2023), Quarter: intp(2)},
		} {
			if _, ok := Resolve(p, now).Previous(); ok {
				t.Errorf("expected no previous period for %s", p.Period)
			}
		}
	})
}

func TestFilter_Matches(t *testing.T) {
	q1 := Filter{Selector: CustomQuarter, Year: intp(2024), Quarter: intp(1)}
	if !q1.Matches(date(2024, time.March, 31)) {
		t.Error("expected March to match Q1")
	}
	if q1.Matches(date(2024, time.April, 1)) {
		t.Error("expected April not to match Q1")
	}
	if q1.Matches(date(2023, time.February, 1)) {
		t.Error("expected other year not to match")
	}
	if !(Filter{Selector: All}).Matches(date(1999, time.June, 1)) {
		t.Error("expected all to match everything")
	}
	if (Filter{Selector: CustomMonth, Year: intp(2024), Month: intp(13)}).Matches(date(2024, time.December, 1)) {
		t.Error("expected out-of-range month to match nothing")
	}
}

func TestFilter_Bounds(t *testing.T) {
	t.Run("month", func(t *testing.T) {
		start, end, ok := Filter{Year: intp(2024), Month: intp(12)}.Bounds()
		if !ok {
			t.Fatal("expected bounds")
		}
		if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected bounds %s - %s", start, end)
		}
	})

	t.Run("quarter", func(t *testing.T) {
		start, end, _ := Filter{Year: intp(2024), Quarter: intp(2)}.Bounds()
		if start.Month() != time.April || end.Month() != time.July {
			t.Errorf("unexpected bounds %s - %s", start, end)
		}
	})

	t.Run("year", func(t *testing.T) {
		start, end, _ := Filter{Year: intp(2024)}.Bounds()
		if start.Year() != 2024 || end.Year() != 2025 {
			t.Errorf("unexpected bounds %s - %s", start, end)
		}
	})

	t.Run("no_year", func(t *testing.T) {
		if _, _, ok := (Filter{Month: intp(3)}).Bounds(); ok {
			t.Error("expected no bounds without a year")
		}
	})
}
