// Package directory implements the read pipeline behind the public listing
// pages: raw row mapping, rating aggregation, opening-hours compaction, and
// in-memory filtering and sorting.
package directory

import (
	"strings"

	domain "github.com/Chiosap01/allcascais/pkg/types"
)

var dayLabelsEN = map[domain.DayKey]string{
	domain.DayMon: "Mo",
	domain.DayTue: "Tu",
	domain.DayWed: "We",
	domain.DayThu: "Th",
	domain.DayFri: "Fr",
	domain.DaySat: "Sa",
	domain.DaySun: "Su",
}

var dayLabelsPT = map[domain.DayKey]string{
	domain.DayMon: "Seg",
	domain.DayTue: "Ter",
	domain.DayWed: "Qua",
	domain.DayThu: "Qui",
	domain.DayFri: "Sex",
	domain.DaySat: "Sáb",
	domain.DaySun: "Dom",
}

// DayLabel returns the short weekday label for the locale, falling back to
// the raw key for anything outside the seven known days.
func DayLabel(day domain.DayKey, locale domain.Locale) string {
	labels := dayLabelsEN
	if locale == domain.LocalePT {
		labels = dayLabelsPT
	}
	if label, ok := labels[day]; ok {
		return label
	}
	return string(day)
}

// DefaultWeek returns a fresh all-closed seven-day schedule in calendar order.
func DefaultWeek() []domain.OpeningHour {
	week := make([]domain.OpeningHour, len(domain.WeekOrder))
	for i, day := range domain.WeekOrder {
		week[i] = domain.OpeningHour{Day: day, Closed: true}
	}
	return week
}

type hourRun struct {
	start, end int // indexes into domain.WeekOrder
	open       string
	close      string
}

// CompactHours renders a weekly schedule as a compact one-line summary,
// merging consecutive open days that share identical open and close times:
// "Mo–Fr 09:00-18:00, Sa 10:00-14:00". Days are considered in canonical
// calendar order regardless of input order; entries that are closed or
// missing a time break a run. Returns "" when no day is open.
func CompactHours(hours []domain.OpeningHour, locale domain.Locale) string {
	byDay := make(map[domain.DayKey]domain.OpeningHour, len(hours))
	for _, h := range hours {
		if h.Day != "" {
			byDay[h.Day] = h
		}
	}

	var runs []hourRun
	for i, day := range domain.WeekOrder {
		h, ok := byDay[day]
		if !ok || h.Closed || h.Open == "" || h.Close == "" {
			continue
		}
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.end == i-1 && last.open == h.Open && last.close == h.Close {
				last.end = i
				continue
			}
		}
		runs = append(runs, hourRun{start: i, end: i, open: h.Open, close: h.Close})
	}
	if len(runs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		days := DayLabel(domain.WeekOrder[r.start], locale)
		if r.end != r.start {
			days += "–" + DayLabel(domain.WeekOrder[r.end], locale)
		}
		parts = append(parts, days+" "+r.open+"-"+r.close)
	}
	return strings.Join(parts, ", ")
}
