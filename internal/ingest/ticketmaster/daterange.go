package ticketmaster

import "time"

// DateRange is an inclusive [Start, End] pair of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// MonthlyRanges splits [start, end] into calendar-month chunks. The
// Discovery API behaves best with bounded windows; months keep request
// counts low while staying under the result cap for most venues.
func MonthlyRanges(start, end time.Time) []DateRange {
	var ranges []DateRange
	current := start

	for !current.After(end) {
		monthEnd := time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		rangeEnd := monthEnd
		if rangeEnd.After(end) {
			rangeEnd = end
		}
		ranges = append(ranges, DateRange{Start: current, End: rangeEnd})
		current = rangeEnd.AddDate(0, 0, 1)
	}

	return ranges
}

// WeeklyRanges splits [start, end] into 7-day chunks. Used when a
// monthly range would exceed the API's 1000-result pagination cap.
func WeeklyRanges(start, end time.Time) []DateRange {
	var ranges []DateRange
	current := start

	for !current.After(end) {
		rangeEnd := current.AddDate(0, 0, 6)
		if rangeEnd.After(end) {
			rangeEnd = end
		}
		ranges = append(ranges, DateRange{Start: current, End: rangeEnd})
		current = rangeEnd.AddDate(0, 0, 1)
	}

	return ranges
}
