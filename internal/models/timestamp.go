// Package models defines the catalog entities and their wire shapes.
package models

import "time"

// DisplayTimeLayout renders timestamps the way the id-ID locale writes
// them: day/month/year with a 24-hour clock and dot separators.
const DisplayTimeLayout = "2/1/2006, 15.04.05"

// jakarta is the fixed display timezone for every timestamp the API
// returns.
var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Host without tzdata. WIB has no DST, so a fixed offset is
		// equivalent.
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatTimestamp renders t in Asia/Jakarta using the display layout.
func FormatTimestamp(t time.Time) string {
	return t.In(jakarta).Format(DisplayTimeLayout)
}
