package controllers

import (
	"log"
	"time"
)

// The studio runs on Perth time; human-facing timestamps are formatted in
// that zone regardless of the device clock, matching what the sheet logs.
var perthLoc = mustLoadPerth()

func mustLoadPerth() *time.Location {
	loc, err := time.LoadLocation("Australia/Perth")
	if err != nil {
		log.Printf("[TIME] falling back to local zone: %v", err)
		return time.Local
	}
	return loc
}

func formatPerth(t time.Time) string {
	return t.In(perthLoc).Format("02/01/2006, 03:04 PM")
}
