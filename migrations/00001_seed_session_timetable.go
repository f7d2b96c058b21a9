package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upSeedSessionTimetable, downSeedSessionTimetable)
}

func upSeedSessionTimetable(tx *sql.Tx) error {
	// The studio's fixed weekly grid. Monday–Thursday run four classes,
	// Friday mornings only, Saturday a later start. Sunday closed.
	timetable := []struct {
		day   string
		order int
		times []string
	}{
		{"Monday", 1, []string{"6:00 AM", "9:30 AM", "5:00 PM", "6:30 PM"}},
		{"Tuesday", 2, []string{"6:00 AM", "9:30 AM", "5:00 PM", "6:30 PM"}},
		{"Wednesday", 3, []string{"6:00 AM", "9:30 AM", "5:00 PM", "6:30 PM"}},
		{"Thursday", 4, []string{"6:00 AM", "9:30 AM", "5:00 PM", "6:30 PM"}},
		{"Friday", 5, []string{"6:00 AM", "9:30 AM"}},
		{"Saturday", 6, []string{"8:00 AM", "9:30 AM"}},
	}

	for _, col := range timetable {
		for slotOrder, t := range col.times {
			var count int
			err := tx.QueryRow("SELECT COUNT(*) FROM session_slots WHERE day = ? AND time = ?", col.day, t).Scan(&count)
			if err != nil {
				return fmt.Errorf("failed to check existing slot %s %s: %w", col.day, t, err)
			}

			if count == 0 {
				query := `
					INSERT INTO session_slots (day, time, day_order, slot_order)
					VALUES (?, ?, ?, ?)
				`
				_, err = tx.Exec(query, col.day, t, col.order, slotOrder+1)
				if err != nil {
					return fmt.Errorf("failed to create slot %s %s: %w", col.day, t, err)
				}
			}
		}
	}

	return nil
}

func downSeedSessionTimetable(tx *sql.Tx) error {
	_, err := tx.Exec("DELETE FROM session_slots")
	if err != nil {
		return fmt.Errorf("failed to delete session slots: %w", err)
	}

	return nil
}
