package utils

import "time"

// StartOfDay mengembalikan tengah malam lokal dari t. Truncate(24h) memotong
// di tengah malam UTC, yang melenceng dari filter payment_date (kalender
// lokal) di server non-UTC.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
