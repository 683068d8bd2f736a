// Package expiry computes how many calendar days remain until a policy
// expires and sorts records into the reminder buckets shown on the dashboard
// and used by the scheduler.
//
// Buckets are exact matches on the day offset, not thresholds: a policy 10
// days from expiry is in none of the 15/7/2 buckets.
package expiry

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
)

// DaysUntil returns the signed number of whole calendar days from today to
// expiry. Both values are first truncated to midnight; the difference is
// counted on the calendar so daylight-saving shifts never change the result.
func DaysUntil(today, expiry time.Time) int {
	ty, tm, td := today.Date()
	ey, em, ed := expiry.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Offset parses an ISO expiry date in today's location and returns DaysUntil.
func Offset(today time.Time, expiryDate string) (int, error) {
	d, err := timex.ParseDate(expiryDate, today.Location())
	if err != nil {
		return 0, err
	}
	return DaysUntil(today, d), nil
}

// Bucket is a dashboard filter.
type Bucket string

const (
	BucketAll     Bucket = "all"
	Bucket15Days  Bucket = "15"
	Bucket7Days   Bucket = "7"
	Bucket2Days   Bucket = "2"
	BucketExpired Bucket = "expired"
)

// Buckets lists the filters in dashboard order.
var Buckets = []Bucket{BucketAll, Bucket15Days, Bucket7Days, Bucket2Days, BucketExpired}

// ParseBucket accepts "all", "15", "7", "2" or "expired".
func ParseBucket(s string) (Bucket, error) {
	for _, b := range Buckets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// AlertOffsets are the day counts at which the scheduler fires.
var AlertOffsets = []int{15, 7, 2}

// Matches reports whether a record with the given offset belongs to b.
func Matches(b Bucket, offset int) bool {
	switch b {
	case BucketAll:
		return true
	case Bucket15Days:
		return offset == 15
	case Bucket7Days:
		return offset == 7
	case Bucket2Days:
		return offset == 2
	case BucketExpired:
		return offset <= 0
	}
	return false
}

// IsAlertOffset reports whether offset is one of AlertOffsets.
func IsAlertOffset(offset int) bool {
	for _, o := range AlertOffsets {
		if o == offset {
			return true
		}
	}
	return false
}

// Filter returns the records of b in their original order. Records whose
// expiry date cannot be parsed only appear under BucketAll.
func Filter(records []models.Customer, b Bucket, today time.Time) []models.Customer {
	out := make([]models.Customer, 0, len(records))
	for _, c := range records {
		if b == BucketAll {
			out = append(out, c)
			continue
		}
		offset, err := Offset(today, c.ExpiryDate)
		if err != nil {
			continue
		}
		if Matches(b, offset) {
			out = append(out, c)
		}
	}
	return out
}

// Stats holds the dashboard counters.
type Stats struct {
	Total   int
	Days15  int
	Days7   int
	Days2   int
	Expired int
}

// Count computes Stats in a single pass.
func Count(records []models.Customer, today time.Time) Stats {
	s := Stats{Total: len(records)}
	for _, c := range records {
		offset, err := Offset(today, c.ExpiryDate)
		if err != nil {
			continue
		}
		switch {
		case offset <= 0:
			s.Expired++
		case offset == 2:
			s.Days2++
		case offset == 7:
			s.Days7++
		case offset == 15:
			s.Days15++
		}
	}
	return s
}
