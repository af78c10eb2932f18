package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsUpcoming(t *testing.T) {
	tests := []struct {
		today    time.Time
		birthday time.Time
		want     bool
	}{
		// mid-year window 06-01 .. 06-15
		{date(2024, time.June, 1), date(1990, time.June, 1), true},
		{date(2024, time.June, 1), date(1990, time.June, 15), true},
		{date(2024, time.June, 1), date(1990, time.June, 8), true},
		{date(2024, time.June, 1), date(1990, time.June, 16), false},
		{date(2024, time.May, 31), date(1990, time.June, 15), false},
		{date(2024, time.June, 1), date(1990, time.May, 31), false},
		{date(2024, time.June, 1), date(1990, time.December, 1), false},

		// the window wraps from December into January: 12-28 .. 01-11
		{date(2024, time.December, 28), date(1990, time.January, 5), true},
		{date(2024, time.December, 28), date(1990, time.December, 31), true},
		{date(2024, time.December, 28), date(1990, time.December, 28), true},
		{date(2024, time.December, 28), date(1990, time.January, 11), true},
		{date(2024, time.December, 28), date(1990, time.January, 12), false},
		{date(2024, time.December, 28), date(1990, time.December, 27), false},
		{date(2024, time.December, 28), date(1990, time.June, 1), false},

		// the window ends exactly on Dec 31
		{date(2024, time.December, 17), date(1990, time.December, 31), true},
		{date(2024, time.December, 17), date(1990, time.January, 1), false},

		// Feb 29 birthdays in a non-leap year sort between Feb 28 and Mar 1
		{date(2025, time.February, 20), date(2000, time.February, 29), true},
		{date(2025, time.February, 28), date(2000, time.February, 29), true},
		{date(2025, time.March, 1), date(2000, time.February, 29), false},
		{date(2024, time.February, 29), date(2000, time.February, 29), true},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("today %s birthday %s", tt.today.Format(DateLayout), tt.birthday.Format(DateLayout))
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpcoming(tt.birthday, tt.today))
		})
	}
}
