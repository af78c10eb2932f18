package service

import (
	"time"

	"github.com/GulizarHanum/Birthday/internal/model"
	view "github.com/GulizarHanum/Birthday/pkg/model"
)

// DateLayout is the format of dates in the REST API.
const DateLayout = "2006-01-02"

// maxAgeYears is how far back a birth date may lie.
const maxAgeYears = 100

// checked holds the parsed values of a birthday that passed validation.
type checked struct {
	name string
	date time.Time
	role model.Role
}

// Validate checks name, role and date of a submitted birthday against today's date. The first
// failing rule decides the error. The photo is not looked at.
func Validate(b view.Birthday, today time.Time) error {
	_, err := validate(b, today)
	return err
}

func validate(b view.Birthday, today time.Time) (checked, error) {
	if b.Name == nil {
		return checked{}, invalidArgument("name is missing")
	}
	if b.Role == nil || *b.Role == "" {
		return checked{}, invalidArgument("role is missing")
	}
	role, err := model.ParseRole(*b.Role)
	if err != nil {
		return checked{}, validationFailed("invalid role, possible values: " + model.RoleNames())
	}
	if b.Date == nil {
		return checked{}, invalidArgument("date is missing or malformed, expected yyyy-mm-dd")
	}
	date, err := time.Parse(DateLayout, *b.Date)
	if err != nil {
		return checked{}, invalidArgument("date is missing or malformed, expected yyyy-mm-dd")
	}
	today = civilDate(today)
	if date.After(today) || date.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		return checked{}, validationFailed("invalid birth date")
	}
	return checked{name: *b.Name, date: date, role: role}, nil
}

// civilDate returns the calendar date of t as midnight UTC, dropping its clock and zone.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
