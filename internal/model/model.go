package model

import "time"

// Birthday is the stored record of a person whose birthday we want to remember.
// The Id is assigned by the database on the first save and never reused.
// Date carries the calendar date only; its clock part is always midnight UTC.
type Birthday struct {
	Id    int64     `db:"id"`
	Name  string    `db:"name"`
	Date  time.Time `db:"date"`
	Role  Role      `db:"role"`
	Photo []byte    `db:"photo"`
}
