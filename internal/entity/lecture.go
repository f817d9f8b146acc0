package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday is the one-character Korean day label lectures are filed under.
type Weekday string

const (
	Monday    Weekday = "월"
	Tuesday   Weekday = "화"
	Wednesday Weekday = "수"
	Thursday  Weekday = "목"
	Friday    Weekday = "금"
	Saturday  Weekday = "토"
	Sunday    Weekday = "일"
)

var weekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the label for the calendar day of t in t's location.
func WeekdayOf(t time.Time) Weekday {
	return weekdays[t.Weekday()]
}

func (d Weekday) Valid() bool {
	for _, w := range weekdays {
		if w == d {
			return true
		}
	}
	return false
}

type Lecture struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Professor string    `gorm:"size:100;not null" json:"professor"`
	Day       Weekday   `gorm:"column:lecture_day;size:4;not null;index" json:"day"`
	Time      string    `gorm:"size:20;not null" json:"time"` // e.g. "10:00-12:00"
	Room      string    `gorm:"size:100;not null" json:"room"`
}

func (l *Lecture) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID, err = uuid.NewV7()
	}
	return
}
