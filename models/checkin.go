package models

import "time"

// CheckIn stores one recorded answer to one question for one calendar day.
// Day is the UTC calendar-day key derived from Date; together with
// QuestionID it forms the uniqueness constraint (one row per day and
// question). Date keeps the timestamp exactly as the client supplied it.
type CheckIn struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Day        time.Time `gorm:"uniqueIndex:idx_checkins_day_question;not null" json:"-"`
	QuestionID string    `gorm:"size:64;uniqueIndex:idx_checkins_day_question;not null" json:"questionId"`
	Answer     int       `gorm:"not null" json:"answer"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName overrides the default pluralization.
func (CheckIn) TableName() string {
	return "check_ins"
}

// QuestionIDs is the fixed questionnaire, in wizard order.
var QuestionIDs = []string{
	"sleep_quality",
	"energy_level",
	"mental_clarity",
	"sensitivity",
	"impulsivity",
	"self_perception",
	"sleep_readiness",
}

// AnswerMin and AnswerMax bound the accepted score range.
const (
	AnswerMin = -3
	AnswerMax = 3
)

// DayOf truncates t to midnight UTC, the uniqueness key for check-ins.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
