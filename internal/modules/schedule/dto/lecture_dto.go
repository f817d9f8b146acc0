package dto

import (
	"github.com/google/uuid"

	"smat.com/campusapi/internal/entity"
)

type ScheduleByDayRequest struct {
	Day string `form:"day" binding:"required,weekday"`
}

type LectureResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Professor string         `json:"professor"`
	Day       entity.Weekday `json:"day"`
	Time      string         `json:"time"`
	Room      string         `json:"room"`
}

func FromLecture(l *entity.Lecture) LectureResponse {
	return LectureResponse{
		ID:        l.ID,
		Name:      l.Name,
		Professor: l.Professor,
		Day:       l.Day,
		Time:      l.Time,
		Room:      l.Room,
	}
}
