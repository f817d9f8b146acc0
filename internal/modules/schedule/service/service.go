package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/schedule/dto"
	"smat.com/campusapi/internal/modules/schedule/repository"
)

var startTimeLayouts = []string{"15:04", "15:04:05"}

type ScheduleService interface {
	WeeklySchedule(ctx context.Context) ([]dto.LectureResponse, error)
	ScheduleForDay(ctx context.Context, day entity.Weekday) ([]dto.LectureResponse, error)
	// NextLecture returns nil when nothing later today qualifies.
	NextLecture(ctx context.Context) (*dto.LectureResponse, error)
}

type scheduleService struct {
	lectureRepo repository.LectureRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewScheduleService(lectureRepo repository.LectureRepository, now func() time.Time, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		lectureRepo: lectureRepo,
		now:         now,
		logger:      logger,
	}
}

func (s *scheduleService) WeeklySchedule(ctx context.Context) ([]dto.LectureResponse, error) {
	lectures, err := s.lectureRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find lectures: %w", err)
	}
	return toResponses(lectures), nil
}

func (s *scheduleService) ScheduleForDay(ctx context.Context, day entity.Weekday) ([]dto.LectureResponse, error) {
	lectures, err := s.lectureRepo.FindByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to find lectures for %s: %w", day, err)
	}
	return toResponses(lectures), nil
}

func (s *scheduleService) NextLecture(ctx context.Context) (*dto.LectureResponse, error) {
	now := s.now()
	today := entity.WeekdayOf(now)

	lectures, err := s.lectureRepo.FindByDay(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find lectures for %s: %w", today, err)
	}

	current := timeOfDay(now)
	var (
		next      *entity.Lecture
		nextStart time.Duration
	)
	for _, lecture := range lectures {
		start, err := ParseStartTime(lecture.Time)
		if err != nil {
			s.logger.Warn("skipping lecture with unparseable time",
				zap.String("lecture_id", lecture.ID.String()),
				zap.String("time", lecture.Time),
				zap.Error(err),
			)
			continue
		}
		if start <= current {
			continue
		}
		if next == nil || start < nextStart {
			next, nextStart = lecture, start
		}
	}

	if next == nil {
		return nil, nil
	}
	resp := dto.FromLecture(next)
	return &resp, nil
}

// ParseStartTime reads the start of a "HH:MM-HH:MM" range as an offset from
// midnight. Everything after the first '-' is ignored.
func ParseStartTime(raw string) (time.Duration, error) {
	left, _, _ := strings.Cut(raw, "-")
	left = strings.TrimSpace(left)

	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, left)
		if err == nil {
			return timeOfDay(t), nil
		}
	}
	return 0, fmt.Errorf("invalid start time %q", left)
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

func toResponses(lectures []*entity.Lecture) []dto.LectureResponse {
	responses := make([]dto.LectureResponse, 0, len(lectures))
	for _, l := range lectures {
		responses = append(responses, dto.FromLecture(l))
	}
	return responses
}
