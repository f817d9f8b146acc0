package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smat.com/campusapi/internal/entity"
)

// ── Mock LectureRepository ──

type mockLectureRepo struct {
	lectures []*entity.Lecture
	err      error
	dayCalls []entity.Weekday
}

func (m *mockLectureRepo) Create(_ context.Context, lecture *entity.Lecture) error {
	m.lectures = append(m.lectures, lecture)
	return nil
}

func (m *mockLectureRepo) FindAll(_ context.Context) ([]*entity.Lecture, error) {
	return m.lectures, m.err
}

func (m *mockLectureRepo) FindByDay(_ context.Context, day entity.Weekday) ([]*entity.Lecture, error) {
	m.dayCalls = append(m.dayCalls, day)
	if m.err != nil {
		return nil, m.err
	}
	var result []*entity.Lecture
	for _, l := range m.lectures {
		if l.Day == day {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockLectureRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.lectures)), nil
}

// ── helpers ──

var seoul = time.FixedZone("KST", 9*60*60)

// 2025-03-17 is a Monday.
func mondayAt(hour, min int) func() time.Time {
	return func() time.Time { return time.Date(2025, 3, 17, hour, min, 0, 0, seoul) }
}

func lecture(name string, day entity.Weekday, slot string) *entity.Lecture {
	return &entity.Lecture{ID: uuid.New(), Name: name, Professor: "김철수 교수", Day: day, Time: slot, Room: "공학관 301"}
}

func mondayLectures() []*entity.Lecture {
	return []*entity.Lecture{
		lecture("자료구조", entity.Monday, "09:00-10:30"),
		lecture("웹프로그래밍", entity.Monday, "10:30-12:00"),
		lecture("데이터베이스", entity.Monday, "13:00-14:30"),
		lecture("채플", entity.Tuesday, "10:00-10:50"),
	}
}

func newService(repo *mockLectureRepo, now func() time.Time) ScheduleService {
	return NewScheduleService(repo, now, zap.NewNop())
}

func TestNextLecture_PicksEarliestLaterStart(t *testing.T) {
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, mondayAt(11, 0))

	next, err := svc.NextLecture(context.Background())
	if err != nil {
		t.Fatalf("NextLecture failed: %v", err)
	}
	if next == nil || next.Name != "데이터베이스" {
		t.Fatalf("expected 데이터베이스, got %+v", next)
	}
}

func TestNextLecture_NoneLeftToday(t *testing.T) {
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, mondayAt(15, 0))

	next, err := svc.NextLecture(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != nil {
		t.Errorf("expected no lecture, got %+v", next)
	}
}

func TestNextLecture_StartEqualToNowIsNotNext(t *testing.T) {
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, mondayAt(10, 30))

	next, _ := svc.NextLecture(context.Background())
	if next == nil || next.Name != "데이터베이스" {
		t.Errorf("expected 데이터베이스, got %+v", next)
	}
}

func TestNextLecture_SkipsUnparseableTime(t *testing.T) {
	lectures := []*entity.Lecture{
		lecture("캡스톤디자인", entity.Monday, "bad-value"),
		lecture("모바일프로그래밍", entity.Monday, "13:00-15:00"),
	}
	svc := newService(&mockLectureRepo{lectures: lectures}, mondayAt(8, 0))

	next, err := svc.NextLecture(context.Background())
	if err != nil {
		t.Fatalf("parse failure must not abort: %v", err)
	}
	if next == nil || next.Name != "모바일프로그래밍" {
		t.Errorf("expected 모바일프로그래밍, got %+v", next)
	}
}

func TestNextLecture_NoLecturesToday(t *testing.T) {
	lectures := []*entity.Lecture{lecture("채플", entity.Tuesday, "10:00-10:50")}
	repo := &mockLectureRepo{lectures: lectures}
	svc := newService(repo, mondayAt(8, 0))

	next, err := svc.NextLecture(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != nil {
		t.Errorf("expected nothing on Monday, got %+v", next)
	}
	// Never looks ahead to tomorrow.
	if len(repo.dayCalls) != 1 || repo.dayCalls[0] != entity.Monday {
		t.Errorf("expected a single lookup for 월, got %v", repo.dayCalls)
	}
}

func TestNextLecture_TieKeepsFirstSeen(t *testing.T) {
	lectures := []*entity.Lecture{
		lecture("인공지능", entity.Monday, "13:00-15:00"),
		lecture("컴퓨터구조", entity.Monday, "13:00-14:30"),
	}
	svc := newService(&mockLectureRepo{lectures: lectures}, mondayAt(9, 0))

	next, _ := svc.NextLecture(context.Background())
	if next == nil || next.Name != "인공지능" {
		t.Errorf("expected first seen 인공지능, got %+v", next)
	}
}

func TestNextLecture_UsesClockZoneForDay(t *testing.T) {
	// 2025-03-16 20:00 UTC is already Monday 05:00 in Seoul.
	now := func() time.Time { return time.Date(2025, 3, 16, 20, 0, 0, 0, time.UTC).In(seoul) }
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, now)

	next, _ := svc.NextLecture(context.Background())
	if next == nil || next.Name != "자료구조" {
		t.Errorf("expected 자료구조, got %+v", next)
	}
}

func TestNextLecture_StoreFault(t *testing.T) {
	fault := errors.New("connection refused")
	svc := newService(&mockLectureRepo{err: fault}, mondayAt(9, 0))

	if _, err := svc.NextLecture(context.Background()); !errors.Is(err, fault) {
		t.Errorf("expected wrapped store fault, got %v", err)
	}
}

func TestScheduleForDay(t *testing.T) {
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, mondayAt(9, 0))

	got, err := svc.ScheduleForDay(context.Background(), entity.Monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 Monday lectures, got %d", len(got))
	}

	got, _ = svc.ScheduleForDay(context.Background(), entity.Sunday)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestWeeklySchedule(t *testing.T) {
	svc := newService(&mockLectureRepo{lectures: mondayLectures()}, mondayAt(9, 0))

	got, err := svc.WeeklySchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || got[3].Day != entity.Tuesday {
		t.Errorf("unexpected weekly schedule %+v", got)
	}
}

func TestParseStartTime(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
		ok   bool
	}{
		{"09:00-10:30", 9 * time.Hour, true},
		{" 13:05 - 14:30", 13*time.Hour + 5*time.Minute, true},
		{"10:00:30-12:00", 10*time.Hour + 30*time.Second, true},
		{"14:00", 14 * time.Hour, true},
		{"bad-value", 0, false},
		{"", 0, false},
		{"25:00-26:00", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseStartTime(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseStartTime(%q) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseStartTime(%q) expected error", tc.raw)
		}
	}
}
