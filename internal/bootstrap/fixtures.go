package bootstrap

import (
	"time"

	"smat.com/campusapi/internal/entity"
)

var restaurantNames = []string{"학생식당", "교직원식당", "기숙사식당", "푸드코트"}

type menuFixture struct {
	restaurant string
	tomorrow   bool
	period     entity.MealPeriod
	name       string
	price      int
}

var menuFixtures = []menuFixture{
	{"학생식당", false, entity.MealBreakfast, "소고기무국", 4000},
	{"학생식당", false, entity.MealLunch, "눈꽃치즈돈까스 & 미니우동", 5500},
	{"학생식당", false, entity.MealDinner, "참치마요덮밥", 4500},
	{"교직원식당", false, entity.MealLunch, "김치찌개+밥+샐러드+과일", 6000},
	{"교직원식당", false, entity.MealDinner, "삼겹살+쌈채소+된장찌개+밥", 7000},
	{"기숙사식당", false, entity.MealBreakfast, "시리얼+우유+바나나", 2500},
	{"기숙사식당", false, entity.MealLunch, "카레라이스+돈까스+샐러드", 4500},
	{"기숙사식당", false, entity.MealDinner, "라면+김밥+단무지", 4000},
	{"푸드코트", false, entity.MealLunch, "짜장면+탕수육 세트", 5500},
	{"푸드코트", false, entity.MealLunch, "김치찌개+밥+계란말이", 4500},
	{"푸드코트", false, entity.MealDinner, "치킨마요덮밥+된장국", 5000},

	{"학생식당", true, entity.MealLunch, "불고기+밥+미역국", 5500},
	{"교직원식당", true, entity.MealLunch, "갈비탕+밥+김치", 6500},
	{"기숙사식당", true, entity.MealDinner, "햄버거+감자튀김+콜라", 5000},
}

func weeklyLectures() []entity.Lecture {
	return []entity.Lecture{
		{Name: "자료구조", Professor: "김철수 교수", Day: entity.Monday, Time: "09:00-10:30", Room: "공학관 301"},
		{Name: "웹프로그래밍", Professor: "이영희 교수", Day: entity.Monday, Time: "10:30-12:00", Room: "공학관 405"},
		{Name: "데이터베이스", Professor: "박민수 교수", Day: entity.Monday, Time: "13:00-14:30", Room: "IT관 201"},

		{Name: "채플", Professor: "목회실", Day: entity.Tuesday, Time: "10:00-10:50", Room: "대강당"},
		{Name: "알고리즘", Professor: "최지훈 교수", Day: entity.Tuesday, Time: "14:00-15:30", Room: "공학관 302"},
		{Name: "영어회화", Professor: "Smith 교수", Day: entity.Tuesday, Time: "15:30-17:00", Room: "어학관 101"},

		{Name: "운영체제", Professor: "정대성 교수", Day: entity.Wednesday, Time: "09:00-10:30", Room: "IT관 305"},
		{Name: "소프트웨어공학", Professor: "김미래 교수", Day: entity.Wednesday, Time: "13:00-14:30", Room: "공학관 401"},
		{Name: "네트워크", Professor: "홍길동 교수", Day: entity.Wednesday, Time: "14:30-16:00", Room: "IT관 202"},

		{Name: "인공지능", Professor: "오지혜 교수", Day: entity.Thursday, Time: "10:00-12:00", Room: "AI연구소"},
		{Name: "컴퓨터구조", Professor: "서동욱 교수", Day: entity.Thursday, Time: "13:00-14:30", Room: "공학관 303"},

		{Name: "캡스톤디자인", Professor: "장현우 교수", Day: entity.Friday, Time: "09:00-12:00", Room: "프로젝트실"},
		{Name: "모바일프로그래밍", Professor: "안수진 교수", Day: entity.Friday, Time: "13:00-15:00", Room: "공학관 502"},
	}
}

// upcomingLecture is filed under today's tag and starts an hour after now,
// so the next-lecture endpoint has something to return right after a seed.
func upcomingLecture(now time.Time) entity.Lecture {
	start := now.Add(time.Hour)
	end := start.Add(90 * time.Minute)
	return entity.Lecture{
		Name:      "알고리즘",
		Professor: "최지훈 교수",
		Day:       entity.WeekdayOf(now),
		Time:      start.Format("15:04") + "-" + end.Format("15:04"),
		Room:      "공학관 301",
	}
}

type postFixture struct {
	category entity.Category
	title    string
	content  string
	writer   string
	price    *int
	current  *int
	max      *int
	age      time.Duration
}

func posts(now time.Time) []entity.Post {
	fixtures := []postFixture{
		{entity.CategoryTeam, "셔틀버스 시간표 변경 안내",
			"12월 27일부터 셔틀버스 운행 시간이 변경됩니다. 오전 첫차: 7:30 → 7:00으로 앞당겨집니다.",
			"학생지원팀", nil, nil, nil, 5 * time.Minute},
		{entity.CategoryTeam, "중간고사 기간 도서관 24시간 개방",
			"중간고사 기간(12/28 ~ 1/10) 동안 중앙도서관이 24시간 개방됩니다. 열람실 좌석은 선착순입니다.",
			"도서관", nil, nil, nil, 30 * time.Minute},
		{entity.CategoryBook, "오늘의 학식 메뉴 추천",
			"학생식당 중식 메뉴 '눈꽃치즈돈까스'가 정말 맛있다고 합니다! 미니우동도 함께 나와요.",
			"맛집탐방러", nil, nil, nil, time.Hour},
		{entity.CategoryTeam, "겨울방학 현장실습 모집 안내",
			"겨울방학 기간 IT 기업 현장실습 프로그램에 참여할 학생을 모집합니다. 신청 기간: 12/26 ~ 1/5",
			"취업지원센터", nil, nil, nil, 2 * time.Hour},

		{entity.CategoryTaxi, "천안역 4명 모집",
			"오늘 저녁 7시 천안역 가시는 분 계신가요? 택시비 나눠내실 분 3명 더 구합니다!",
			"김택시", intPtr(4000), intPtr(2), intPtr(4), 3 * time.Hour},
		{entity.CategoryTaxi, "신세계백화점 가실 분",
			"내일 오후 2시쯤 신세계 갈 예정인데 같이 가실 분 계신가요? 1인당 3000원 정도 예상됩니다.",
			"이쇼핑", intPtr(3000), intPtr(1), intPtr(4), 5 * time.Hour},
		{entity.CategoryTaxi, "아산역 급구!",
			"지금 당장 아산역 가야하는데 같이 가실 분! 바로 출발합니다.",
			"박급해", intPtr(5000), intPtr(1), intPtr(3), 6 * time.Hour},

		{entity.CategoryBook, "자바의 정석 팝니다",
			"자바의 정석 3판입니다. 거의 새 책이고 필기 없어요. 직거래 선호합니다.",
			"최자바", intPtr(15000), nil, nil, 8 * time.Hour},
		{entity.CategoryBook, "운영체제 공룡책 삽니다",
			"운영체제 공룡책 (Operating System Concepts) 구합니다. 상태 좋은 것으로 부탁드려요.",
			"정운영", intPtr(20000), nil, nil, 10 * time.Hour},
		{entity.CategoryBook, "토익 교재 일괄 판매",
			"토익 RC/LC 교재 세트로 팝니다. 990점 찍고 이제 안 봐서 팔아요~ 정가 5만원인데 2만원에 드립니다.",
			"김토익", intPtr(20000), nil, nil, 12 * time.Hour},
		{entity.CategoryBook, "알고리즘 문제해결전략 팝니다",
			"프로그래밍 대회에서 배우는 알고리즘 문제해결전략 (종만북) 팝니다. 상태 양호합니다.",
			"박알고", intPtr(25000), nil, nil, 15 * time.Hour},

		{entity.CategoryTeam, "프론트엔드 개발자 구합니다",
			"캡스톤 프로젝트 팀원 모집합니다. React 다루실 수 있는 프론트엔드 개발자 1명 필요해요!",
			"이팀장", nil, intPtr(3), intPtr(4), 18 * time.Hour},
		{entity.CategoryTeam, "공모전 같이 하실 분",
			"IT 관련 공모전 함께 준비하실 분 찾습니다. 기획이나 개발 모두 환영합니다!",
			"송공모", nil, intPtr(2), intPtr(5), 20 * time.Hour},
		{entity.CategoryTeam, "스터디 그룹 모집",
			"알고리즘 스터디원 모집합니다. 매주 화/목 저녁 7시에 만나서 문제 풀고 토론해요. 백준 골드 이상 환영!",
			"장스터디", nil, intPtr(4), intPtr(6), 24 * time.Hour},
		{entity.CategoryTeam, "해커톤 팀원 구해요",
			"다음 달 해커톤 참가할 팀원 찾습니다. 백엔드 개발자 1명, 디자이너 1명 필요합니다!",
			"최해커", nil, intPtr(2), intPtr(4), 30 * time.Hour},
	}

	out := make([]entity.Post, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, entity.Post{
			Category:      f.category,
			Title:         f.title,
			Content:       f.content,
			Writer:        f.writer,
			Price:         f.price,
			CurrentPeople: f.current,
			MaxPeople:     f.max,
			CreatedAt:     now.Add(-f.age),
		})
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
