package service

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

func TestNewMeiliSearchService_DisabledWithoutHost(t *testing.T) {
	if idx := NewMeiliSearchService("", "", zap.NewNop()); idx != nil {
		t.Errorf("expected nil index when host is empty, got %T", idx)
	}
}

func TestCleanContentForIndex(t *testing.T) {
	s := &meiliSearchService{sanitizer: bluemonday.StrictPolicy(), logger: zap.NewNop()}

	cases := map[string]string{
		"<p>자바의 정석</p><p>3판</p>":                "자바의 정석 3판",
		"택시비   나눠내실 분<br>3명 &amp; 더":           "택시비 나눠내실 분 3명 & 더",
		"<script>alert(1)</script>스터디원 모집":      "스터디원 모집",
		"  plain text\n\twith  spaces ":          "plain text with spaces",
	}
	for in, want := range cases {
		if got := s.cleanContentForIndex(in); got != want {
			t.Errorf("cleanContentForIndex(%q) = %q, want %q", in, got, want)
		}
	}
}
