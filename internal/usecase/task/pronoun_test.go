package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMeetingReference(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"demonstrative before meeting word", "그 회의에서 할 일 뭐야?", true},
		{"typo still counts", "저 회이에서 내가 맡은 일", true},
		{"particle variant", "이 회의부터 정리해줘", true},
		{"location back-reference", "거기서 정한 할 일 알려줘", true},
		{"meeting word without demonstrative", "회의에서 할 일 뭐야?", false},
		{"demonstrative before unrelated word", "그 사람이 맡은 일", false},
		{"no reference at all", "내 할 일 알려줘", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasMeetingReference(tc.query))
		})
	}
}
