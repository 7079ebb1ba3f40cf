package textsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("디자인 회의", "디자인 회의"))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("one empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("회의", ""))
	})

	t.Run("disjoint strings", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	})

	t.Run("known ascii value", func(t *testing.T) {
		// matching blocks "abcd" → 2*4/(6+5)
		assert.InDelta(t, 8.0/11.0, Ratio("abcdef", "abcdx"), 1e-9)
	})

	t.Run("single rune typo", func(t *testing.T) {
		// 2 of 3 runes match on each side
		assert.InDelta(t, 2.0*2.0/6.0, Ratio("마케팅", "마케딩"), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, Ratio("보안 점검", "보안점검"), Ratio("보안점검", "보안 점검"), 1e-9)
	})

	t.Run("typo clears correction threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, Ratio("디쟈인", "디자인"), 0.5)
	})

	t.Run("non contiguous blocks are summed", func(t *testing.T) {
		// "ab" and "cd" both match → 2*4/8
		assert.InDelta(t, 1.0, Ratio("abcd", "abcd"), 1e-9)
		assert.InDelta(t, 2.0*3.0/8.0, Ratio("abxd", "abyd"), 1e-9)
	})
}
