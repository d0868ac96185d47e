package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanToValidUTF8(t *testing.T) {
	assert.Equal(t, "데스커 신제품", CleanToValidUTF8("데스커\x00 신제품"))
	assert.Equal(t, "ab", CleanToValidUTF8("a\xffb"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "가나다", TruncateRunes("가나다라마", 3))
	assert.Equal(t, "abc", TruncateRunes("abc", 10))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
	assert.False(t, ContainsString(nil, "b"))
}
