package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidResourceName(t *testing.T) {
	valid := []string{"docs", "年度报告", "report 2026.pdf", "a"}
	for _, name := range valid {
		assert.True(t, IsValidResourceName(name), name)
	}

	invalid := []string{"", "   ", "a/b", "a\\b", string(make([]byte, 256))}
	for _, name := range invalid {
		assert.False(t, IsValidResourceName(name), name)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice_01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("bad name"))
	assert.False(t, IsValidUsername("汉字用户名"))
}
