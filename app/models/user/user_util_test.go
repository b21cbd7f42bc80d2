package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("correct horse battery"))

	// 只存哈希，明文不落库
	assert.NotEmpty(t, u.Password)
	assert.NotEqual(t, "correct horse battery", u.Password)
	assert.True(t, u.ComparePassword("correct horse battery"))
	assert.False(t, u.ComparePassword("wrong password"))
}

func TestSetPasswordDistinctHashes(t *testing.T) {
	first, second := &User{}, &User{}
	require.NoError(t, first.SetPassword("correct horse battery"))
	require.NoError(t, second.SetPassword("correct horse battery"))

	// bcrypt 自带随机盐，相同明文哈希不同
	assert.NotEqual(t, first.Password, second.Password)
}
