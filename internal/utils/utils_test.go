package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 42, "user")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "user", GetUserRoleFromContext(ctx))
	assert.False(t, IsAdmin(ctx))

	admin := SetUserContext(context.Background(), 1, RoleAdmin)
	assert.True(t, IsAdmin(admin))
}

func TestUserContextEmpty(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", GetUserRoleFromContext(context.Background()))
}

func TestGenerateOrderNumber(t *testing.T) {
	a := GenerateOrderNumber()
	b := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.NotEqual(t, a, b)
}
