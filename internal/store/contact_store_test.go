package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitAndList(t *testing.T) {
	contacts := NewContactStore()

	record, err := contacts.Submit("訪客", "visitor@example.com", "你好，請問可以轉載文章嗎？")
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	messages := contacts.List()
	require.Len(t, messages, 1)
	assert.Equal(t, record.ID, messages[0].ID)
}

func TestContactValidation(t *testing.T) {
	contacts := NewContactStore()

	_, err := contacts.Submit("", "visitor@example.com", "hi")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = contacts.Submit("訪客", "not-an-email", "hi")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = contacts.Submit("訪客", "visitor@example.com", "")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, contacts.List())
}
