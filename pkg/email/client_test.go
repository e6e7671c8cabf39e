package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NewMessage(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "user", "pass", "noreply@example.com")

	m := c.newMessage("u1@example.com", "A comment was written.")

	assert.Equal(t, []string{"noreply@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"u1@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"A comment was written."}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "A comment was written.")
}
