package communication

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	m := NewSMTPMailer("relay.qurocare.com", 587, "alms", "secret", "alms@qurocare.com")

	msg := m.buildMessage("asha.nair@qurocare.com", "Reminder: Clock-Out Pending", "Dear Asha,\n\nPlease clock out.")

	lines := strings.Split(msg, "\r\n")
	assert.Equal(t, "From: alms@qurocare.com", lines[0])
	assert.Equal(t, "To: asha.nair@qurocare.com", lines[1])
	assert.Equal(t, "Subject: Reminder: Clock-Out Pending", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Message-ID: <"))
	assert.True(t, strings.HasSuffix(lines[3], "@relay.qurocare.com>"))
	assert.Contains(t, msg, "\r\n\r\nDear Asha,\n\nPlease clock out.")

	// message ids are unique per message
	a := strings.Split(m.buildMessage("x@y", "s", "b"), "\r\n")[3]
	b := strings.Split(m.buildMessage("x@y", "s", "b"), "\r\n")[3]
	assert.NotEqual(t, a, b)
}
