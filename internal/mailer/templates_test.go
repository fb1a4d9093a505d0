package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContactNotification(t *testing.T) {
	html, err := RenderContactNotification("Visitor", "visitor@example.com", "Hello", "line one\nline two")
	assert.NoError(t, err)
	assert.Contains(t, html, "Visitor")
	assert.Contains(t, html, "visitor@example.com")
	assert.Contains(t, html, "line one<br>line two")
}

func TestRenderContactNotificationEscapesHTML(t *testing.T) {
	html, err := RenderContactNotification("Visitor", "v@example.com", "Hi", `<script>alert("x")</script>`)
	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderContactConfirmation(t *testing.T) {
	html, err := RenderContactConfirmation("Visitor", "Thanks!", "Jane Doe")
	assert.NoError(t, err)
	assert.Contains(t, html, "Hi Visitor")
	assert.Contains(t, html, "Jane Doe")
}

func TestRenderReply(t *testing.T) {
	html, err := RenderReply("Visitor", "Here is my answer.", "Original question?")
	assert.NoError(t, err)
	assert.Contains(t, html, "Here is my answer.")
	assert.True(t, strings.Contains(html, "Original question?"))
}
