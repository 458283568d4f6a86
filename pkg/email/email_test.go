package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djangocampus/campus/models"
)

func TestRenderPartnerInquiry(t *testing.T) {
	html := RenderPartnerInquiry(&models.PartnerInquiry{
		Organization: "Acme & Sons",
		ContactName:  "<b>Kwame</b>",
		Email:        "kwame@acme.io",
		Message:      "Line one\nLine <two>",
	})

	assert.Contains(t, html, "Acme &amp; Sons")
	assert.Contains(t, html, "&lt;b&gt;Kwame&lt;/b&gt;")
	assert.Contains(t, html, "&lt;kwame@acme.io&gt;")
	assert.Contains(t, html, "Line one<br>Line &lt;two&gt;")
	assert.NotContains(t, html, "<b>Kwame</b>")
}

func TestNewResendSender(t *testing.T) {
	sender := NewResendSender("re_test", "noreply@campus.test", "team@campus.test")

	rs, ok := sender.(*resendSender)
	assert.True(t, ok)
	assert.Equal(t, "noreply@campus.test", rs.fromEmail)
	assert.Equal(t, "team@campus.test", rs.toEmail)
	assert.NotNil(t, rs.client)
}
