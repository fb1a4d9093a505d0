package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

var (
	contactNotificationTmpl = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: white; padding: 15px; border-radius: 3px; margin-top: 10px;">{{.Content}}</div>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">This message was sent from your portfolio contact form.</p>
</div>`))

	contactConfirmationTmpl = template.Must(template.New("confirmation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Thank You for Your Message!</h2>
  <p>Hi {{.Name}},</p>
  <p>Thank you for reaching out. I've received your message and will get back to you as soon as possible.</p>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Your message:</strong></p>
    <div style="background-color: white; padding: 15px; border-radius: 3px;">{{.Content}}</div>
  </div>
  <p>Best regards,<br>{{.Sender}}</p>
  <hr style="margin: 30px 0;">
  <p style="color: #666; font-size: 12px;">This is an automated confirmation email. Please do not reply to this message.</p>
</div>`))

	replyTmpl = template.Must(template.New("reply").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p>Hi {{.Name}},</p>
  <div style="white-space: pre-line;">{{.Reply}}</div>
  <hr style="margin: 30px 0;">
  <p style="color: #666; font-size: 12px;">Replying to your original message:</p>
  <blockquote style="background:#f5f5f5; padding:10px; border-left:3px solid #ccc;">{{.Original}}</blockquote>
</div>`))
)

// RenderContactNotification renders the mail sent to the admin when the
// contact form is submitted.
func RenderContactNotification(name, email, subject, content string) (string, error) {
	return render(contactNotificationTmpl, map[string]interface{}{
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Content": nl2br(content),
	})
}

// RenderContactConfirmation renders the automated acknowledgement sent to the visitor.
func RenderContactConfirmation(name, content, sender string) (string, error) {
	return render(contactConfirmationTmpl, map[string]interface{}{
		"Name":    name,
		"Content": nl2br(content),
		"Sender":  sender,
	})
}

// RenderReply renders the admin's reply, quoting the original message.
func RenderReply(name, reply, original string) (string, error) {
	return render(replyTmpl, map[string]interface{}{
		"Name":     name,
		"Reply":    reply,
		"Original": nl2br(original),
	})
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// nl2br escapes user content and turns newlines into <br> so plain-text
// messages keep their line breaks inside the HTML body.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
