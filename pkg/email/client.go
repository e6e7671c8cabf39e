// Package email provides a small SMTP client for the email sink consumer.
package email

import (
	"gopkg.in/mail.v2"
)

// Client sends notification mail over SMTP.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

// NewClient creates a new SMTP client.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// newMessage builds the notification mail for one recipient. The notice
// title carries through as the subject.
func (c *Client) newMessage(to, msg string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", msg)

	message.SetBody("text/plain", msg)

	return message
}

// Send delivers a notification message to the given address.
func (c *Client) Send(to string, msg string) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(c.newMessage(to, msg))
}
