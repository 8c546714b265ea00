package smtp

import (
	"gopkg.in/gomail.v2"
)

// Client sends email copies of inbox notifications.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

func NewClient(dialer *gomail.Dialer, from string) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
	}
}

func (c *Client) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return c.dialer.DialAndSend(m)
}
