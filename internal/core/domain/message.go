package domain

import "net/url"

// Message is an outbound text message record as returned by the
// remote messaging API. The SID is issued remotely.
type Message struct {
	SID         string `json:"sid"`
	To          string `json:"to"`
	From        string `json:"from"`
	Body        string `json:"body"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
}

// MessageParams are the fields sent when sending a message. The
// messaging API expects capitalised form keys.
type MessageParams struct {
	To   string
	From string
	Body string
}

// Encode shapes the params into a flat form body.
func (p MessageParams) Encode() url.Values {
	form := url.Values{}
	form.Set("To", p.To)
	form.Set("From", p.From)
	form.Set("Body", p.Body)
	return form
}
