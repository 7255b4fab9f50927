package ycbm

// Answer is one question/answer pair on a raw booking record. Codes come
// from the profile's intake form; the schema is not enforced server-side, so
// a record may omit or repeat codes.
type Answer struct {
	Code   string `json:"code"`
	String string `json:"string"`
}

// BookingDTO is the untrusted wire shape of a booking as the provider
// returns it. Timestamps are ISO-8601 strings until the normalizer parses
// them.
type BookingDTO struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Cancelled           bool     `json:"cancelled"`
	CreatedAt           string   `json:"createdAt"`
	StartsAt            string   `json:"startsAt"`
	EndsAt              string   `json:"endsAt"`
	Answers             []Answer `json:"answers"`
	DisplayDurationFull string   `json:"displayDurationFull"`
}
