package configs

import "time"

// Clicks holds settings of the click counting endpoint.
type Clicks struct {
	// TimeZone is the IANA zone in which after_date and before_date are
	// interpreted, since the wire format carries no offset.
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC"`
}

// Location loads TimeZone.
func (c Clicks) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}
