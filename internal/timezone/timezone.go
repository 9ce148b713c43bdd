package timezone

import "time"

const DefaultTimezone = "America/Fortaleza"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location cai para DefaultTimezone (e depois UTC) quando tz é inválido.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); tz != "" && err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock dá a hora local do estúdio; now é substituível em testes.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

func FixedClock(t time.Time, tz string) *Clock {
	return &Clock{loc: Location(tz), now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Year() int {
	return c.Now().Year()
}
