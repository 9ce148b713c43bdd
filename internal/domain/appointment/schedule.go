package appointment

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Slot é a data/hora solicitada, interpretada no fuso do estúdio.
type Slot struct {
	Start time.Time
}

// ParseSlot interpreta date (AAAA-MM-DD) e time (HH:MM) em loc.
func ParseSlot(date, clock string, loc *time.Location) (Slot, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, loc)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Start: start}, nil
}

// Label formata como "20/10/2026 às 10:00".
func (s Slot) Label() string {
	return fmt.Sprintf("%s às %s", s.Start.Format("02/01/2006"), s.Start.Format(timeLayout))
}

// DescribeSlot usa o formato brasileiro quando possível e cai para o texto original.
func DescribeSlot(date, clock string, loc *time.Location) string {
	slot, err := ParseSlot(date, clock, loc)
	if err != nil {
		return fmt.Sprintf("%s às %s", date, clock)
	}
	return slot.Label()
}
