package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/campushub/backend/internal/domain/entity"
)

// ExportEventsToICS serializes the events as a single iCalendar feed.
func ExportEventsToICS(events []entity.Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Campus Club Hub//EN")

	for _, event := range events {
		e := cal.AddEvent(event.ID)
		e.SetCreatedTime(event.CreatedAt)
		e.SetDtStampTime(time.Now())
		e.SetStartAt(event.StartAt)
		if !event.EndAt.IsZero() {
			e.SetEndAt(event.EndAt)
		} else {
			e.SetEndAt(event.StartAt.Add(time.Hour))
		}
		e.SetSummary(event.Title)
		e.SetLocation(event.Location)
		e.SetDescription(event.Description)
	}

	return []byte(cal.Serialize()), nil
}
