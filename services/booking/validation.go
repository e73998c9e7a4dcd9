package booking

import (
	"strings"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// requiredCustomerFields declares, per service type, which customer contact
// fields must be present. Adding a service type with different requirements
// means adding a row here, not touching call sites.
var requiredCustomerFields = map[string][]string{
	models.ServiceTypeInStore: {"customer_name", "customer_email"},
	models.ServiceTypeInHome:  {"customer_name", "customer_email", "customer_phone", "customer_address"},
}

func (in CreateInput) customerField(name string) string {
	switch name {
	case "customer_name":
		return in.CustomerName
	case "customer_email":
		return in.CustomerEmail
	case "customer_phone":
		return in.CustomerPhone
	case "customer_address":
		return in.CustomerAddress
	}
	return ""
}

// validateCreate checks every precondition that does not need the store:
// service selection, service type, customer fields, booking window and slot
// grid membership. It returns a ValidationError carrying all violations.
func (s *DefaultBookingService) validateCreate(in CreateInput) *ValidationError {
	fields := make(map[string]string)

	if len(in.ServiceIDs) == 0 {
		fields["service_ids"] = "select at least one service"
	}
	rules, ok := requiredCustomerFields[in.ServiceType]
	if !ok {
		fields["service_type"] = "must be in-store or in-home"
	} else {
		for _, name := range rules {
			if strings.TrimSpace(in.customerField(name)) == "" {
				fields[name] = "required"
			}
		}
	}
	if in.TechnicianID == "" {
		fields["technician_id"] = "required"
	}

	s.validateSlot(in.Date, in.Time, fields)

	if in.RedeemPoints < 0 {
		fields["redeem_points"] = "cannot be negative"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateSlot checks the date/time pair against the booking window: today
// or later, not on the closed weekday, and a time present on the slot grid.
func (s *DefaultBookingService) validateSlot(date, timeOfDay string, fields map[string]string) {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		fields["appointment_date"] = "invalid date"
	} else {
		today := s.now().Format(models.DateLayout)
		if date < today {
			fields["appointment_date"] = "date is in the past"
		} else if day.Weekday() == s.ClosedWeekday {
			fields["appointment_date"] = "salon is closed on " + day.Weekday().String()
		}
	}

	if !s.Grid.Contains(timeOfDay) {
		fields["appointment_time"] = "not a bookable time"
	}
}
