package booking

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// TimeSlot is one of the fixed daily windows a booking is scheduled in.
type TimeSlot int

const (
	UnknownSlot TimeSlot = iota
	Morning
	Afternoon
	Evening
)

func getTimeSlotStrings() map[TimeSlot]string {
	return map[TimeSlot]string{
		UnknownSlot: "UNKNOWN",
		Morning:     "MORNING",
		Afternoon:   "AFTERNOON",
		Evening:     "EVENING",
	}
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	if needle == "" {
		return UnknownSlot, errs.NewValueIsRequiredError("time_slot")
	}
	for slot, str := range getTimeSlotStrings() {
		if slot != UnknownSlot && str == needle {
			return slot, nil
		}
	}
	return UnknownSlot, errs.NewValueIsInvalidErrorWithCause("time_slot", fmt.Errorf("%q is not a valid time slot", s))
}

func (t TimeSlot) Validate() error {
	if t < Morning || t > Evening {
		return errs.NewValueIsRequiredError("time_slot")
	}
	return nil
}

func (t TimeSlot) String() string {
	if str, ok := getTimeSlotStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
