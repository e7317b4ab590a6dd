package chore

import "time"

// Classify maps Saturday and Sunday to Weekend and every other day to Weekday.
func Classify(d Date) DayType {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// DueDate is the last day on which the chore is still on schedule. It is for
// display; IsDue works on day counts so huge frequencies cannot wrap.
func DueDate(c Chore) Date {
	return c.LastCompleted.AddDays(c.Frequency)
}

// IsDue reports whether the chore's due date has strictly passed asOf. A chore
// whose due date is asOf itself becomes due the following day.
func IsDue(c Chore, asOf Date) bool {
	return asOf.DaysSince(c.LastCompleted) > c.Frequency
}

// DueOfType returns the due chores of type t in storage order.
func DueOfType(chores []Chore, asOf Date, t DayType) ([]Chore, error) {
	var out []Chore
	for _, c := range chores {
		if c.Type != t {
			continue
		}
		if c.Frequency <= 0 {
			return nil, &InvalidConfigurationError{Name: c.Name, Location: c.Location, Field: "frequency", Value: c.Frequency}
		}
		if IsDue(c, asOf) {
			out = append(out, c)
		}
	}
	return out, nil
}

// DueChores returns the chores eligible on asOf for a day of type dayType.
// Weekends also take the weekday backlog, listed after the weekend chores;
// weekdays never take weekend chores.
func DueChores(chores []Chore, asOf Date, dayType DayType) ([]Chore, error) {
	switch dayType {
	case Weekday:
		return DueOfType(chores, asOf, Weekday)
	case Weekend:
		weekend, err := DueOfType(chores, asOf, Weekend)
		if err != nil {
			return nil, err
		}
		weekday, err := DueOfType(chores, asOf, Weekday)
		if err != nil {
			return nil, err
		}
		return append(weekend, weekday...), nil
	default:
		return nil, &InvalidConfigurationError{Field: "type", Value: dayType}
	}
}

// DueToday classifies asOf and returns its eligible chores.
func DueToday(chores []Chore, asOf Date) ([]Chore, error) {
	return DueChores(chores, asOf, Classify(asOf))
}
