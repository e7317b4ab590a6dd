package chore

import "fmt"

// DayType says which days a chore may be worked on.
type DayType int

const (
	Weekday DayType = iota + 1
	Weekend
)

func (t DayType) String() string {
	switch t {
	case Weekday:
		return "weekday"
	case Weekend:
		return "weekend"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

func (t DayType) IsValid() bool {
	switch t {
	case Weekday, Weekend:
		return true
	default:
		return false
	}
}

// ParseDayType parses the stored form of a day type. Matching is exact:
// "Weekday" or " weekday" are rejected so typos surface at load time.
func ParseDayType(input string) (DayType, error) {
	switch input {
	case "weekday":
		return Weekday, nil
	case "weekend":
		return Weekend, nil
	default:
		return 0, fmt.Errorf("invalid day type: %q (want weekday|weekend)", input)
	}
}

// Chore is a single recurring task. Values coming from storage are built with
// New, so Frequency and Delta are positive and Type is valid.
type Chore struct {
	Name          string
	Location      string
	Description   string
	Frequency     int // days between required occurrences
	Delta         int // days per extra hat copy
	Type          DayType
	LastCompleted Date
}

// Key is the (name, location) pair used to find a chore for completion.
func (c Chore) Key() string {
	return KeyOf(c.Name, c.Location)
}

// KeyOf renders a chore identity as "[location] name".
func KeyOf(name, location string) string {
	return fmt.Sprintf("[%s] %s", location, name)
}

// Matches reports whether the chore has the given name and location.
func (c Chore) Matches(name, location string) bool {
	return c.Name == name && c.Location == location
}

func (c Chore) Validate() error {
	if c.Frequency <= 0 {
		return &InvalidConfigurationError{Name: c.Name, Location: c.Location, Field: "frequency", Value: c.Frequency}
	}
	if c.Delta <= 0 {
		return &InvalidConfigurationError{Name: c.Name, Location: c.Location, Field: "delta", Value: c.Delta}
	}
	if !c.Type.IsValid() {
		return &InvalidConfigurationError{Name: c.Name, Location: c.Location, Field: "type", Value: c.Type}
	}
	return nil
}

type NewInput struct {
	Name          string
	Location      string
	Description   string
	Frequency     int
	Delta         int
	Type          string
	LastCompleted Date
}

// New builds a validated Chore.
func New(in NewInput) (Chore, error) {
	dt, err := ParseDayType(in.Type)
	if err != nil {
		return Chore{}, &InvalidConfigurationError{Name: in.Name, Location: in.Location, Field: "type", Value: in.Type}
	}
	if in.LastCompleted.IsZero() {
		return Chore{}, &InvalidConfigurationError{Name: in.Name, Location: in.Location, Field: "last_completed", Value: "missing"}
	}
	c := Chore{
		Name:          in.Name,
		Location:      in.Location,
		Description:   in.Description,
		Frequency:     in.Frequency,
		Delta:         in.Delta,
		Type:          dt,
		LastCompleted: in.LastCompleted,
	}
	if err := c.Validate(); err != nil {
		return Chore{}, err
	}
	return c, nil
}
