// Package world answers the environment-specific parts of the info command.
// The terminal shim simply reports wall-clock time for a named context.
package world

import "time"

type Clock struct {
	name string
}

func NewClock(name string) *Clock {
	return &Clock{name: name}
}

func (c *Clock) Name() string {
	return c.name
}

func (c *Clock) TimeOfDay() (hour, minute int) {
	now := time.Now()
	return now.Hour(), now.Minute()
}
