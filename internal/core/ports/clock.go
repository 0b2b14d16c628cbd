package ports

import "time"

// Clock supplies the current time. Injected so tests can control retention and due times.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function such as time.Now to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
