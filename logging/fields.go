package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Title adds the document title.
func Title(title string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("title", title)
	}
}

// Pages adds a page count.
func Pages(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("pages", n)
	}
}

// Objects adds an object count.
func Objects(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("objects", n)
	}
}

// Bytes adds an output size.
func Bytes(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("bytes", n)
	}
}

// Sections adds a section count.
func Sections(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("sections", n)
	}
}

// Replaced adds the number of transliterated characters.
func Replaced(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("replaced", n)
	}
}

// Path adds a file path.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
