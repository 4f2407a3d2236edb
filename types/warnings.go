package types

import (
	"fmt"
)

// WarningLevel represents the severity of a warning
type WarningLevel string

const (
	WarningLevelInfo    WarningLevel = "info"
	WarningLevelWarning WarningLevel = "warning"
)

// Warning codes raised while generating a document
const (
	// WarnTransliterated marks a rune outside Latin-1 that was replaced.
	WarnTransliterated = "TRANSLITERATED"
	// WarnLongWord marks a word longer than the line bound, emitted unsplit.
	WarnLongWord = "LONG_WORD"
)

// Warning represents a non-fatal issue encountered during generation
type Warning struct {
	Level   WarningLevel           // Warning severity level
	Message string                 // Human-readable warning message
	Code    string                 // Optional warning code for categorization
	Context map[string]interface{} // Additional context (rune, word length, ...)
}

// Error implements the error interface so warnings can be used as errors if needed
func (w *Warning) Error() string {
	if w.Code != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Level, w.Code, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Level, w.Message)
}

// WithContext adds context to the warning and returns the same warning for chaining
func (w *Warning) WithContext(key string, value interface{}) *Warning {
	if w.Context == nil {
		w.Context = make(map[string]interface{})
	}
	w.Context[key] = value
	return w
}

// NewWarning creates a new warning with the given level and message
func NewWarning(level WarningLevel, message string) *Warning {
	return &Warning{
		Level:   level,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// NewWarningWithCode creates a new warning with a code
func NewWarningWithCode(level WarningLevel, code, message string) *Warning {
	return &Warning{
		Level:   level,
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WarningCollector collects warnings during a single generation. It is not
// safe for concurrent use; every generation owns its own collector.
type WarningCollector struct {
	warnings []*Warning
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{
		warnings: make([]*Warning, 0),
	}
}

// Add adds a warning to the collector
func (wc *WarningCollector) Add(warning *Warning) {
	if warning != nil {
		wc.warnings = append(wc.warnings, warning)
	}
}

// AddWarningf adds a coded warning with a formatted message
func (wc *WarningCollector) AddWarningf(level WarningLevel, code, format string, args ...interface{}) *Warning {
	w := NewWarningWithCode(level, code, fmt.Sprintf(format, args...))
	wc.Add(w)
	return w
}

// Warnings returns all collected warnings
func (wc *WarningCollector) Warnings() []*Warning {
	return wc.warnings
}

// Count returns the number of warnings collected
func (wc *WarningCollector) Count() int {
	return len(wc.warnings)
}

// HasWarnings returns true if any warnings have been collected
func (wc *WarningCollector) HasWarnings() bool {
	return len(wc.warnings) > 0
}

// GetByCode returns warnings filtered by code
func (wc *WarningCollector) GetByCode(code string) []*Warning {
	result := make([]*Warning, 0)
	for _, w := range wc.warnings {
		if w.Code == code {
			result = append(result, w)
		}
	}
	return result
}
