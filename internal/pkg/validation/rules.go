package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Department codes are short upper-case mnemonics, e.g. CS or EEE
	DepartmentCodePattern = `^[A-Z0-9]{2,10}$`

	// Course codes such as CS101 or MATH-201
	CourseCodePattern = `^[A-Z]{2,6}-?[0-9]{2,4}[A-Z]?$`

	// 24h clock, HH:MM
	TimeOfDayPattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

	PasswordMinLength = 6

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email          *regexp.Regexp
	DepartmentCode *regexp.Regexp
	CourseCode     *regexp.Regexp
	TimeOfDay      *regexp.Regexp
}{
	Email:          regexp.MustCompile(EmailPattern),
	DepartmentCode: regexp.MustCompile(DepartmentCodePattern),
	CourseCode:     regexp.MustCompile(CourseCodePattern),
	TimeOfDay:      regexp.MustCompile(TimeOfDayPattern),
}

// Weekdays accepted for office hours
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// StringValidation is a fluent check for a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	n := len([]rune(v.Value))
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// RegisterCustomValidators adds the domain specific binding tags:
// deptcode, coursecode, timeofday and weekday.
func RegisterCustomValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"deptcode": func(fl validator.FieldLevel) bool {
			return CompiledPatterns.DepartmentCode.MatchString(fl.Field().String())
		},
		"coursecode": func(fl validator.FieldLevel) bool {
			return CompiledPatterns.CourseCode.MatchString(fl.Field().String())
		},
		"timeofday": func(fl validator.FieldLevel) bool {
			return CompiledPatterns.TimeOfDay.MatchString(fl.Field().String())
		},
		"weekday": func(fl validator.FieldLevel) bool {
			return IsWeekday(fl.Field().String())
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsWeekday reports whether s names a day of the week, case-insensitively
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if strings.EqualFold(d, s) {
			return true
		}
	}
	return false
}

// NormalizeWeekday returns the canonical capitalisation of a weekday
func NormalizeWeekday(s string) string {
	for _, d := range Weekdays {
		if strings.EqualFold(d, s) {
			return d
		}
	}
	return s
}
