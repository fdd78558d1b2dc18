package models

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Field identifies one input of the record form.
type Field int

const (
	FieldName Field = iota
	FieldAge
	FieldAddress
	FieldHeight
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldAge, FieldAddress, FieldHeight}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldAge:
		return "Age"
	case FieldAddress:
		return "Address"
	case FieldHeight:
		return "Height"
	default:
		return "Unknown"
	}
}

// FormValues is the raw, unvalidated content of the form.
type FormValues struct {
	Name    string
	Age     string
	Address string
	Height  string
}

func (v FormValues) get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldAge:
		return v.Age
	case FieldAddress:
		return v.Address
	case FieldHeight:
		return v.Height
	}
	return ""
}

// FormBuffer holds user input until it is validated and submitted.
type FormBuffer struct {
	mu        sync.RWMutex
	values    FormValues
	listeners []func(FormValues)
}

// NewFormBuffer creates an empty form buffer.
func NewFormBuffer() *FormBuffer {
	return &FormBuffer{}
}

// Set stores the raw text of one field. Listeners are not notified, the
// caller is the widget that already shows the value.
func (b *FormBuffer) Set(f Field, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch f {
	case FieldName:
		b.values.Name = value
	case FieldAge:
		b.values.Age = value
	case FieldAddress:
		b.values.Address = value
	case FieldHeight:
		b.values.Height = value
	}
}

// SetValues replaces all four fields and notifies listeners.
func (b *FormBuffer) SetValues(v FormValues) {
	b.mu.Lock()
	b.values = v
	b.mu.Unlock()

	b.notify(v)
}

// Values returns the raw field contents.
func (b *FormBuffer) Values() FormValues {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.values
}

// OnChange registers a listener called whenever the buffer is changed from
// outside the widgets (Clear, SetValues).
func (b *FormBuffer) OnChange(fn func(FormValues)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Validate checks presence and numeric syntax and returns a record ready for
// insertion. The buffer is left untouched either way.
func (b *FormBuffer) Validate() (Record, error) {
	return ValidateValues(b.Values())
}

// Clear resets all fields to empty.
func (b *FormBuffer) Clear() {
	b.SetValues(FormValues{})
}

func (b *FormBuffer) notify(v FormValues) {
	b.mu.RLock()
	listeners := make([]func(FormValues), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// ValidateValues converts raw form values into a Record. A field holding only
// whitespace counts as empty. Name and address are kept verbatim.
func ValidateValues(v FormValues) (Record, error) {
	var missing []string
	for _, f := range Fields {
		if strings.TrimSpace(v.get(f)) == "" {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		return Record{}, &MissingFieldError{Fields: missing}
	}

	ageText := strings.TrimSpace(v.Age)
	age, err := strconv.Atoi(ageText)
	if err != nil {
		return Record{}, &TypeConversionError{Field: FieldAge.String(), Value: v.Age, Want: "integer", Err: err}
	}

	heightText := strings.TrimSpace(v.Height)
	height, err := strconv.ParseFloat(heightText, 64)
	if err == nil && (math.IsNaN(height) || math.IsInf(height, 0)) {
		err = strconv.ErrSyntax
	}
	if err != nil {
		return Record{}, &TypeConversionError{Field: FieldHeight.String(), Value: v.Height, Want: "number", Err: err}
	}

	return Record{
		Name:    v.Name,
		Age:     age,
		Address: v.Address,
		Height:  height,
	}, nil
}
