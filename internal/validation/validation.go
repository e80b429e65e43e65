// Package validation checks request bodies against JSON schemas before they
// are decoded into typed inputs.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names a request body schema.
type Schema string

// Available schemas. Each maps to schemas/<name>.json.
const (
	Credentials             Schema = "credentials"
	MenuItem                Schema = "menu_item"
	SubscriptionPlan        Schema = "subscription_plan"
	Subscriber              Schema = "subscriber"
	Profile                 Schema = "profile"
	BusinessDetails         Schema = "business_details"
	PaymentDetails          Schema = "payment_details"
	NotificationPreferences Schema = "notification_preferences"
)

var allSchemas = []Schema{
	Credentials,
	MenuItem,
	SubscriptionPlan,
	Subscriber,
	Profile,
	BusinessDetails,
	PaymentDetails,
	NotificationPreferences,
}

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidJSON is returned when a body is not well-formed JSON.
var ErrInvalidJSON = model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid JSON in request body")

// Validator holds the compiled schemas.
type Validator struct {
	schemas map[Schema]*gojsonschema.Schema
}

// New compiles every embedded schema.
func New() (*Validator, error) {
	v := &Validator{schemas: make(map[Schema]*gojsonschema.Schema, len(allSchemas))}

	for _, name := range allSchemas {
		raw, err := schemaFS.ReadFile("schemas/" + string(name) + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}

		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = compiled
	}

	return v, nil
}

// MustNew is like New but panics on error. The schemas are embedded, so a
// failure here is a build defect.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks body against the named schema. It returns ErrInvalidJSON
// for malformed input and a validation DomainError listing every violation
// otherwise.
func (v *Validator) Validate(name Schema, body []byte) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	if len(body) == 0 || !json.Valid(body) {
		return ErrInvalidJSON
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		sort.Strings(details)
		return model.NewValidationError(details)
	}

	return nil
}

// Decode validates body and unmarshals it into out.
func (v *Validator) Decode(name Schema, body []byte, out interface{}) error {
	if err := v.Validate(name, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return model.NewValidationError([]string{err.Error()})
	}
	return nil
}
