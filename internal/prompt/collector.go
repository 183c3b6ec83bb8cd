// Package prompt collects a request body interactively, re-asking until every
// answer satisfies the field's validator.
package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	"github.com/goliatone/go-fieldcheck/pkg/messages"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// Collector prompts for the scalar fields of a field set.
type Collector struct {
	driver Driver
	set    *fieldset.Set
}

// NewCollector binds driver to set.
func NewCollector(driver Driver, set *fieldset.Set) *Collector {
	return &Collector{driver: driver, set: set}
}

// Collect asks for every top-level string, number and boolean field in
// declaration order. Empty answers are left out of the result. Arrays and
// objects are announced and skipped.
func (c *Collector) Collect(ctx context.Context) (map[string]any, error) {
	values := make(map[string]any)
	for _, field := range c.set.Fields() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		switch field.Kind {
		case fieldset.KindString:
			err = c.collectString(ctx, field, values)
		case fieldset.KindNumber:
			err = c.collectNumber(ctx, field, values)
		case fieldset.KindBoolean:
			err = c.collectBoolean(ctx, field, values)
		default:
			err = c.driver.Info(ctx, fmt.Sprintf("Skipping %s (%s values are not prompted)", field.Name, field.Kind))
		}
		if err != nil {
			return nil, fmt.Errorf("prompt: field %s: %w", field.Name, err)
		}
	}
	return values, nil
}

func (c *Collector) collectString(ctx context.Context, field fieldset.Field, values map[string]any) error {
	answer, err := c.driver.Input(ctx, InputConfig{
		Message:   label(field),
		Help:      Describe(field),
		Validator: c.validatorFor(field),
	})
	if err != nil {
		return err
	}
	if answer != "" {
		values[field.Name] = answer
	}
	return nil
}

func (c *Collector) collectNumber(ctx context.Context, field fieldset.Field, values map[string]any) error {
	answer, err := c.driver.Input(ctx, InputConfig{
		Message:   label(field),
		Help:      Describe(field),
		Validator: c.validatorFor(field),
	})
	if err != nil {
		return err
	}
	if answer != "" {
		values[field.Name] = json.Number(answer)
	}
	return nil
}

func (c *Collector) collectBoolean(ctx context.Context, field fieldset.Field, values map[string]any) error {
	answer, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: label(field),
		Help:    Describe(field),
		Validator: func(answer bool) error {
			return c.set.ValidateField(field, answer)
		},
	})
	if err != nil {
		return err
	}
	values[field.Name] = answer
	return nil
}

func (c *Collector) validatorFor(field fieldset.Field) func(string) error {
	return func(answer string) error {
		return c.set.ValidateField(field, answer)
	}
}

func label(field fieldset.Field) string {
	if field.Required() {
		return field.Name + " *"
	}
	return field.Name
}

// Describe summarises the constraints on field for prompt help text.
func Describe(field fieldset.Field) string {
	var parts []string
	switch field.Kind {
	case fieldset.KindString:
		spec := field.String
		if spec.MinLength != nil {
			parts = append(parts, "at least "+messages.FormatBound(float64(*spec.MinLength))+" characters")
		}
		if spec.MaxLength != nil {
			parts = append(parts, "at most "+messages.FormatBound(float64(*spec.MaxLength))+" characters")
		}
		if spec.Pattern != "" {
			parts = append(parts, "matching "+spec.Pattern)
		}
	case fieldset.KindNumber:
		spec := field.Number
		if spec.Format == validator.FormatInt64 {
			parts = append(parts, "an integer")
		} else {
			parts = append(parts, "a number")
		}
		if spec.Minimum != nil {
			parts = append(parts, ">= "+messages.FormatBound(*spec.Minimum))
		}
		if spec.Maximum != nil {
			parts = append(parts, "<= "+messages.FormatBound(*spec.Maximum))
		}
	}
	if field.Required() {
		parts = append([]string{"required"}, parts...)
	}
	return strings.Join(parts, ", ")
}
