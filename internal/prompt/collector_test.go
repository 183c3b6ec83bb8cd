package prompt_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldcheck/internal/prompt"
	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// fakeDriver replays scripted answers per prompt message. Like survey, it
// keeps asking while the validator rejects the answer.
type fakeDriver struct {
	inputs   map[string][]string
	confirms map[string][]bool
	rejected map[string][]string
	helps    map[string]string
	infos    []string
	err      error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		inputs:   map[string][]string{},
		confirms: map[string][]bool{},
		rejected: map[string][]string{},
		helps:    map[string]string{},
	}
}

func (d *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.helps[cfg.Message] = cfg.Help
	for _, answer := range d.inputs[cfg.Message] {
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected[cfg.Message] = append(d.rejected[cfg.Message], err.Error())
				continue
			}
		}
		return answer, nil
	}
	return "", errors.New("fake driver: ran out of answers for " + cfg.Message)
}

func (d *fakeDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	for _, answer := range d.confirms[cfg.Message] {
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected[cfg.Message] = append(d.rejected[cfg.Message], err.Error())
				continue
			}
		}
		return answer, nil
	}
	return false, errors.New("fake driver: ran out of answers for " + cfg.Message)
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func petFields() []fieldset.Field {
	return []fieldset.Field{
		{Name: "name", Kind: fieldset.KindString, String: validator.StringSpec{Required: true, MaxLength: validator.Len(5)}},
		{Name: "age", Kind: fieldset.KindNumber, Number: validator.NumberSpec{Minimum: validator.Num(0), Format: validator.FormatInt64}},
		{Name: "vaccinated", Kind: fieldset.KindBoolean, Boolean: validator.BooleanSpec{Required: true}},
		{Name: "nickname", Kind: fieldset.KindString},
		{Name: "tags", Kind: fieldset.KindArray},
	}
}

func TestCollectReasksUntilValid(t *testing.T) {
	driver := newFakeDriver()
	driver.inputs["name *"] = []string{"", "Maximilian", " Rex", "Rex"}
	driver.inputs["age"] = []string{"01", "2.5", "4"}
	driver.inputs["nickname"] = []string{""}
	driver.confirms["vaccinated *"] = []bool{false, true}

	collector := prompt.NewCollector(driver, fieldset.New(petFields(), fieldset.Config{}))
	values, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]any{
		"name":       "Rex",
		"age":        json.Number("4"),
		"vaccinated": true,
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantRejected := map[string][]string{
		"name *": {
			"This field is required",
			"Enter at most 5 characters",
			"The value must not start with a space",
		},
		"age": {
			"The value must not start with a zero",
			"The value must be an integer",
		},
		"vaccinated *": {"This field is required"},
	}
	if diff := cmp.Diff(wantRejected, driver.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected the array field to be announced, got %v", driver.infos)
	}
}

func TestCollectHelpDescribesConstraints(t *testing.T) {
	driver := newFakeDriver()
	driver.inputs["name *"] = []string{"Rex"}
	driver.inputs["age"] = []string{""}
	driver.inputs["nickname"] = []string{""}
	driver.confirms["vaccinated *"] = []bool{true}

	collector := prompt.NewCollector(driver, fieldset.New(petFields(), fieldset.Config{}))
	if _, err := collector.Collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]string{
		"name *":   "required, at most 5 characters",
		"age":      "an integer, >= 0",
		"nickname": "",
	}
	if diff := cmp.Diff(want, driver.helps); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectPropagatesDriverErrors(t *testing.T) {
	driver := newFakeDriver()
	driver.err = prompt.ErrAborted

	collector := prompt.NewCollector(driver, fieldset.New(petFields(), fieldset.Config{}))
	if _, err := collector.Collect(context.Background()); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := prompt.NewCollector(newFakeDriver(), fieldset.New(petFields(), fieldset.Config{})).Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
