package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scriptedDriver struct {
	selects  [][]int
	inputs   []string
	confirms []bool

	seen []SelectConfig
}

func (d *scriptedDriver) Input(context.Context, InputConfig) (string, error) {
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	d.seen = append(d.seen, cfg)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func choices() Choices {
	return Choices{
		Models:         []string{"BlogPost", "Order", "Product", "User"},
		Targets:        []string{"postgres", "python", "typescript"},
		DefaultTargets: []string{"typescript"},
	}
}

func TestAsk(t *testing.T) {
	driver := &scriptedDriver{
		selects:  [][]int{{1, 3}, {0, 2}},
		inputs:   []string{"  ./out "},
		confirms: []bool{true},
	}

	sel, err := Ask(context.Background(), driver, choices())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	want := Selection{
		Models:  []string{"Order", "User"},
		Targets: []string{"postgres", "typescript"},
		Output:  "./out",
	}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, driver.seen[1].Defaults); diff != "" {
		t.Fatalf("target defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_Declined(t *testing.T) {
	driver := &scriptedDriver{
		selects:  [][]int{{0}, {1}},
		inputs:   []string{""},
		confirms: []bool{false},
	}
	if _, err := Ask(context.Background(), driver, choices()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAsk_NothingSelected(t *testing.T) {
	driver := &scriptedDriver{selects: [][]int{{}}}
	if _, err := Ask(context.Background(), driver, choices()); !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("expected ErrNothingSelected, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	got := summary(Selection{Models: []string{"User"}, Targets: []string{"python"}})
	if got != "Generate User as python to stdout?" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestIndicesOf(t *testing.T) {
	got := indicesOf([]string{"a", "b", "c"}, []string{"c", "a", "z"})
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Fatalf("indices mismatch (-want +got):\n%s", diff)
	}
}
