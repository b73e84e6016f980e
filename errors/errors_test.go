package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"resolution error", ErrResolution, true},
		{"registration error", ErrRegistration, true},
		{"rule violation", ErrRuleViolation, true},
		{"invalid config", ErrInvalidConfig, true},
		{"rule source load", ErrRuleSourceLoad, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"rule source load", ErrRuleSourceLoad, true},
		{"missing config", ErrMissingConfig, true},
		{"resolution error", ErrResolution, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("underlying problem")
	wrapped := Wrap(base, "TokenResolver", "Resolve", "resolver dispatch")

	expected := "TokenResolver.Resolve: resolver dispatch failed: underlying problem"
	if wrapped.Error() != expected {
		t.Errorf("expected %q, got %q", expected, wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	if Wrap(nil, "C", "M", "a") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapInvalid_PreservesChain(t *testing.T) {
	wrapped := WrapInvalid(ErrResolution, "TokenResolver", "Resolve", "resolver dispatch")

	if !errors.Is(wrapped, ErrResolution) {
		t.Error("classification wrapping should preserve the sentinel")
	}

	var ce *ClassifiedError
	if !errors.As(wrapped, &ce) {
		t.Fatal("expected a ClassifiedError in the chain")
	}
	if ce.Class != ErrorInvalid {
		t.Errorf("expected invalid class, got %s", ce.Class)
	}
	if ce.Component != "TokenResolver" || ce.Operation != "Resolve" {
		t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
	}
	if !strings.Contains(wrapped.Error(), "resolver dispatch failed") {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
}

func TestWrapFatal_Classification(t *testing.T) {
	wrapped := WrapFatal(ErrRuleSourceLoad, "Engine", "LoadRules", "rule source load")

	if !IsFatal(wrapped) {
		t.Error("fatal wrap should classify as fatal")
	}
	if IsInvalid(wrapped) {
		t.Error("fatal wrap should not classify as invalid")
	}
	if Classify(wrapped) != ErrorFatal {
		t.Errorf("expected fatal classification, got %s", Classify(wrapped))
	}
}
