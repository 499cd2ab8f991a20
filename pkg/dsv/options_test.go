package dsv

import (
	"errors"
	"testing"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"unix defaults", DefaultOptions(), false},
		{"pipe separated", Options{Separator: '|', Escape: '\\'}, false},
		{"tab separated", Options{Separator: '\t', Escape: '\\'}, false},
		{"separator equals escape", Options{Separator: ':', Escape: ':'}, true},
		{"newline separator", Options{Separator: '\n', Escape: '\\'}, true},
		{"carriage return escape", Options{Separator: ':', Escape: '\r'}, true},
		{"zero separator", Options{Separator: 0, Escape: '\\'}, true},
		{"zero escape", Options{Separator: ':', Escape: 0}, true},
		{"invalid rune separator", Options{Separator: 0xFFFD, Escape: '\\'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if err != nil {
				var optsErr *OptionsError
				if !errors.As(err, &optsErr) {
					t.Errorf("expected *OptionsError, got %T", err)
				}
			}
		})
	}
}

func TestOptionsError_Message(t *testing.T) {
	err := &OptionsError{Field: "Separator", Message: "invalid separator character"}
	expected := "dsv: invalid Separator: invalid separator character"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Separator != ':' || opts.Escape != '\\' {
		t.Errorf("DefaultOptions() = %+v, expected Unix configuration", opts)
	}
}
