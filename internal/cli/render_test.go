package cli

import (
	"testing"

	"github.com/sanjibnarzary/svgling/pkg/errors"
)

func TestParseArrowSpec(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "leaf to leaf", spec: "0.0:1.0", wantFrom: "0.0", wantTo: "1.0"},
		{name: "root source", spec: ":1", wantFrom: "", wantTo: "1"},
		{name: "missing separator", spec: "0.0", wantErr: true},
		{name: "bad path component", spec: "0.x:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := parseArrowSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseArrowSpec(%q) error = nil, want error", tt.spec)
				}
				if !errors.Is(err, errors.ErrCodeInvalidInput) && !errors.Is(err, errors.ErrCodeInvalidPath) {
					t.Errorf("parseArrowSpec(%q) error = %v, want INVALID_INPUT or INVALID_PATH", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArrowSpec(%q) error = %v", tt.spec, err)
			}
			if from.String() != tt.wantFrom || to.String() != tt.wantTo {
				t.Errorf("parseArrowSpec(%q) = (%v, %v), want (%v, %v)",
					tt.spec, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
