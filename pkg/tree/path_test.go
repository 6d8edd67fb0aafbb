package tree

import (
	"reflect"
	"testing"

	"github.com/sanjibnarzary/svgling/pkg/errors"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{"root", "", Path{}, false},
		{"single", "0", Path{0}, false},
		{"nested", "0.1.2", Path{0, 1, 2}, false},
		{"not a number", "0.x", nil, true},
		{"negative", "-1", nil, true},
		{"empty component", "0..1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePath(%q) error = nil, want error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidPath) {
					t.Errorf("ParsePath(%q) code = %v, want INVALID_PATH", tt.input, errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	if got := (Path{0, 1, 2}).String(); got != "0.1.2" {
		t.Errorf("String() = %q, want %q", got, "0.1.2")
	}
	if got := (Path{}).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestCommonAncestor(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Path
		want   Path
	}{
		{"diverge at root", Path{0, 1}, Path{1, 0}, Path{}},
		{"shared prefix", Path{0, 1, 0}, Path{0, 1, 1}, Path{0, 1}},
		{"one prefixes the other", Path{0}, Path{0, 1, 2}, Path{0}},
		{"equal paths", Path{1, 2}, Path{1, 2}, Path{1, 2}},
		{"both root", Path{}, Path{}, Path{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommonAncestor(tt.p1, tt.p2)
			if len(got) != len(tt.want) {
				t.Fatalf("CommonAncestor(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("CommonAncestor(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
				}
			}
		})
	}
}

func TestCommonAncestorDoesNotAliasInput(t *testing.T) {
	p1 := Path{0, 1, 2}
	p2 := Path{0, 1, 3}
	got := CommonAncestor(p1, p2)
	got = append(got, 9)
	if p1[2] != 2 {
		t.Errorf("CommonAncestor aliased its input: p1 = %v", p1)
	}
	_ = got
}
