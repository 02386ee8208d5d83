package transformation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamsString(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want string
	}{
		{name: "sorted", p: Params{"w": "300", "c": "fill", "h": "200"}, want: "c_fill,h_200,w_300"},
		{name: "skips empty", p: Params{"c": "scale", "w": ""}, want: "c_scale"},
		{name: "empty", p: Params{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	if got := Resize("fill", 300, 0); got != "c_fill,w_300" {
		t.Errorf("Resize() = %q", got)
	}
	if got := Resize("thumb", 100, 100); got != "c_thumb,h_100,w_100" {
		t.Errorf("Resize() = %q", got)
	}
}

func TestParseAndString(t *testing.T) {
	tr := Parse("c_fill,w_100//e_sepia/")
	if got, want := tr.String(), "c_fill,w_100/e_sepia"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"c_fill,w_100", "e_sepia"}, tr.Actions()); diff != "" {
		t.Errorf("Actions() mismatch (-want +got):\n%s", diff)
	}
}

func TestNilTransformation(t *testing.T) {
	var tr *Transformation
	if tr.String() != "" {
		t.Error("nil chain should render empty")
	}
	if !tr.IsEmpty() {
		t.Error("nil chain should be empty")
	}
	if tr.Clone() != nil {
		t.Error("clone of nil chain should be nil")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := New("c_fill,w_100")
	clone := base.Clone().Add("e_grayscale")

	if base.String() != "c_fill,w_100" {
		t.Errorf("base mutated: %q", base.String())
	}
	if clone.String() != "c_fill,w_100/e_grayscale" {
		t.Errorf("clone = %q", clone.String())
	}
}

func TestAddTransformation(t *testing.T) {
	var nilChain *Transformation

	tests := []struct {
		name  string
		other interface{ String() string }
		want  string
	}{
		{name: "chain", other: New("e_sepia", "r_max"), want: "c_fill,w_100/e_sepia/r_max"},
		{name: "nil chain", other: nilChain, want: "c_fill,w_100"},
		{name: "nil", other: nil, want: "c_fill,w_100"},
		{name: "stringer", other: Params{"a": "90"}, want: "c_fill,w_100/a_90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New("c_fill,w_100").AddTransformation(tt.other).String()
			if got != tt.want {
				t.Errorf("AddTransformation() = %q, want %q", got, tt.want)
			}
		})
	}
}
