package renderer

import (
	"math"
	"testing"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

func TestParseToneMapOp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ToneMapOp
		wantErr bool
	}{
		{"none", "none", ToneMapNone, false},
		{"reinhard", "reinhard", ToneMapReinhard, false},
		{"aces", "aces", ToneMapACES, false},
		{"unknown", "filmic2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToneMapOp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseToneMapOp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToneMap_OutputInUnitRange(t *testing.T) {
	inputs := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(1, 1, 1),
		core.NewVec3(10, 100, 1000),
		core.NewVec3(1e6, 1e6, 1e6),
	}

	for _, op := range []ToneMapOp{ToneMapReinhard, ToneMapACES} {
		for _, in := range inputs {
			out := op.Apply(in)
			for axis := 0; axis < 3; axis++ {
				v := out.Axis(axis)
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Errorf("%v.Apply(%v) channel %d = %f, outside [0,1]", op, in, axis, v)
				}
			}
		}
	}
}

func TestToneMap_NoneIsIdentity(t *testing.T) {
	in := core.NewVec3(3.5, 0.2, 100)
	if got := ToneMapNone.Apply(in); got != in {
		t.Errorf("ToneMapNone.Apply(%v) = %v", in, got)
	}
}

func TestToneMap_Reinhard(t *testing.T) {
	// x/(1+x): 1 maps to 0.5, large values approach 1
	out := ToneMapReinhard.Apply(core.NewVec3(1, 3, 1e6))
	if math.Abs(out.X-0.5) > 1e-12 {
		t.Errorf("Reinhard(1) = %f, want 0.5", out.X)
	}
	if math.Abs(out.Y-0.75) > 1e-12 {
		t.Errorf("Reinhard(3) = %f, want 0.75", out.Y)
	}
	if out.Z < 0.999 {
		t.Errorf("Reinhard(1e6) = %f, want near 1", out.Z)
	}
}

func TestToneMap_ReinhardMonotone(t *testing.T) {
	prev := -1.0
	for x := 0.0; x < 50; x += 0.25 {
		out := ToneMapReinhard.Apply(core.NewVec3(x, 0, 0)).X
		if out <= prev {
			t.Fatalf("Reinhard not strictly increasing at x=%f", x)
		}
		prev = out
	}
}

func TestToneMap_ACESEndpoints(t *testing.T) {
	if out := ToneMapACES.Apply(core.Vec3{}); out != (core.Vec3{}) {
		t.Errorf("ACES(0) = %v, want black", out)
	}
	// Bright input clamps to full white
	out := ToneMapACES.Apply(core.NewVec3(100, 100, 100))
	if out.X < 0.999 {
		t.Errorf("ACES(100) = %f, want near 1", out.X)
	}
}

func TestToneMapOp_String(t *testing.T) {
	for _, op := range []ToneMapOp{ToneMapNone, ToneMapReinhard, ToneMapACES} {
		name := op.String()
		parsed, err := ParseToneMapOp(name)
		if err != nil || parsed != op {
			t.Errorf("Round trip failed for %v (name %q)", op, name)
		}
	}
}
