package material

import (
	"math/rand"
	"testing"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

func TestEmissive_NoScatter(t *testing.T) {
	light := NewEmissive(core.NewVec3(1, 0.9, 0.7), 15)
	random := rand.New(rand.NewSource(1))

	hit := testHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, ok := light.Scatter(rayIn, hit, random); ok {
		t.Error("Emissive surfaces must terminate paths")
	}
}

func TestEmissive_Emitted(t *testing.T) {
	light := NewEmissive(core.NewVec3(1, 0.5, 0.25), 4)
	if got := light.Emitted(); got != core.NewVec3(4, 2, 1) {
		t.Errorf("Emitted = %v, want (4,2,1)", got)
	}

	// Intensity above 1 pushes radiance outside [0,1], tone mapping
	// handles that later
	bright := NewEmissive(core.NewVec3(1, 1, 1), 100)
	if got := bright.Emitted(); got.X != 100 {
		t.Errorf("Emitted.X = %f, want 100", got.X)
	}
}

func TestEmissive_ImplementsEmitter(t *testing.T) {
	var mat core.Material = NewEmissive(core.NewVec3(1, 1, 1), 1)
	if _, ok := mat.(core.Emitter); !ok {
		t.Error("Emissive must satisfy the Emitter interface")
	}

	// Non-emissive materials must not
	mat = NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if _, ok := mat.(core.Emitter); ok {
		t.Error("Lambertian must not satisfy the Emitter interface")
	}
}
