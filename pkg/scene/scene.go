package scene

import (
	"fmt"
	"sort"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// Description bundles everything a render needs: an ordered object list,
// camera configuration and sky model. It is consumed once to build the
// BVH and is not part of the renderer's runtime state.
type Description struct {
	Name    string
	Objects []core.Hittable
	Camera  renderer.CameraConfig
	Sky     renderer.Sky
}

// BuildWorld constructs the immutable BVH over the description's objects
func (d *Description) BuildWorld() (*core.BVH, error) {
	bvh, err := core.NewBVH(d.Objects)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", d.Name, err)
	}
	return bvh, nil
}

// presets maps CLI names to preset constructors. Randomized presets take
// a seed so renders are reproducible.
var presets = map[string]func(seed int64) *Description{
	"showcase": NewShowcaseScene,
	"cornell":  func(int64) *Description { return NewCornellScene() },
	"minimal":  func(int64) *Description { return NewMinimalScene() },
	"gallery":  func(int64) *Description { return NewGalleryScene() },
	"stress":   NewStressScene,
}

// ByName builds the named preset, or errors listing the valid names
func ByName(name string, seed int64) (*Description, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(seed), nil
}

// Names returns the sorted preset names
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
