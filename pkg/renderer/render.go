package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// tMinEpsilon prevents shadow acne: a bounce ray re-hitting the surface it
// left due to floating-point rounding.
const tMinEpsilon = 0.001

// RenderConfig contains rendering configuration, immutable for the
// duration of a render.
type RenderConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxBounces      int
	ToneMap         ToneMapOp
	Gamma           bool  // Apply sqrt gamma encoding after tone mapping
	Seed            int64 // Base seed for the per-row generators
	Workers         int   // 0 means runtime.NumCPU()
}

// DefaultRenderConfig returns sensible preview-quality defaults
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           120,
		Height:          60,
		SamplesPerPixel: 32,
		MaxBounces:      12,
		ToneMap:         ToneMapNone,
		Gamma:           true,
		Seed:            1,
	}
}

// PathTracer solves the rendering equation with unbiased forward Monte
// Carlo path tracing. The scene is read-only once constructed, so render
// workers share it without locking.
type PathTracer struct {
	world    core.Hittable
	camera   *Camera
	sky      Sky
	config   RenderConfig
	progress func(rowsDone, rowsTotal int)
}

// NewPathTracer creates a path tracer over an immutable world
func NewPathTracer(world core.Hittable, camera *Camera, sky Sky, config RenderConfig) *PathTracer {
	return &PathTracer{
		world:  world,
		camera: camera,
		sky:    sky,
		config: config,
	}
}

// SetProgress installs a per-row progress callback. It may be invoked
// concurrently from render workers.
func (pt *PathTracer) SetProgress(fn func(rowsDone, rowsTotal int)) {
	pt.progress = fn
}

// trace returns the radiance carried along a single ray. Recursion is
// bounded by MaxBounces; truncating the series introduces a small negative
// bias acceptable for preview rendering. rays counts every traced ray.
func (pt *PathTracer) trace(ray core.Ray, depth int, random *rand.Rand, rays *int64) core.Vec3 {
	if depth >= pt.config.MaxBounces {
		return core.Vec3{}
	}
	*rays++

	hit, isHit := pt.world.Hit(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return pt.sky.Sample(ray)
	}

	var emitted core.Vec3
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted()
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	incoming := pt.trace(scatter.Scattered, depth+1, random, rays)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// renderRow renders one scanline into the framebuffer and returns the
// number of rays traced. Rows write disjoint framebuffer cells, so no
// synchronization is needed on the pixels.
func (pt *PathTracer) renderRow(y int, fb *Framebuffer, random *rand.Rand) int64 {
	w := pt.config.Width
	h := pt.config.Height
	spp := pt.config.SamplesPerPixel

	var rays int64
	for x := 0; x < w; x++ {
		accum := core.Vec3{}
		for sample := 0; sample < spp; sample++ {
			// Jitter within the pixel for Monte Carlo anti-aliasing
			u := (float64(x) + random.Float64()) / float64(w-1)
			v := (float64(y) + random.Float64()) / float64(h-1)
			ray := pt.camera.GetRay(u, v, random)
			accum = accum.Add(pt.trace(ray, 0, random, &rays))
		}

		pixel := accum.Divide(float64(spp))
		pixel = pt.config.ToneMap.Apply(pixel)
		if pt.config.Gamma {
			pixel = pixel.GammaCorrect()
		}
		pixel = pixel.Saturate()

		// Image rows run top to bottom; viewport t runs bottom to top
		fb.Set(x, h-1-y, pixel)
	}
	return rays
}

// Render runs a full sampling pass over all pixels and returns the
// finished framebuffer with aggregate statistics. Rows are distributed
// across a worker pool; each row gets its own deterministic generator
// seeded from the configured base seed, so renders are reproducible and
// workers never contend.
func (pt *PathTracer) Render() (*Framebuffer, RenderStats) {
	w := pt.config.Width
	h := pt.config.Height

	workers := pt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fb := NewFramebuffer(w, h)
	rows := make(chan int, h)

	var totalRays int64
	var rowsDone int64
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				random := rand.New(rand.NewSource(pt.config.Seed + int64(y)))
				rays := pt.renderRow(y, fb, random)
				atomic.AddInt64(&totalRays, rays)
				done := atomic.AddInt64(&rowsDone, 1)
				if pt.progress != nil {
					pt.progress(int(done), h)
				}
			}
		}()
	}

	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		TotalRays:       totalRays,
		Elapsed:         time.Since(start),
		Width:           w,
		Height:          h,
		SamplesPerPixel: pt.config.SamplesPerPixel,
	}
	return fb, stats
}
