package geoscene

import (
	"math"
	"runtime"
	"sync/atomic"

	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
	gj "github.com/paulmach/go.geojson"
	"github.com/rubenv/servertiming"
	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/sync/errgroup"

	"github.com/blkot/geoscene/geojson"
)

const DefaultTargetExtent = 1000.0

var DefaultColor = [3]float64{0.8, 0.8, 0.8}

// Pipeline emits meshes for all polygonal features of a document.
//
// A MultiPolygon is processed as one mesh per sub-polygon, each
// through the same path as a plain Polygon. Only exterior rings are
// used, holes are ignored.
type Pipeline struct {
	doc             *geojson.Document
	extent          float64
	color           [3]float64
	singleSided     bool
	simplify        float64
	workers         int
	keepOrientation bool
	progress        func(done, total int)

	Timing *servertiming.Timing
}

func NewPipeline(doc *geojson.Document) *Pipeline {
	return &Pipeline{
		doc:     doc,
		extent:  DefaultTargetExtent,
		color:   DefaultColor,
		workers: runtime.NumCPU(),
		Timing:  servertiming.New().EnablePrefix(),
	}
}

// TargetExtent sets the scene size the longer of width/depth maps to.
func (p *Pipeline) TargetExtent(extent float64) *Pipeline {
	p.extent = extent
	return p
}

func (p *Pipeline) Color(r, g, b float64) *Pipeline {
	p.color = [3]float64{r, g, b}
	return p
}

func (p *Pipeline) SingleSided() *Pipeline {
	p.singleSided = true
	return p
}

// Simplify enables ring simplification with the given Visvalingam
// threshold, applied in geographic space before projection.
func (p *Pipeline) Simplify(threshold float64) *Pipeline {
	p.simplify = threshold
	return p
}

func (p *Pipeline) Workers(n int) *Pipeline {
	p.workers = n
	return p
}

// KeepOrientation disables the reversal of clockwise exterior rings.
// Clockwise rings then triangulate to nothing, per the right-hand
// rule contract.
func (p *Pipeline) KeepOrientation() *Pipeline {
	p.keepOrientation = true
	return p
}

// Progress registers a callback invoked after each processed ring.
func (p *Pipeline) Progress(fn func(done, total int)) *Pipeline {
	p.progress = fn
	return p
}

// Configure applies a Config to the pipeline.
func (p *Pipeline) Configure(cfg *Config) *Pipeline {
	if cfg.TargetExtent > 0 {
		p.extent = cfg.TargetExtent
	}
	if len(cfg.Color) == 3 {
		p.color = [3]float64{cfg.Color[0], cfg.Color[1], cfg.Color[2]}
	}
	p.singleSided = cfg.SingleSided
	p.simplify = cfg.Simplify
	if cfg.Workers > 0 {
		p.workers = cfg.Workers
	}
	p.keepOrientation = cfg.KeepOrientation
	return p
}

// ringJob is one exterior ring to turn into a mesh, tagged with the
// feature it came from.
type ringJob struct {
	feature int
	ring    [][]float64
}

type ringResult struct {
	mesh   *MeshDescriptor
	reason string
}

// Run projects and triangulates every polygonal feature and computes
// the dataset normalization transform. Mesh order follows feature
// order regardless of worker count.
func (p *Pipeline) Run() (*Result, error) {
	jobs := p.collectRings()

	p.Timing.Start("bounds", "Compute projected bounds")
	transform := p.computeTransform(jobs)
	p.Timing.Stop("bounds")

	p.Timing.Start("emit", "Project and triangulate")
	defer p.Timing.Stop("emit")

	workers := p.workers
	if workers < 1 {
		workers = 1
	}

	out := make([]ringResult, len(jobs))
	done := int64(0)

	var g errgroup.Group
	ch := make(chan int)
	g.Go(func() error {
		defer close(ch)
		for i := range jobs {
			ch <- i
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range ch {
				out[i] = p.processRing(jobs[i])
				if p.progress != nil {
					p.progress(int(atomic.AddInt64(&done, 1)), len(jobs))
				}
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	result := &Result{Transform: transform}
	for i, o := range out {
		if o.reason != "" {
			result.Skipped = append(result.Skipped, SkipReason{
				Feature: jobs[i].feature,
				Reason:  o.reason,
			})
			continue
		}
		result.Meshes = append(result.Meshes, *o.mesh)
	}
	return result, nil
}

func (p *Pipeline) collectRings() []ringJob {
	jobs := []ringJob{}
	for i, f := range p.doc.Features {
		switch f.Geometry.Type {
		case gj.GeometryPolygon:
			jobs = append(jobs, ringJob{feature: i, ring: exteriorRing(f.Geometry.Polygon)})
		case gj.GeometryMultiPolygon:
			for _, poly := range f.Geometry.MultiPolygon {
				jobs = append(jobs, ringJob{feature: i, ring: exteriorRing(poly)})
			}
		}
	}
	return jobs
}

func exteriorRing(poly [][][]float64) [][]float64 {
	if len(poly) == 0 {
		return nil
	}
	return poly[0]
}

// computeTransform folds a Cartesian bounding box over the projected
// exterior rings and derives the centering translation and uniform
// scale. Y is always 0 and excluded from the fold.
func (p *Pipeline) computeTransform(jobs []ringJob) Transform {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)

	seen := false
	for _, job := range jobs {
		for _, c := range job.ring {
			if len(c) < 2 {
				continue
			}
			pt := Project(c[0], c[1])
			minX = math.Min(minX, pt[0])
			maxX = math.Max(maxX, pt[0])
			minZ = math.Min(minZ, pt[2])
			maxZ = math.Max(maxZ, pt[2])
			seen = true
		}
	}
	if !seen {
		return Transform{Scale: 1}
	}

	centerX := (minX + maxX) / 2
	centerZ := (minZ + maxZ) / 2

	width := maxX - minX
	depth := maxZ - minZ

	// A single point or an axis-degenerate dataset has no usable
	// extent, fall back to an identity scale.
	scale := 1.0
	if math.Max(width, depth) > 0 {
		scale = p.extent / math.Max(width, depth)
	}

	return Transform{
		Translate: vec3.T{-centerX * scale, 0, -centerZ * scale},
		Scale:     scale,
	}
}

func (p *Pipeline) processRing(job ringJob) ringResult {
	ring := job.ring
	if len(ring) < 3 {
		return ringResult{reason: "ring has fewer than 3 points"}
	}
	for _, c := range ring {
		if len(c) < 2 {
			return ringResult{reason: "ring contains a malformed coordinate"}
		}
	}

	if p.simplify > 0 {
		ring = simplifyRing(ring, p.simplify)
		if len(ring) < 3 {
			return ringResult{reason: "ring simplified away"}
		}
	}

	if !p.keepOrientation && ringIsClockwise(ring) {
		ring = reverseRing(ring)
	}

	points := make([]vec3.T, len(ring))
	for i, c := range ring {
		points[i] = Project(c[0], c[1])
	}

	indices := Triangulate(points)
	if len(indices) == 0 {
		return ringResult{reason: "triangulation produced no triangles"}
	}

	normals := make([]vec3.T, len(points))
	for i := range normals {
		normals[i] = vec3.T{0, 1, 0}
	}

	return ringResult{mesh: &MeshDescriptor{
		Points:      points,
		Indices:     indices,
		Normals:     normals,
		Color:       p.color,
		DoubleSided: !p.singleSided,
	}}
}

func simplifyRing(ring [][]float64, threshold float64) [][]float64 {
	path := geo.NewPathPreallocate(len(ring), len(ring))
	for i, c := range ring {
		path.SetAt(i, &geo.Point{c[0], c[1]})
	}
	simplified := reducers.VisvalingamThreshold(path, threshold)

	out := make([][]float64, simplified.Length())
	for i := 0; i < simplified.Length(); i++ {
		point := simplified.GetAt(i)
		out[i] = []float64{point[0], point[1]}
	}
	return out
}
