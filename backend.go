package vg

import (
	"errors"
	"image"
	"sync"
)

// ErrRasterizerNotAvailable is returned when no requested rasterizer is
// registered.
var ErrRasterizerNotAvailable = errors.New("vg: rasterizer not available")

// Rasterizer is the substitution point for alternative coverage engines.
// The built-in analytic scan converter registers under the name "scan";
// callers that bring a different engine (SIMD, GPU compute) register their
// own and select it by name.
type Rasterizer interface {
	// Name returns the engine identifier (e.g. "scan").
	Name() string

	// FillPath rasterizes the path's interior within the clip and streams
	// coverage spans to fn in increasing y order.
	FillPath(path *Path, clip image.Rectangle, fn SpanFunc)
}

// RasterizerFactory creates a rasterizer instance.
type RasterizerFactory func() Rasterizer

var (
	rasterizerMu sync.RWMutex
	rasterizers  = make(map[string]RasterizerFactory)
	// First available wins.
	rasterizerPriority = []string{"scan"}
)

// RegisterRasterizer registers a factory under the given name, typically
// from an init function. Re-registering a name replaces the old factory.
func RegisterRasterizer(name string, factory RasterizerFactory) {
	rasterizerMu.Lock()
	defer rasterizerMu.Unlock()
	rasterizers[name] = factory
}

// AvailableRasterizers returns the registered engine names.
func AvailableRasterizers() []string {
	rasterizerMu.RLock()
	defer rasterizerMu.RUnlock()

	names := make([]string, 0, len(rasterizers))
	for name := range rasterizers {
		names = append(names, name)
	}
	return names
}

// GetRasterizer returns an instance of the named engine, or an error when
// it is not registered.
func GetRasterizer(name string) (Rasterizer, error) {
	rasterizerMu.RLock()
	defer rasterizerMu.RUnlock()

	factory, ok := rasterizers[name]
	if !ok {
		return nil, ErrRasterizerNotAvailable
	}
	return factory(), nil
}

// DefaultRasterizer returns the best available engine by priority, falling
// back to any registered one.
func DefaultRasterizer() (Rasterizer, error) {
	rasterizerMu.RLock()
	defer rasterizerMu.RUnlock()

	for _, name := range rasterizerPriority {
		if factory, ok := rasterizers[name]; ok {
			if r := factory(); r != nil {
				return r, nil
			}
		}
	}
	for _, factory := range rasterizers {
		if r := factory(); r != nil {
			return r, nil
		}
	}
	return nil, ErrRasterizerNotAvailable
}

// scanRasterizer adapts ScanConverter to the Rasterizer interface.
type scanRasterizer struct{}

func (scanRasterizer) Name() string { return "scan" }

func (scanRasterizer) FillPath(path *Path, clip image.Rectangle, fn SpanFunc) {
	NewScanConverter(clip).Fill(path, fn)
}

func init() {
	RegisterRasterizer("scan", func() Rasterizer { return scanRasterizer{} })
}
