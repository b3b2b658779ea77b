// Package fontdetect answers whether a font family is installed on the
// host. Families are enumerated once through a platform-specific probe
// (Windows registry, fontconfig, X core fonts, or the macOS font
// manager), cached in a case-insensitive index, and served from there
// until Reset.
package fontdetect

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/logandonley/fontdetect/internal/platform"
)

// Detector is the query facade over the cached font index.
type Detector struct {
	buildMu sync.Mutex
	idx     index
	source  Source
	logger  *log.Logger
	caps    *platform.Capabilities
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger routes probe diagnostics to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// WithSource replaces the default platform selector. Tests use it to
// substitute a fake family source.
func WithSource(source Source) Option {
	return func(d *Detector) {
		d.source = source
	}
}

// WithCapabilities builds the default selector over the given
// capabilities instead of detecting the running host.
func WithCapabilities(caps platform.Capabilities) Option {
	return func(d *Detector) {
		d.caps = &caps
	}
}

// New creates a Detector. With no options it probes the running host
// and logs diagnostics to the default logger.
func New(opts ...Option) *Detector {
	d := &Detector{logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}
	if d.source == nil {
		caps := d.caps
		if caps == nil {
			detected := platform.Detect()
			caps = &detected
		}
		d.source = NewSelector(*caps, d.logger, nil)
	}
	return d
}

// ensureBuilt builds the index on first use and after Reset. At most
// one build runs per generation even under concurrent queries.
func (d *Detector) ensureBuilt(ctx context.Context) {
	if d.idx.isBuilt() {
		return
	}

	d.buildMu.Lock()
	defer d.buildMu.Unlock()
	if d.idx.isBuilt() {
		return
	}
	d.idx.build(d.source.Detect(ctx))
}

// Has reports whether the family is installed. The match is
// case-insensitive.
func (d *Detector) Has(ctx context.Context, family string) bool {
	d.ensureBuilt(ctx)
	return d.idx.lookup(family)
}

// HasFontFamily returns family unchanged if it is installed, else the
// empty string. Callers get back the casing they asked with, never the
// stored form.
func (d *Detector) HasFontFamily(ctx context.Context, family string) string {
	if d.Has(ctx, family) {
		return family
	}
	return ""
}

// FirstFontFamily returns the first installed family from the ordered
// candidates, else the empty string.
func (d *Detector) FirstFontFamily(ctx context.Context, families []string) string {
	for _, family := range families {
		if d.HasFontFamily(ctx, family) != "" {
			return family
		}
	}
	return ""
}

// Families returns the sorted, canonical (lower-cased) names in the
// index, building it first if needed.
func (d *Detector) Families(ctx context.Context) []string {
	d.ensureBuilt(ctx)
	return d.idx.snapshot()
}

// Reset invalidates the cached index. The next query rebuilds it from a
// fresh probe snapshot; callers invoke this after installing or
// removing fonts.
func (d *Detector) Reset() {
	d.idx.invalidate()
}
