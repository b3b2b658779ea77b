package fontdetect

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/logandonley/fontdetect/internal/platform"
)

// Source produces one snapshot of installed font families.
type Source interface {
	Detect(ctx context.Context) []string
}

// strategy pairs a capability predicate with the probe to run when it
// matches.
type strategy struct {
	match func(platform.Capabilities) bool
	probe Probe
}

// Selector picks the single enumeration mechanism appropriate for the
// host. Strategies are tried in priority order and only the first
// match is used; results are never merged across probes.
type Selector struct {
	caps       platform.Capabilities
	strategies []strategy
	logger     *log.Logger
}

// NewSelector builds the default strategy chain over the given host
// capabilities. Probes run real commands unless run is non-nil.
func NewSelector(caps platform.Capabilities, logger *log.Logger, run Runner) *Selector {
	if logger == nil {
		logger = log.Default()
	}

	registry := NewRegistryProbe(run)
	fontconfig := NewFontconfigProbe(run)
	xlsfonts := NewXLSFontsProbe(run)
	coretext := NewCoreTextProbe(run)

	var mac Probe = coretext
	if caps.FcList {
		// Some macOS hosts carry fontconfig (MacPorts, Homebrew); use
		// it when the native inventory comes back empty.
		mac = &fallbackProbe{primary: coretext, secondary: fontconfig}
	}

	return &Selector{
		caps:   caps,
		logger: logger,
		strategies: []strategy{
			{
				match: func(c platform.Capabilities) bool { return c.OS == "windows" },
				probe: registry,
			},
			{
				match: func(c platform.Capabilities) bool { return c.OS == "darwin" },
				probe: mac,
			},
			{
				match: func(c platform.Capabilities) bool { return c.GTKDesktop && c.FcList },
				probe: fontconfig,
			},
			{
				match: func(c platform.Capabilities) bool { return c.X11 && c.XLSFonts },
				probe: xlsfonts,
			},
		},
	}
}

// Detect runs the first matching strategy's probe. A probe failure is
// not an error to the caller: it degrades to an empty snapshot. When no
// strategy matches at all, an advisory message is logged and the
// snapshot is empty.
func (s *Selector) Detect(ctx context.Context) []string {
	for _, st := range s.strategies {
		if !st.match(s.caps) {
			continue
		}

		families, err := st.probe.Families(ctx)
		if err != nil {
			s.logger.Debug("font probe failed", "probe", st.probe.Name(), "err", err)
			return nil
		}
		s.logger.Debug("font probe succeeded", "probe", st.probe.Name(), "families", len(families))
		return families
	}

	s.logger.Warn("no way to detect installed fonts on this system")
	return nil
}
