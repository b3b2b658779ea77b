package fontdetect

import (
	"context"
	"encoding/json"
	"fmt"
)

// CoreTextProbe lists font families from the macOS font manager by
// querying system_profiler for its font inventory.
type CoreTextProbe struct {
	run Runner
}

func NewCoreTextProbe(run Runner) *CoreTextProbe {
	if run == nil {
		run = runCommand
	}
	return &CoreTextProbe{run: run}
}

func (p *CoreTextProbe) Name() string {
	return "coretext"
}

type fontsReport struct {
	Fonts []struct {
		Typefaces []struct {
			Family string `json:"family"`
		} `json:"typefaces"`
	} `json:"SPFontsDataType"`
}

func (p *CoreTextProbe) Families(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "system_profiler", "SPFontsDataType", "-json")
	if err != nil {
		return nil, err
	}

	var report fontsReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("decoding font inventory: %w", err)
	}

	seen := make(map[string]struct{})
	var families []string
	for _, font := range report.Fonts {
		for _, face := range font.Typefaces {
			if face.Family == "" {
				continue
			}
			if _, dup := seen[face.Family]; dup {
				continue
			}
			seen[face.Family] = struct{}{}
			families = append(families, face.Family)
		}
	}
	return families, nil
}
