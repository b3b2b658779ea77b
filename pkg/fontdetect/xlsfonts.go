package fontdetect

import (
	"context"
	"sort"
	"strings"
)

// An XLFD font descriptor has 14 hyphen-separated fields after the
// leading hyphen; the family is the second one, e.g.
// "-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1".
const xlfdFieldCount = 14

// XLSFontsProbe lists font families from the X core font server via
// xlsfonts.
type XLSFontsProbe struct {
	run Runner
}

func NewXLSFontsProbe(run Runner) *XLSFontsProbe {
	if run == nil {
		run = runCommand
	}
	return &XLSFontsProbe{run: run}
}

func (p *XLSFontsProbe) Name() string {
	return "xlsfonts"
}

func (p *XLSFontsProbe) Families(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "xlsfonts")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var families []string
	for _, line := range splitLines(out) {
		name, ok := parseXLFDLine(line)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		families = append(families, name)
	}

	sort.Strings(families)
	return families, nil
}

// parseXLFDLine extracts the family field from one xlsfonts output
// line. Lines that are not well-formed XLFD records (wrong field
// count, missing leading hyphen) are discarded whole.
func parseXLFDLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, "-")
	if !ok {
		return "", false
	}

	fields := strings.Split(rest, "-")
	if len(fields) != xlfdFieldCount {
		return "", false
	}
	if fields[1] == "" {
		return "", false
	}
	return fields[1], true
}
