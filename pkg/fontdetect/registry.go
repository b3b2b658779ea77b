package fontdetect

import (
	"context"
	"regexp"
	"strings"
)

const fontsKey = `HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

// RegistryProbe lists font families from the Windows registry by
// parsing `reg query` output.
type RegistryProbe struct {
	run Runner
}

func NewRegistryProbe(run Runner) *RegistryProbe {
	if run == nil {
		run = runCommand
	}
	return &RegistryProbe{run: run}
}

func (p *RegistryProbe) Name() string {
	return "registry"
}

// Each value line carries the family name followed by trailing
// annotation. The boundary is the leftmost of: a parenthesized suffix
// ("(TrueType)"), a comma-separated point-size list ("12,14"), or the
// registry value type ("REG_SZ"). Everything from the boundary on is
// dropped.
var regAnnotation = regexp.MustCompile(`\s+(?:\(.*?\)|\d+(?:,\d+)*\b|REG_[A-Z_]+\b).*$`)

func (p *RegistryProbe) Families(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "reg", "query", fontsKey)
	if err != nil {
		return nil, err
	}

	var families []string
	header := false
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		// The first non-blank line is the key header, not a value.
		if !header {
			header = true
			continue
		}
		if name := parseRegistryLine(line); name != "" {
			families = append(families, name)
		}
	}
	return families, nil
}

func parseRegistryLine(line string) string {
	line = strings.TrimSpace(line)
	return strings.TrimSpace(regAnnotation.ReplaceAllString(line, ""))
}
