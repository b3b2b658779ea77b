package fontdetect

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Probe enumerates installed font families through one external
// mechanism. A probe that cannot run (tool missing, output garbled)
// returns an error; the selector degrades it to an empty result.
type Probe interface {
	// Name returns the identifier for this probe
	Name() string

	// Families returns the raw family names the mechanism reports
	Families(ctx context.Context) ([]string, error)
}

// Runner executes an external command and returns its standard output.
// Probes take a Runner so tests can feed them canned output instead of
// invoking real OS utilities.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// External listing tools should answer quickly; don't let a wedged one
// block the caller forever.
const commandTimeout = 10 * time.Second

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}

// splitLines breaks command output into lines, dropping blank ones.
func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// fallbackProbe tries primary and, only when it yields nothing, runs
// secondary. Used on macOS where fontconfig may be installed alongside
// the native font manager.
type fallbackProbe struct {
	primary   Probe
	secondary Probe
}

func (p *fallbackProbe) Name() string {
	return p.primary.Name() + "+" + p.secondary.Name()
}

func (p *fallbackProbe) Families(ctx context.Context) ([]string, error) {
	families, err := p.primary.Families(ctx)
	if err == nil && len(families) > 0 {
		return families, nil
	}
	return p.secondary.Families(ctx)
}
