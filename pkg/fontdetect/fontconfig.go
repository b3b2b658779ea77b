package fontdetect

import "context"

// FontconfigProbe lists font families through fc-list. The format
// string asks for one family per line, so output needs no parsing
// beyond line splitting.
type FontconfigProbe struct {
	run Runner
}

func NewFontconfigProbe(run Runner) *FontconfigProbe {
	if run == nil {
		run = runCommand
	}
	return &FontconfigProbe{run: run}
}

func (p *FontconfigProbe) Name() string {
	return "fontconfig"
}

func (p *FontconfigProbe) Families(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "fc-list", "--format=%{family[0]}\n")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}
