package fontdetect_test

import (
	"context"
	"fmt"

	"github.com/logandonley/fontdetect/pkg/fontdetect"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeRunner returns canned output keyed by command name and records
// which commands were invoked.
type fakeRunner struct {
	output map[string][]byte
	errs   map[string]error
	calls  []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		output: make(map[string][]byte),
		errs:   make(map[string]error),
	}
}

func (r *fakeRunner) run(_ context.Context, name string, _ ...string) ([]byte, error) {
	r.calls = append(r.calls, name)
	if err, exists := r.errs[name]; exists {
		return nil, err
	}
	if out, exists := r.output[name]; exists {
		return out, nil
	}
	return nil, fmt.Errorf("running %s: executable not found", name)
}

var _ = Describe("Registry probe", func() {
	var (
		runner *fakeRunner
		probe  *fontdetect.RegistryProbe
		ctx    context.Context
	)

	BeforeEach(func() {
		runner = newFakeRunner()
		probe = fontdetect.NewRegistryProbe(runner.run)
		ctx = context.Background()
	})

	It("extracts family names from reg query value lines", func() {
		runner.output["reg"] = []byte(
			"\r\n" +
				"HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts\r\n" +
				"  Arial (TrueType)    REG_SZ    arial.ttf\r\n" +
				"  Consolas 12,14 (TrueType)    REG_SZ    cons.ttf\r\n" +
				"\r\n")

		families, err := probe.Families(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"Arial", "Consolas"}))
	})

	It("keeps internal spaces in family names", func() {
		runner.output["reg"] = []byte(
			"HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts\r\n" +
				"  Segoe UI Semibold (TrueType)    REG_SZ    seguisb.ttf\r\n" +
				"  Courier New REG_SZ cour.ttf\r\n")

		families, err := probe.Families(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"Segoe UI Semibold", "Courier New"}))
	})

	It("discards the key header and blank lines", func() {
		runner.output["reg"] = []byte(
			"\r\n" +
				"HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts\r\n" +
				"\r\n" +
				"  Tahoma (TrueType)    REG_SZ    tahoma.ttf\r\n")

		families, err := probe.Families(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"Tahoma"}))
	})

	It("propagates a missing reg command as an error", func() {
		runner.errs["reg"] = fmt.Errorf("running reg: executable not found")

		families, err := probe.Families(ctx)
		Expect(err).To(HaveOccurred())
		Expect(families).To(BeEmpty())
	})
})

var _ = Describe("Fontconfig probe", func() {
	It("returns one family per output line, verbatim", func() {
		runner := newFakeRunner()
		runner.output["fc-list"] = []byte("DejaVu Sans Mono\nLiberation Serif\n\nNoto Sans\n")
		probe := fontdetect.NewFontconfigProbe(runner.run)

		families, err := probe.Families(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"DejaVu Sans Mono", "Liberation Serif", "Noto Sans"}))
	})
})

var _ = Describe("X core font probe", func() {
	var (
		runner *fakeRunner
		probe  *fontdetect.XLSFontsProbe
	)

	BeforeEach(func() {
		runner = newFakeRunner()
		probe = fontdetect.NewXLSFontsProbe(runner.run)
	})

	It("takes the family field from well-formed XLFD records", func() {
		runner.output["xlsfonts"] = []byte(
			"-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1\n" +
				"-adobe-courier-medium-r-normal--12-120-75-75-m-70-iso8859-1\n")

		families, err := probe.Families(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"courier", "fixed"}))
	})

	It("discards records with the wrong field count", func() {
		runner.output["xlsfonts"] = []byte(
			"-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1\n" +
				"-short-record\n" +
				"cursor\n")

		families, err := probe.Families(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"fixed"}))
	})

	It("deduplicates and sorts the result", func() {
		runner.output["xlsfonts"] = []byte(
			"-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1\n" +
				"-misc-fixed-bold-r-normal--13-120-75-75-c-70-iso8859-1\n" +
				"-adobe-courier-medium-r-normal--12-120-75-75-m-70-iso8859-1\n")

		families, err := probe.Families(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"courier", "fixed"}))
	})
})

var _ = Describe("CoreText probe", func() {
	var (
		runner *fakeRunner
		probe  *fontdetect.CoreTextProbe
	)

	BeforeEach(func() {
		runner = newFakeRunner()
		probe = fontdetect.NewCoreTextProbe(runner.run)
	})

	It("collects typeface families from the font inventory", func() {
		runner.output["system_profiler"] = []byte(`{
			"SPFontsDataType": [
				{"typefaces": [{"family": "Helvetica"}, {"family": "Helvetica"}]},
				{"typefaces": [{"family": "Menlo"}]}
			]
		}`)

		families, err := probe.Families(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(Equal([]string{"Helvetica", "Menlo"}))
	})

	It("fails on undecodable output", func() {
		runner.output["system_profiler"] = []byte("not json")

		_, err := probe.Families(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("decoding font inventory"))
	})
})
