package e2e

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/pikgo"
)

// TestE2E renders every .pikchr file in testdata/ and checks it against the
// .golden file next to it.
//
// A golden file whose first line starts with "error: " holds the exact error
// the diagram must fail with. Any other golden file lists fragments, one per
// line, that must appear in the SVG in the given order.
//
// Lines of the form "#! option" at the top of a diagram set render options:
// dark, scale=N, width=N, height=N, class=NAME.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.pikchr")
	require.NoError(t, err)
	if len(testFiles) == 0 {
		t.Fatal("no .pikchr test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".pikchr")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

func runE2ETest(t *testing.T, file string) {
	t.Helper()

	src, err := os.ReadFile(file)
	require.NoError(t, err)
	golden, err := os.ReadFile(strings.TrimSuffix(file, ".pikchr") + ".golden")
	require.NoError(t, err, "reading golden file")

	opts := parseOptions(t, string(src))
	res, err := pikgo.Render(string(src), opts)

	want := strings.TrimRight(string(golden), "\n")
	if msg, ok := strings.CutPrefix(want, "error: "); ok {
		require.Error(t, err, "diagram rendered but an error was expected")
		var perr *pikgo.Error
		require.True(t, errors.As(err, &perr), "got %T: %v", err, err)
		assert.Equal(t, msg, perr.Error())
		return
	}
	require.NoError(t, err)

	checkWellFormed(t, res.SVG)
	rest := res.SVG
	for _, frag := range strings.Split(want, "\n") {
		if frag == "" {
			continue
		}
		i := strings.Index(rest, frag)
		if i < 0 {
			t.Fatalf("output missing %q (or out of order):\n%s", frag, res.SVG)
		}
		rest = rest[i+len(frag):]
	}

	again, err := pikgo.Render(string(src), opts)
	require.NoError(t, err)
	assert.Equal(t, res.SVG, again.SVG, "output is not deterministic")
}

func parseOptions(t *testing.T, src string) *pikgo.Options {
	t.Helper()
	opts := &pikgo.Options{}
	for _, line := range strings.Split(src, "\n") {
		directive, ok := strings.CutPrefix(line, "#!")
		if !ok {
			break
		}
		key, val, _ := strings.Cut(strings.TrimSpace(directive), "=")
		number := func() float64 {
			f, err := strconv.ParseFloat(val, 64)
			require.NoError(t, err, "option %s", key)
			return f
		}
		switch key {
		case "dark":
			opts.DarkMode = true
		case "scale":
			opts.Scale = number()
		case "width":
			opts.FixedWidth = number()
		case "height":
			opts.FixedHeight = number()
		case "class":
			opts.Class = val
		default:
			t.Fatalf("unknown option %q", key)
		}
	}
	return opts
}

// checkWellFormed fails the test if s is not a single well-formed <svg>
// element.
func checkWellFormed(t *testing.T, s string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(s))
	var root string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err, "malformed svg:\n%s", s)
		if se, ok := tok.(xml.StartElement); ok && root == "" {
			root = se.Name.Local
		}
	}
	assert.Equal(t, "svg", root)
}
