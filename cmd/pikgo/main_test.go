package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func writeTempFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func runCmd(t *testing.T, args ...string) (code int, stdout string, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"pikgo"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRenderToStdout(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pikchr", `box "first"`)
	b := writeTempFile(t, dir, "b.pikchr", `circle "second"`)

	code, out, errOut := runCmd(t, a, b)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if n := strings.Count(out, "<svg"); n != 2 {
		t.Fatalf("got %d svg documents, want 2:\n%s", n, out)
	}
	first, second := strings.Index(out, "first"), strings.Index(out, "second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("outputs not in argument order:\n%s", out)
	}
}

func TestRenderToDir(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "flow.pikchr", "box; arrow; circle")
	outDir := t.TempDir()

	code, out, errOut := runCmd(t, "-o", outDir, in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "" {
		t.Fatalf("unexpected stdout:\n%s", out)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "flow.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Fatalf("output is not svg:\n%s", data)
	}
}

func TestRenderFlags(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "a.pikchr", "box")

	code, out, errOut := runCmd(t, "--dark", "--width", "300", "--class", "diagram", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{`width="300"`, `class="diagram"`, "stroke:rgb(255,255,255);"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestRenderError(t *testing.T) {
	dir := t.TempDir()
	bad := writeTempFile(t, dir, "bad.pikchr", "box width")
	good := writeTempFile(t, dir, "good.pikchr", "box")

	code, out, errOut := runCmd(t, bad, good)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	want := bad + ":1:10: parse error: expected expression, found EOF\n"
	if errOut != want {
		t.Fatalf("stderr = %q, want %q", errOut, want)
	}
	if strings.Count(out, "<svg") != 1 {
		t.Fatalf("good file not rendered:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	in := writeTempFile(t, t.TempDir(), "a.pikchr", "box")

	var errOut bytes.Buffer
	code := run([]string{"pikgo", in}, failWriter{}, &errOut)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "disk full") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestHTMLErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeTempFile(t, dir, "bad.pikchr", "box width")

	code, out, errOut := runCmd(t, "--html-errors", bad)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "<div><pre>") || !strings.Contains(out, "ERROR: parse error: expected expression, found EOF") {
		t.Fatalf("unexpected html error:\n%s", out)
	}
}

func TestMissingInput(t *testing.T) {
	code, _, errOut := runCmd(t)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "no input file") {
		t.Fatalf("stderr = %q", errOut)
	}

	code, _, errOut = runCmd(t, filepath.Join(t.TempDir(), "nope.pikchr"))
	if code != 1 || !strings.Contains(errOut, "nope.pikchr") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := writeTempFile(t, dir, "pikgo.toml", `
[Render]
DarkMode = true
FixedHeight = 50.0
Class = "from-config"
`)
	in := writeTempFile(t, dir, "a.pikchr", "box")

	code, out, errOut := runCmd(t, "--config", conf, "--class", "from-flag", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{`height="50"`, `class="from-flag"`, "stroke:rgb(255,255,255);"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestConfigUnknownField(t *testing.T) {
	dir := t.TempDir()
	conf := writeTempFile(t, dir, "pikgo.toml", "[Render]\nColour = 1\n")
	in := writeTempFile(t, dir, "a.pikchr", "box")

	code, _, errOut := runCmd(t, "--config", conf, in)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "Colour") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestDumpConfig(t *testing.T) {
	code, out, errOut := runCmd(t, "--dumpconfig", "--scale", "2", "--verbose")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"[Render]", "Scale = 2", "[Log]", `Level = "debug"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %s:\n%s", want, out)
		}
	}
}

func TestVerboseLogging(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "a.pikchr", "A: box")

	code, _, errOut := runCmd(t, "--verbose", "--log-format", "json", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(errOut, `"msg":"resolved object"`) || !strings.Contains(errOut, `"label":"A"`) {
		t.Fatalf("missing debug record:\n%s", errOut)
	}
}

func TestEmitTokens(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "a.pikchr", `A: box "hi"`)

	code, out, errOut := runCmd(t, "--emit-tokens", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"POSITION", "PLACE", "box", "STRING", "hi", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("token output missing %s:\n%s", want, out)
		}
	}
}

func TestEmitTokensError(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "a.pikchr", `box "open`)

	code, out, _ := runCmd(t, "--emit-tokens", in)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(out, in+":1:5: unterminated string") {
		t.Fatalf("missing lexical error:\n%s", out)
	}
}

func TestEmitAST(t *testing.T) {
	dir := t.TempDir()
	in := writeTempFile(t, dir, "a.pikchr", "A: box")

	code, out, errOut := runCmd(t, "--emit-ast", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "Diagram") || !strings.Contains(out, "ObjectStmt 1:1 box A") {
		t.Fatalf("unexpected AST:\n%s", out)
	}

	code, out, errOut = runCmd(t, "--emit-ast", "--ast-format", "json", in)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, `"type": "ObjectStmt"`) {
		t.Fatalf("unexpected JSON AST:\n%s", out)
	}

	code, _, errOut = runCmd(t, "--emit-ast", "--ast-format", "yaml", in)
	if code != 1 || !strings.Contains(errOut, "unknown AST format") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want string
	}{
		{"", `""`},
		{"box", `"box"`},
		{"a\nb", `"a\nb"`},
		{`say "hi"`, `"say \"hi\""`},
	}
	for _, tt := range tests {
		if got := formatLiteral(tt.lit); got != tt.want {
			t.Errorf("formatLiteral(%q) = %s, want %s", tt.lit, got, tt.want)
		}
	}
}
