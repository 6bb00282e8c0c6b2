// Package progtest contains utilities for testing the styled command.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/styledstring/styledstring/pkg/must"
	"github.com/styledstring/styledstring/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args       []string
	onTerminal bool
	want       result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatStyled returns a new Case with the specified CLI arguments.
//
// The new Case expects the command to exit with 0, and write nothing to
// stdout or stderr.
func ThatStyled(args ...string) Case {
	return Case{args: append([]string{"styled"}, args...)}
}

// OnTerminal returns an altered Case where the command's stdout is a
// pseudo-terminal. Line endings written to it are normalized to "\n".
func (c Case) OnTerminal() Case {
	c.onTerminal = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatStyled("rm", "x").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the command to return with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the command to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the command to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the command to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the command to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against prog.Run.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, test)
			if r.exitCode != test.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, test.want.exitCode)
			}
			if !matchOutput(r.stdout.content, test.want.stdout) {
				t.Errorf("got stdout:\n%q\nwant %s", r.stdout.content, test.want.stdout)
			}
			if !matchOutput(r.stderr.content, test.want.stderr) {
				t.Errorf("got stderr:\n%q\nwant %s", r.stderr.content, test.want.stderr)
			}
		})
	}
}

// Run runs the command with the given arguments, and returns its exit status,
// stdout and stderr.
func Run(args ...string) (exit int, stdout, stderr string) {
	r := runWith(pipeStdout(), ThatStyled(args...))
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(t *testing.T, c Case) result {
	if c.onTerminal {
		out, err := terminalStdout()
		if err != nil {
			t.Skip("no pseudo-terminal:", err)
		}
		return runWith(out, c)
	}
	return runWith(pipeStdout(), c)
}

// The read side of a stdout capture, and the file the command writes to.
type capture struct {
	r     *os.File
	w     *os.File
	clean func(string) string
}

func pipeStdout() capture {
	r, w := must.OK2(os.Pipe())
	return capture{r, w, func(s string) string { return s }}
}

func runWith(stdout capture, c Case) result {
	r2, w2 := must.OK2(os.Pipe())
	// Drain both outputs while the command runs, since it may write more than
	// a pipe can buffer.
	outCh := readAllAsync(stdout.r)
	errCh := readAllAsync(r2)

	exit := prog.Run([3]*os.File{os.Stdin, stdout.w, w2}, c.args)
	stdout.w.Close()
	w2.Close()
	out := <-outCh
	errOut := <-errCh
	stdout.r.Close()
	r2.Close()
	return result{exit, output{content: stdout.clean(out)}, output{content: errOut}}
}

func readAllAsync(r io.Reader) <-chan string {
	ch := make(chan string, 1)
	go func() {
		// Reading from a pseudo-terminal ends with an error once the other
		// side is closed; what was read before is still valid.
		data, _ := io.ReadAll(r)
		ch <- string(data)
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
