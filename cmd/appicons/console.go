package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Mavwarf/appicons/internal/generator"
)

const rule = "=================================================="

// console prints progress. Emoji and ANSI styling are used only when
// stdout is a terminal so piped output stays plain.
type console struct {
	out, err io.Writer
	fancy    bool
}

func newConsole() *console {
	return &console{
		out:   os.Stdout,
		err:   os.Stderr,
		fancy: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// icon returns e followed by a space when fancy, otherwise "".
func (c *console) icon(e string) string {
	if !c.fancy {
		return ""
	}
	return e + " "
}

func (c *console) dim(s string) string {
	if !c.fancy {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}

func (c *console) banner(src string) {
	fmt.Fprintf(c.out, "%sGenerating app icons from %s...\n", c.icon("🚀"), src)
	fmt.Fprintln(c.out, rule)
}

func (c *console) section(title string) {
	fmt.Fprintln(c.out, title)
}

// result prints one line per target; failures go to stderr.
func (c *console) result(r generator.Result) {
	if r.Err != nil {
		fmt.Fprintf(c.err, "Error generating %s: %v\n", r.Target.Path, r.Err)
		return
	}
	fmt.Fprintf(c.out, "Generated: %s %s\n", r.Target.Path,
		c.dim(fmt.Sprintf("(%dx%d)", r.Target.Pixels, r.Target.Pixels)))
}

func (c *console) created(path string) {
	fmt.Fprintf(c.out, "Created: %s\n", path)
}

func (c *console) fail(format string, args ...any) {
	fmt.Fprintf(c.err, c.icon("❌")+format+"\n", args...)
}

func (c *console) summary(iosDir, resDir string, s generator.Summary) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	if n := len(s.Failures()); n > 0 {
		fmt.Fprintf(c.out, "%sApp icons generated with %d error(s): %d of %d files written.\n",
			c.icon("⚠️"), n, s.Generated(), len(s.Results))
	} else {
		fmt.Fprintf(c.out, "%sApp icons generated successfully!\n", c.icon("✅"))
	}
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%siOS icons: %s/\n", c.icon("📱"), strings.TrimRight(iosDir, "/"))
	fmt.Fprintf(c.out, "%sAndroid icons: %s/mipmap-*/\n", c.icon("🤖"), strings.TrimRight(resDir, "/"))
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%sNext steps:\n", c.icon("💡"))
	fmt.Fprintln(c.out, "1. Run 'flutter clean' to clear build cache")
	fmt.Fprintln(c.out, "2. Run 'flutter pub get' to refresh dependencies")
	fmt.Fprintln(c.out, "3. Build and test your app on both platforms")
}
