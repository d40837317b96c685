// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"cpre"
	"cpre/internal/diagnostics"
	"cpre/internal/lexer"
	"cpre/token"
)

func main() {
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: cpre-cli [-v level] <file.c> [file.c ...]")
		os.Exit(1)
	}

	commonlog.Configure(*verbosity, nil)

	startTime := time.Now()
	session := cpre.NewSession()
	reporter := diagnostics.NewReporter(session.Sources())

	failed := false
	for _, path := range flag.Args() {
		buffer, err := session.TokenizeFile(path)
		if err != nil {
			var unrecognized *lexer.UnrecognizedTokenError
			if errors.As(err, &unrecognized) {
				fmt.Print(reporter.Format(unrecognized))
			} else {
				fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			}
			failed = true
			continue
		}
		printTokens(session, path, buffer)
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if failed {
		color.Red("Preprocessing failed after %s", formattedDuration)
		os.Exit(1)
	}
	color.Green("Successfully tokenized %d file(s) in %s", flag.NArg(), formattedDuration)
}

func printTokens(session *cpre.Session, path string, buffer *token.Buffer) {
	fmt.Printf("%s: %d tokens\n", path, buffer.Len())
	for _, tok := range buffer.Tokens() {
		lexeme := session.Sources().View(tok.Span)
		fmt.Printf("  %-8s %-12s %q\n", tok.Kind, tok.Span, lexeme)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
