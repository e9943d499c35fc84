// Package crasher halts the enclosing build after a fatal recording failure.
package crasher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
)

var _ ports.Crasher = (*Crasher)(nil)

// Crasher implements ports.Crasher.
//
// The halt itself is the returned error: the CLI maps domain.ErrBuildHalted to a non-zero
// exit status. Under GitHub Actions the cause is also emitted as an error annotation.
type Crasher struct {
	out      io.Writer
	annotate bool
}

// New creates a Crasher writing annotations to out. getenv is used to detect the CI system.
func New(out io.Writer, getenv func(string) string) *Crasher {
	if out == nil {
		out = os.Stdout
	}
	return &Crasher{
		out:      out,
		annotate: getenv("GITHUB_ACTIONS") == "true",
	}
}

// FailBuild returns an error matching both domain.ErrBuildHalted and cause.
func (c *Crasher) FailBuild(_ context.Context, cause error) error {
	if cause == nil {
		return domain.ErrBuildHalted
	}

	if c.annotate {
		_, _ = fmt.Fprintf(c.out, "::error title=retrial::%s\n", escapeAnnotation(cause.Error()))
	}

	return errors.Join(domain.ErrBuildHalted, cause)
}

// escapeAnnotation encodes the characters that workflow commands treat specially.
func escapeAnnotation(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
