// Package reftool shells out to a local OpenSSL binary so resolved lists
// can be compared against what the reference tool itself produces.
package reftool

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultPath is where the reference binary is looked for when the
// configuration does not name one.
const DefaultPath = "openssl"

// Runner executes a command and returns its standard output. It exists so
// tests can substitute a canned implementation.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Tool is a handle on one OpenSSL binary.
type Tool struct {
	path string
	run  Runner
	log  *zap.Logger
}

// New returns a tool for the binary at path. An empty path means
// DefaultPath; a nil logger disables logging.
func New(path string, log *zap.Logger) *Tool {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tool{path: path, run: execRunner{}, log: log}
}

// NewWithRunner is New with a caller-supplied command runner.
func NewWithRunner(path string, run Runner, log *zap.Logger) *Tool {
	t := New(path, log)
	t.run = run
	return t
}

// Ciphers runs "openssl ciphers <expression>" and returns the suite
// aliases in the order the binary printed them.
func (t *Tool) Ciphers(ctx context.Context, expr string) ([]string, error) {
	args := []string{"ciphers"}
	if expr != "" {
		args = append(args, expr)
	}
	out, err := t.run.Output(ctx, t.path, args...)
	if err != nil {
		return nil, fmt.Errorf("reftool: %s %s: %w", t.path, strings.Join(args, " "), err)
	}
	aliases := splitList(string(out))
	t.log.Debug("reference tool answered",
		zap.String("expression", expr),
		zap.Int("suites", len(aliases)))
	return aliases, nil
}

// Available reports whether the binary responds to a trivial query.
func (t *Tool) Available(ctx context.Context) bool {
	_, err := t.Ciphers(ctx, "ALL")
	return err == nil
}

// splitList parses the colon-separated single-line output of the ciphers
// subcommand.
func splitList(out string) []string {
	var aliases []string
	for _, field := range strings.FieldsFunc(out, func(r rune) bool {
		return r == ':' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
	}) {
		aliases = append(aliases, field)
	}
	return aliases
}
