// Package lax implements permissive command-line token classification.
//
// A command line is made of two kinds of tokens: positional arguments
// (free-standing values) and options (tokens starting with '-'). Options
// split further into flags (boolean, presence is everything) and
// parameters (a name with an associated value). Nothing has to be
// declared up front: unregistered options are still accepted and
// classified heuristically, steered by a Mode bitmask and an optional
// registry of names known to take values.
package lax

import (
	"strconv"
	"strings"

	"github.com/dzonerzy/go-lax/internal/intern"
)

// Parser classifies raw tokens into positional arguments, flags and
// parameters. The registry of value-bearing parameter names is filled
// before parsing and read-only while a parse runs. A Parser is not safe
// for concurrent use; the Results it produces are.
type Parser struct {
	registered map[string]struct{}
}

// New creates a Parser with the given parameter names pre-registered.
func New(names ...string) *Parser {
	p := &Parser{registered: make(map[string]struct{}, len(names))}
	p.Register(names...)
	return p
}

// Register adds parameter names to the registry. Leading dashes are
// stripped first, so Register("--output") and Register("output") are the
// same call. Registering a name twice has no additional effect.
func (p *Parser) Register(names ...string) {
	for _, name := range names {
		p.registered[trimLeadingDashes(name)] = struct{}{}
	}
}

// IsRegistered reports whether name, dash-stripped, is in the registry.
func (p *Parser) IsRegistered(name string) bool {
	_, ok := p.registered[trimLeadingDashes(name)]
	return ok
}

// Parse classifies args under DefaultMode.
func (p *Parser) Parse(args []string) (*Result, error) {
	return p.ParseMode(args, DefaultMode)
}

// ParseStrings is a variadic convenience over Parse.
func (p *Parser) ParseStrings(args ...string) (*Result, error) {
	return p.Parse(args)
}

// ParseMode classifies args in a single left-to-right pass under the
// given mode bits. Token input never fails; the only error is the
// invalid combination of both Prefer* bits. Every call produces a fresh
// Result, so re-parsing replaces rather than accumulates.
func (p *Parser) ParseMode(args []string, mode Mode) (*Result, error) {
	if mode.conflicting() {
		return nil, NewParseError(ErrorTypeInvalidMode,
			"lax: PreferFlagForUnregOption and PreferParamForUnregOption are mutually exclusive")
	}

	res := newResult()

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "" {
			continue
		}
		if !isOption(tok) {
			res.pos = append(res.pos, tok)
			continue
		}

		name := trimLeadingDashes(tok)

		// name=value splitting happens before any other reading of the
		// name, so a registered "name=..." never consumes a token.
		if mode&NoSplitOnEqualSign == 0 {
			if eq := strings.IndexByte(name, '='); eq != -1 {
				res.addParam(intern.Intern(name[:eq]), name[eq+1:])
				continue
			}
		}

		// Unregistered single-dash token in multiflag mode expands to
		// one flag per character. A trailing registered single-char
		// name is detached and falls through as a parameter candidate.
		if len(tok)-len(name) == 1 && mode&SingleDashIsMultiflag != 0 && !p.IsRegistered(name) {
			var keep string
			if name != "" && p.IsRegistered(name[len(name)-1:]) {
				keep = name[len(name)-1:]
				name = name[:len(name)-1]
			}
			for j := 0; j < len(name); j++ {
				res.addFlag(intern.InternByte(name[j]))
			}
			if keep == "" {
				continue
			}
			name = keep
		}

		// A terminal option, or one followed by another option, has no
		// token left to take as a value: it is a flag regardless of
		// registration or Prefer* mode.
		if i == len(args)-1 || isOption(args[i+1]) {
			res.addFlag(intern.Intern(name))
			continue
		}

		if p.IsRegistered(name) || mode&PreferParamForUnregOption != 0 {
			res.addParam(intern.Intern(name), args[i+1])
			i++ // the value token is consumed, never classified on its own
			continue
		}
		res.addFlag(intern.Intern(name))
	}

	return res, nil
}

// isOption reports whether tok starts an option. A token that parses in
// full as a float literal is positional even when it starts with '-',
// which keeps -5 and -3.14 out of the option space.
func isOption(tok string) bool {
	if tok == "" || isNumber(tok) {
		return false
	}
	return tok[0] == '-'
}

// isNumber requires a full parse; trailing garbage does not count.
func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// trimLeadingDashes removes every leading '-' from name.
func trimLeadingDashes(name string) string {
	i := 0
	for i < len(name) && name[i] == '-' {
		i++
	}
	return name[i:]
}
