package logkick

import (
	"fmt"
	"strings"
)

// ModuleDirective pairs a module-path prefix with the minimum severity
// records from that subtree must reach to be emitted. An empty prefix is the
// default directive applying to modules no prefix matches.
type ModuleDirective struct {
	Prefix string
	Level  Severity
}

// ParseDirectives parses an env_logger-style directive list:
//
//	directive-list := directive (',' directive)*
//	directive      := [module-prefix '='] level-name
//
// A directive without a module prefix sets the default severity; when several
// bare directives appear, the last one wins. Whitespace around tokens is
// trimmed and empty tokens are skipped. An unknown level name fails with
// ErrInvalidDirective carrying the offending token. An empty or blank spec
// yields a default-only sequence at Info.
func ParseDirectives(spec string) ([]ModuleDirective, error) {
	dirs := make([]ModuleDirective, 0, 4)
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		prefix, levelName, found := strings.Cut(tok, "=")
		if !found {
			levelName, prefix = prefix, ""
		}
		level, err := ParseSeverity(levelName)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDirective, tok)
		}
		dirs = append(dirs, ModuleDirective{Prefix: strings.TrimSpace(prefix), Level: level})
	}
	if len(dirs) == 0 {
		dirs = append(dirs, ModuleDirective{Level: InfoLevel})
	}
	return dirs, nil
}

// resolveLevel returns the effective minimum severity for a module path.
// The longest matching prefix wins; among equal-length matches the later
// directive wins. When no prefix matches, the last bare directive applies,
// falling back to Info when the sequence has none.
func resolveLevel(dirs []ModuleDirective, module string) Severity {
	def := InfoLevel
	best := -1
	level := InfoLevel
	for _, d := range dirs {
		if d.Prefix == "" {
			def = d.Level
			continue
		}
		if strings.HasPrefix(module, d.Prefix) && len(d.Prefix) >= best {
			best = len(d.Prefix)
			level = d.Level
		}
	}
	if best < 0 {
		return def
	}
	return level
}

// defaultLevelOf returns the severity the last bare directive establishes,
// or Info when the sequence has none.
func defaultLevelOf(dirs []ModuleDirective) Severity {
	def := InfoLevel
	for _, d := range dirs {
		if d.Prefix == "" {
			def = d.Level
		}
	}
	return def
}
