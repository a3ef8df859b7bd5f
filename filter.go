package logkick

import "strings"

// levelFilter drops records below the effective minimum severity resolved
// from the directive sequence for the record's module.
type levelFilter struct {
	next Drain
	dirs []ModuleDirective
}

func newLevelFilter(next Drain, dirs []ModuleDirective) *levelFilter {
	return &levelFilter{next: next, dirs: dirs}
}

func (f *levelFilter) Log(r Record) {
	if r.Level < resolveLevel(f.dirs, r.Module) {
		return
	}
	f.next.Log(r)
}

// moduleFilter gates Debug and Trace records on an allow-list of module
// prefixes so an application can enable verbose self-diagnostics without
// debug noise from its dependencies. Records above Debug pass through
// unconditionally; gated records are dropped silently.
type moduleFilter struct {
	next     Drain
	prefixes []string
}

func newModuleFilter(next Drain, prefixes []string) *moduleFilter {
	return &moduleFilter{next: next, prefixes: prefixes}
}

func (f *moduleFilter) Log(r Record) {
	if r.Level > DebugLevel {
		f.next.Log(r)
		return
	}
	for _, p := range f.prefixes {
		if strings.HasPrefix(r.Module, p) {
			f.next.Log(r)
			return
		}
	}
}
