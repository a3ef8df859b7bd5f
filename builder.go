package logkick

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/atomic"
)

// jsonMode is the tri-state format switch: left to the environment, forced
// on, or forced off. Exactly one format decision is made per Init.
type jsonMode int8

const (
	jsonFromEnv jsonMode = iota
	jsonForcedOn
	jsonForcedOff
)

// builderConfig is the option accumulator owned by the Builder until Init
// consumes it.
type builderConfig struct {
	Name         string        `validate:"required"`
	QueueLimit   int           `validate:"gte=0"`
	FlushTimeout time.Duration `validate:"gte=0"`

	defaultLevel Severity
	debugModules []string
	json         jsonMode
	bridge       bool
	async        bool
	noColor      bool
	filePath     string
	out          io.Writer
}

// envConfig collects the process environment, read once at Init. The RUST_*
// names are honored as fallbacks so deployment manifests written for the
// predecessor service keep working unchanged.
type envConfig struct {
	JSON             string `env:"LOG_JSON"`
	JSONCompat       string `env:"RUST_LOG_JSON"`
	Directives       string `env:"LOG"`
	DirectivesCompat string `env:"RUST_LOG"`
}

// Builder assembles a structured logger from accumulated options plus the
// process environment. Obtain one with New, chain setters, then call Init
// exactly once. Setters are inert once Init has run.
type Builder struct {
	cfg       builderConfig
	finalized atomic.Bool
}

// New returns a Builder for a service with the given name.
//
// Defaults: compact console output (the environment may switch it to JSON),
// Info minimum level, unbounded async queue, legacy stdlib log bridging
// enabled.
func New(name string) *Builder {
	return &Builder{cfg: builderConfig{
		Name:         name,
		FlushTimeout: defaultFlushTimeout,
		defaultLevel: InfoLevel,
		json:         jsonFromEnv,
		bridge:       true,
		async:        true,
	}}
}

// WithDebugLogFor grants Debug visibility to records whose module path
// starts with prefix. May be called multiple times, typically for the
// application's own modules.
func (b *Builder) WithDebugLogFor(prefix string) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.debugModules = append(b.cfg.debugModules, prefix)
	return b
}

// WithDefaultLevel sets the minimum severity applied to modules no directive
// matches. The LOG environment variable still overrides it.
func (b *Builder) WithDefaultLevel(level Severity) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.defaultLevel = level
	return b
}

// ForceJSON overrides the environment-driven format selection in either
// direction. Typically the selection is left to LOG_JSON instead.
func (b *Builder) ForceJSON(on bool) *Builder {
	if b.finalized.Load() {
		return b
	}
	if on {
		b.cfg.json = jsonForcedOn
	} else {
		b.cfg.json = jsonForcedOff
	}
	return b
}

// DisableLegacyBridge skips routing the stdlib log package through the
// assembled pipeline.
func (b *Builder) DisableLegacyBridge() *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.bridge = false
	return b
}

// DisableAsync controls the async boundary. Passing true makes every log
// call write synchronously, which is mainly useful for tests and short-lived
// tools; the returned Guard becomes a no-op.
func (b *Builder) DisableAsync(disable bool) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.async = !disable
	return b
}

// WithRotatingFile adds a rotating file sink at path. The file always
// receives the raw JSON stream, regardless of the console format selection.
func (b *Builder) WithRotatingFile(path string) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.filePath = path
	return b
}

// WithBoundedQueue opts into a bounded async queue of size records. A full
// queue blocks producers until the consumer catches up, trading the
// non-blocking fast path for a memory bound.
func (b *Builder) WithBoundedQueue(size int) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.QueueLimit = size
	return b
}

// WithFlushTimeout bounds how long Guard.Close waits for queued records.
func (b *Builder) WithFlushTimeout(d time.Duration) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.FlushTimeout = d
	return b
}

// WithNoColor disables ANSI colors in console output even on a terminal.
func (b *Builder) WithNoColor(on bool) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.noColor = on
	return b
}

// WithOutput redirects both output formats to w instead of the process
// streams. Primarily for tests and embedding.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	if b.finalized.Load() {
		return b
	}
	b.cfg.out = w
	return b
}

// Init consumes the builder and composes the drain chain: format sink,
// directive level filter, module debug filter, async boundary, and finally
// the optional legacy bridge. Init is one-shot; a second call fails with
// ErrAlreadyInitialized.
func (b *Builder) Init() (*Logger, *Guard, error) {
	if !b.finalized.CompareAndSwap(false, true) {
		return nil, nil, ErrAlreadyInitialized
	}
	if err := validateConfig(&b.cfg); err != nil {
		return nil, nil, err
	}

	ec := loadEnv()
	dirs := b.directives(ec)

	var drain Drain = newSink(&b.cfg, resolveJSON(&b.cfg, ec))
	drain = newLevelFilter(drain, dirs)
	if defaultLevelOf(dirs) > DebugLevel {
		// With a Debug-or-lower default the gate would be a no-op; skip it.
		drain = newModuleFilter(drain, debugPrefixes(&b.cfg, dirs))
	}

	guard := &Guard{timeout: b.cfg.FlushTimeout}
	if b.cfg.async {
		ad := newAsyncDrain(drain, b.cfg.QueueLimit)
		drain = ad
		guard.drain = ad
	}

	logger := &Logger{drain: drain, module: b.cfg.Name}
	if b.cfg.bridge {
		if err := InstallLegacyBridge(logger); err != nil {
			_ = guard.Close()
			return nil, nil, err
		}
	}
	return logger, guard, nil
}

// loadEnv reads the environment once. Startup must never fail on malformed
// environment input, so problems are reported on stderr and defaults apply.
func loadEnv() envConfig {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		fmt.Fprintf(os.Stderr, "logkick: reading environment: %v\n", err)
	}
	return ec
}

// resolveJSON picks the output format: an explicit builder override wins,
// then a truthy LOG_JSON (or RUST_LOG_JSON); unset or unparsable values keep
// the console default.
func resolveJSON(cfg *builderConfig, ec envConfig) bool {
	switch cfg.json {
	case jsonForcedOn:
		return true
	case jsonForcedOff:
		return false
	}
	raw := ec.JSON
	if raw == "" {
		raw = ec.JSONCompat
	}
	if raw == "" {
		return false
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logkick: ignoring unparsable JSON toggle %q\n", raw)
		return false
	}
	return on
}

// directives builds the effective sequence: the builder's default level
// first, then its debug modules, then the environment directives, so the
// environment overrides both on conflicts.
func (b *Builder) directives(ec envConfig) []ModuleDirective {
	dirs := make([]ModuleDirective, 0, len(b.cfg.debugModules)+2)
	dirs = append(dirs, ModuleDirective{Level: b.cfg.defaultLevel})
	for _, m := range b.cfg.debugModules {
		dirs = append(dirs, ModuleDirective{Prefix: m, Level: DebugLevel})
	}

	spec := ec.Directives
	if strings.TrimSpace(spec) == "" {
		spec = ec.DirectivesCompat
	}
	if strings.TrimSpace(spec) == "" {
		return dirs
	}
	envDirs, err := ParseDirectives(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logkick: %v, falling back to defaults\n", err)
		return dirs
	}
	return append(dirs, envDirs...)
}

// debugPrefixes is the module-filter allow list: the builder's debug modules
// plus every prefix the directive sequence grants Debug or lower.
func debugPrefixes(cfg *builderConfig, dirs []ModuleDirective) []string {
	prefixes := append([]string(nil), cfg.debugModules...)
	for _, d := range dirs {
		if d.Prefix != "" && d.Level <= DebugLevel {
			prefixes = append(prefixes, d.Prefix)
		}
	}
	return prefixes
}
