// Package logkick assembles a ready-to-use structured logger from a chain of
// output and filtering stages, driven by builder options and environment
// variables, so application code never hand-wires format selection, level
// filtering, or per-module verbosity.
//
// Key features
//   - JSON or compact colorized console output, selected once at Init
//     (LOG_JSON=1 for JSON; RUST_LOG_JSON honored for compatibility)
//   - env_logger-style directives via LOG (or RUST_LOG), e.g.
//     "myapp=debug,warning": per-module minimum levels with longest-prefix
//     matching plus a bare default
//   - per-module debug allow-list so an application can trace itself without
//     debug noise from dependencies
//   - async boundary: log calls enqueue and return; a Guard flushes the
//     queue on shutdown with a bounded timeout
//   - optional bridging of the stdlib log package and a log/slog handler, so
//     legacy and slog-based dependencies share the pipeline
//
// Serialization, console rendering, and file rotation are delegated to
// rs/zerolog and lumberjack.
//
// Typical usage
//
//	logger, guard, err := logkick.New("myapp").
//		WithDebugLogFor("myapp").
//		Init()
//	if err != nil {
//		panic(err)
//	}
//	defer guard.Close()
//
//	logger.Info("started", logkick.Str("addr", addr))
//	db := logger.Named("db")
//	db.Debug("pool sized", logkick.Int("conns", 8))
package logkick
