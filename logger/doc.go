// Package logger is the public API of lite-logger. Most users only need
// to import this package.
//
// A Logger is immutable after construction: the enabled flag, minimum
// level, presentation tables, template, and sink are set once via the
// Builder and never modified. This makes Logger safe for concurrent use
// without any locking on the read path; a different configuration means
// building a new instance.
//
// Each emitted message passes two gates. A disabled logger drops
// everything, and a message whose severity ordinal exceeds the minimum
// level is dropped as well. Both gates run before the message text is
// resolved, so a Lazy message costs nothing when it is filtered out:
//
//	log.Emit(logger.Lazy(func() string {
//	    return expensiveDump()
//	}), logger.DebugLevel)
//
// The package initializes a default Logger (plain console sink,
// InfoLevel) in init(). The package-level functions Info, Error,
// Debugf, etc. delegate to this default instance, so simple programs
// can log without any setup:
//
//	logger.Info("ready")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("MyLogger").
//	    WithMinLevel(logger.DebugLevel).
//	    WithTemplate("[@{level}] @{message}").
//	    Build()
//
// A logger built with WithCallback hands every record to the callback
// and writes nothing to the console; one built with WithDevOutput(true)
// routes records through the structured dev sink instead of the plain
// console sink.
package logger
