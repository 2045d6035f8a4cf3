// Package logger builds slog loggers for the task runtime.
//
// New constructs a *slog.Logger with a level, format, output destination,
// and static attributes chosen via functional options. Applications build
// one logger at startup and pass it by reference into the components that
// log. There is no package-level logger state.
//
//	log := logger.New(
//	    logger.WithJSONFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "search")),
//	)
//
//	searchTask := task.New(fetch, task.WithLogger(log), task.WithName("search"))
package logger
