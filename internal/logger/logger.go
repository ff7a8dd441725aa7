package logger

import (
	"log/slog"
	"os"
)

// New construye el logger de la aplicación. Por defecto solo warnings;
// verbose habilita info y debug habilita todo con source. El logger se
// inyecta por constructor en los servicios que lo usan; también se instala
// como default de slog para el logging de librerías de terceros.
func New(debug, verbose bool) *slog.Logger {
	level := slog.LevelWarn

	if debug {
		level = slog.LevelDebug
	} else if verbose {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	l := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(l)
	return l
}
