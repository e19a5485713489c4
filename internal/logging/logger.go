package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger: JSON records on stdout at
// INFO and above. The DB error sink is attached later in main once the
// database connection exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
