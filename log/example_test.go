package log_test

import (
	"log/slog"
	"os"

	"github.com/rbleattler/RegExRules/log"
)

func Example() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"))
	logger.Info("compiled rule", slog.String("regex", `^\w+$`))
	// Output:
	// level=INFO msg="compiled rule" regex=^\w+$
}

func Example_json() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelDebug),
	)

	logger.With(slog.String("source", "date.yml")).Debug("parsed rule", slog.Int("nodes", 3))
	// Output:
	// {"level":"DEBUG","msg":"parsed rule","source":"date.yml","nodes":3}
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn), log.WithTimeLayout("none"))

	logger.Info("not written")
	logger.Warn("constraint violated", slog.String("field", "Quantifiers.Max"))
	// Output:
	// level=WARN msg="constraint violated" field=Quantifiers.Max
}
