package stepparse

import (
	"fmt"
	"log/slog"
	"os"
)

var debugLogger *slog.Logger

// SetDebug turns on (or off, passing nil) verbose derivation logging, sent
// at Debug level. resolve reports through debugf each time it defers an
// opaque term behind its wait/EOF choice, so a caller can redirect that
// tracing (or silence it) by swapping the logger.
func SetDebug(logger *slog.Logger) {
	debugLogger = logger
}

func debugf(format string, args ...any) {
	if debugLogger == nil {
		return
	}
	debugLogger.Debug(fmt.Sprintf(format, args...))
}

// showDepthLimit bounds how far ShowWithDefault probes into More closures:
// a recursive grammar (many0 and friends) would otherwise expand forever,
// one probed repetition at a time.
const showDepthLimit = 8

// ShowWithDefault renders p's shape for debugging/REPL display: the variant
// name, plus, for Result, the value default formatting produces for it and
// the length of its pushback tail. A More closure has no inspectable state of its own, so
// it is probed with def -- shown as More(def -> ...) -- down to a fixed
// depth; a LookAheadIgnore's probed parser is type-erased and only named.
func ShowWithDefault[S any, R any](def S, p Term[S, R]) string {
	return showWithDefault(def, p, 0)
}

func showWithDefault[S any, R any](def S, p Term[S, R], depth int) string {
	switch t := force(p).(type) {
	case failureTerm[S, R]:
		return "Failure"
	case resultTerm[S, R]:
		return fmt.Sprintf("Result(%v, tail=%d)", t.value, len(t.tail))
	case resultPartTerm[S, R]:
		return fmt.Sprintf("ResultPart(%s)", showWithDefault(def, t.p, depth+1))
	case choiceTerm[S, R]:
		return fmt.Sprintf("Choice(%s, %s)", showWithDefault(def, t.p1, depth+1), showWithDefault(def, t.p2, depth+1))
	case committedChoiceTerm[S, R]:
		return fmt.Sprintf("CommittedLeftChoice(%s, %s)", showWithDefault(def, t.p1, depth+1), showWithDefault(def, t.p2, depth+1))
	case moreTerm[S, R]:
		if depth >= showDepthLimit {
			return "More(...)"
		}
		return fmt.Sprintf("More(%v -> %s)", def, showWithDefault(def, t.g(def), depth+1))
	case lookAheadTerm[S, R]:
		return fmt.Sprintf("LookAhead(%s)", showWithDefault(def, t.p, depth+1))
	case lookAheadIgnoreTerm[S, R]:
		return "LookAheadIgnore(...)"
	default:
		return "<unknown>"
	}
}

func init() {
	if os.Getenv("STEPPARSE_DEBUG") != "" {
		SetDebug(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}
