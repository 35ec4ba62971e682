// Package logging configures the shared logrus logger, mapping a
// repeated -v flag to a level the way original_source/src/bin/dircmp's
// args.rs::to_verbosity maps clap's verbosity count onto log::LevelFilter.
package logging

import (
	"github.com/sirupsen/logrus"
)

// Init configures logrus for CLI use: stderr output, a timestamp format
// matching the TermLogger convention the original tool used, and a level
// derived from a verbosity count (0 = Error .. 4+ = Trace).
func Init(verbosity int) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05",
	})
	logrus.SetLevel(levelFor(verbosity))
}

func levelFor(verbosity int) logrus.Level {
	switch verbosity {
	case 0:
		return logrus.ErrorLevel
	case 1:
		return logrus.WarnLevel
	case 2:
		return logrus.InfoLevel
	case 3:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
