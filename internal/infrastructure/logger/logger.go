package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout. Without a level, dev logs at
// debug and everything else at info. An unparsable level falls back to info.
func New(env, level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	switch {
	case err == nil:
		l.SetLevel(lvl)
	case level == "" && env == "dev":
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// Component scopes l to one part of the process (app_state, store, http).
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
