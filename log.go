package dynarray

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var pkgLogger atomic.Pointer[logrus.FieldLogger]

func init() {
	l := logrus.New()
	l.Out = io.Discard
	SetLogger(l)
}

// SetLogger replaces the logger used by arenas and by vectors created
// without WithLogger. Passing nil restores a logger that discards output.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		l = discard
	}
	pkgLogger.Store(&l)
}

// Logger returns the package logger.
func Logger() logrus.FieldLogger {
	return *pkgLogger.Load()
}
