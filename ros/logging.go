package ros

import (
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
)

// rootLogger backs every module logger handed out by NewLogger. Tests and
// callers that want to capture or redirect log output should call
// SetRootLogger before creating any Publication/Subscription.
var rootLogger = modular.NewRootLogger(logrus.New())

// SetRootLogger replaces the package-wide logrus root used to mint module
// loggers. It must be called before any Publication or Subscription is
// created to take effect for them.
func SetRootLogger(base *logrus.Logger) {
	rootLogger = modular.NewRootLogger(base)
}

// NewLogger mints one module logger per long-lived component (acceptor,
// fan-out, reader). Callers tag individual log lines with logrus.Fields,
// e.g. log.WithFields(logrus.Fields{"topic": t}).
func NewLogger() *modular.ModuleLogger {
	log := rootLogger.GetModuleLogger()
	return &log
}
