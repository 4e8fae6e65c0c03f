package logginfra

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface gridrrt's Planner depends on; deliberately
// narrow so a host can hand in any zap.SugaredLogger-compatible value.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// appenderCore adapts a slice of Appenders into a zapcore.Core, so the
// standard zap API (levels, sugared Printf-style calls) sits on top of the
// same Appender abstraction go.viam.com/rdk exposes to its hosts.
type appenderCore struct {
	zapcore.LevelEnabler
	appenders []Appender
}

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	return c
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	for _, a := range c.appenders {
		if err := a.Write(entry, fields); err != nil {
			return err
		}
	}
	return nil
}

func (c *appenderCore) Sync() error {
	for _, a := range c.appenders {
		if err := a.Sync(); err != nil {
			return err
		}
	}
	return nil
}

// New builds a Logger at the given level, fanning out to appenders. With no
// appenders given, it defaults to a single stdout console appender.
func New(level zapcore.Level, appenders ...Appender) Logger {
	if len(appenders) == 0 {
		appenders = []Appender{NewStdoutAppender()}
	}
	core := &appenderCore{LevelEnabler: level, appenders: appenders}
	return zap.New(core).Sugar()
}

// NewNop returns a Logger that discards everything, the default for a
// Planner constructed without an explicit logger.
func NewNop() Logger {
	return zap.NewNop().Sugar()
}
