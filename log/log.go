package log

import (
	log "github.com/sirupsen/logrus"
)

// Logger logs a message with alternating key/value pairs.
type Logger interface {
	Debug(message string, opts ...interface{})
	Info(message string, opts ...interface{})
	Error(message string, opts ...interface{})
	Fatal(message string, opts ...interface{})
	Child(opts ...interface{}) Logger
}

type ChildLogger struct {
	l      Logger
	fields []interface{}
}

func (c *ChildLogger) Debug(message string, opts ...interface{}) {
	c.l.Debug(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Info(message string, opts ...interface{}) {
	c.l.Info(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Error(message string, opts ...interface{}) {
	c.l.Error(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Fatal(message string, opts ...interface{}) {
	c.l.Fatal(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      c,
		fields: opts,
	}
}

type rootLogger struct {
}

func (r *rootLogger) Debug(message string, opts ...interface{}) {
	r.entry(opts).Debug(message)
}

func (r *rootLogger) Info(message string, opts ...interface{}) {
	r.entry(opts).Info(message)
}

func (r *rootLogger) Error(message string, opts ...interface{}) {
	r.entry(opts).Error(message)
}

func (r *rootLogger) Fatal(message string, opts ...interface{}) {
	r.entry(opts).Fatal(message)
}

func (r *rootLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      r,
		fields: opts,
	}
}

func (r *rootLogger) entry(opts []interface{}) *log.Entry {
	if len(opts)%2 != 0 {
		panic("mismatched log key/value pairs")
	}

	fields := make(log.Fields)
	for i := 0; i < len(opts); i += 2 {
		fields[opts[i].(string)] = opts[i+1]
	}
	return log.WithFields(fields)
}

var root = new(rootLogger)

func ModuleLogger(name string) Logger {
	return root.Child("module", name)
}

// SetDebug toggles debug-level output for the whole process.
func SetDebug(on bool) {
	if on {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
