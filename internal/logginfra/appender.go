// Package logginfra is gridrrt's own small logging subsystem, adapted from
// go.viam.com/rdk's logging/appender.go: a zap-backed Logger fed by one or
// more Appenders, so a host embedding the planner can route trace output to
// stdout, a file, or both without the core depending on any particular
// sink.
package logginfra

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultTimeFormatStr is the time layout used by ConsoleAppender.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries; a subset of zapcore.Core.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
	Sync() error
}

// ConsoleAppender renders log entries as human-readable tab-separated
// lines to the wrapped io.Writer.
type ConsoleAppender struct {
	io.Writer
}

// NewStdoutAppender appends to stdout.
func NewStdoutAppender() ConsoleAppender {
	return ConsoleAppender{os.Stdout}
}

// NewWriterAppender appends to an arbitrary writer.
func NewWriterAppender(w io.Writer) ConsoleAppender {
	return ConsoleAppender{w}
}

// NewFileAppender creates an Appender writing to filename through a
// lumberjack writer, for hosts that want a persisted record
// of plan() trace output across restarts. The returned io.Closer should be
// closed at shutdown.
func NewFileAppender(filename string) (Appender, io.Closer) {
	logger := &lumberjack.Logger{
		Filename: filename,
		// Large cap (MaxSize is in megabytes): size-based rotation
		// effectively never triggers.
		MaxSize: 1024 * 1024,
	}
	return NewWriterAppender(logger), logger
}

// FieldsToJSON serializes fields as a JSON object using zap's own encoder,
// so field ordering and type handling exactly matches what zap would
// otherwise have written.
func FieldsToJSON(fields []zapcore.Field) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("panic serializing log fields: %w", perr)
				return
			}
			err = fmt.Errorf("panic serializing log fields: %v", r)
		}
	}()
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := enc.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return "", err
	}
	return string(buf.Bytes()), nil
}

// Write implements Appender.
func (a ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	parts := make([]string, 0, 5)
	parts = append(parts, entry.Time.UTC().Format(DefaultTimeFormatStr))
	parts = append(parts, strings.ToUpper(entry.Level.String()))
	parts = append(parts, entry.LoggerName)
	if entry.Caller.Defined {
		parts = append(parts, callerToString(&entry.Caller))
	}
	parts = append(parts, entry.Message)

	if len(fields) == 0 {
		fmt.Fprintln(a.Writer, strings.Join(parts, "\t")) //nolint:errcheck
		return nil
	}

	fieldsJSON, err := FieldsToJSON(fields)
	if err != nil {
		if errJSON, merr := json.Marshal(map[string]string{"logging_err": err.Error()}); merr == nil {
			parts = append(parts, string(errJSON))
		} else {
			parts = append(parts, err.Error())
		}
	} else {
		parts = append(parts, fieldsJSON)
	}

	fmt.Fprintln(a.Writer, strings.Join(parts, "\t")) //nolint:errcheck
	return nil
}

// Sync is a no-op for ConsoleAppender.
func (a ConsoleAppender) Sync() error {
	return nil
}

func callerToString(caller *zapcore.EntryCaller) string {
	cnt := 0
	idx := strings.LastIndexFunc(caller.File, func(rn rune) bool {
		if rn == '/' {
			cnt++
		}
		return cnt == 2
	})
	return fmt.Sprintf("%s:%d", caller.File[idx+1:], caller.Line)
}
