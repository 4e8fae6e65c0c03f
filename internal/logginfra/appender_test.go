package logginfra_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"

	rrt "github.com/viam-labs/gridrrt"
	"github.com/viam-labs/gridrrt/internal/logginfra"
)

func openGrid(nx, ny int) *rrt.Grid {
	return rrt.NewGrid(nx, ny, 1, 0, 0)
}

// TestConsoleAppenderWritesPlanTrace routes a real Plan call's log output
// through a ConsoleAppender backed by an in-memory buffer, exercising Write
// end to end. Plan's log lines carry no structured fields and New records no
// caller, so FieldsToJSON and callerToString are not reached here.
func TestConsoleAppenderWritesPlanTrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logginfra.New(zapcore.DebugLevel, logginfra.NewWriterAppender(&buf))

	g := openGrid(30, 30)
	cfg := rrt.DefaultConfig()
	cfg.SamplePoints = 1500
	p, err := rrt.NewPlanner(g, cfg, logger)
	test.That(t, err, test.ShouldBeNil)

	ok, _, _, _, err := p.Plan(rrt.World{X: 1, Y: 1}, rrt.World{X: 25, Y: 25}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)

	out := buf.String()
	test.That(t, out, test.ShouldNotBeBlank)
	test.That(t, strings.Contains(out, "plan"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "starting"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "succeeded"), test.ShouldBeTrue)
}

// TestFileAppenderPersistsPlanTrace routes a Plan call's log output through
// the lumberjack-backed appender from NewFileAppender, exercising its
// on-disk write path, and registers its Closer with the Planner so
// Close flushes and releases the file.
func TestFileAppenderPersistsPlanTrace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gridrrt.log")
	appender, closer := logginfra.NewFileAppender(path)
	logger := logginfra.New(zapcore.InfoLevel, appender)

	g := openGrid(30, 30)
	cfg := rrt.DefaultConfig()
	cfg.SamplePoints = 1500
	p, err := rrt.NewPlanner(g, cfg, logger)
	test.That(t, err, test.ShouldBeNil)
	p.SetCloser(closer.Close)

	ok, _, _, _, err := p.Plan(rrt.World{X: 1, Y: 1}, rrt.World{X: 25, Y: 25}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)

	test.That(t, p.Close(nil), test.ShouldBeNil)

	contents, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(contents), test.ShouldNotBeBlank)
	test.That(t, strings.Contains(string(contents), "succeeded"), test.ShouldBeTrue)
}

// TestFieldsToJSONRoundTripsStructuredFields confirms FieldsToJSON produces
// a JSON object a downstream log-shipper could parse, independent of the
// Appender it backs.
func TestFieldsToJSONRoundTripsStructuredFields(t *testing.T) {
	t.Parallel()

	fields := []zapcore.Field{
		zapcore.Field{Key: "run_id", Type: zapcore.StringType, String: "abc123"},
		zapcore.Field{Key: "iterations", Type: zapcore.Int64Type, Integer: 42},
	}
	out, err := logginfra.FieldsToJSON(fields)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Contains(out, `"run_id":"abc123"`), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, `"iterations":42`), test.ShouldBeTrue)
}
