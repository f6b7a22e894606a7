package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/warespec/specification-go/specification/oteladapters"
)

// recordingLogger captures emitted records for assertions.
type recordingLogger struct {
	noop.Logger
	records []log.Record
}

func (r *recordingLogger) Emit(_ context.Context, record log.Record) {
	r.records = append(r.records, record)
}

func Test_NewOTelLogger_Construction(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	assert.NotNil(t, logger, "NewOTelLogger should return non-nil logger")
}

func Test_OTelLogger_AllLevels(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)
	ctx := context.Background()

	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	require.Len(t, recorder.records, 4)

	assert.Equal(t, log.SeverityDebug, recorder.records[0].Severity())
	assert.Equal(t, "debug message", recorder.records[0].Body().AsString())

	assert.Equal(t, log.SeverityInfo, recorder.records[1].Severity())
	assert.Equal(t, "info message", recorder.records[1].Body().AsString())

	assert.Equal(t, log.SeverityWarn, recorder.records[2].Severity())
	assert.Equal(t, "warn message", recorder.records[2].Body().AsString())

	assert.Equal(t, log.SeverityError, recorder.records[3].Severity())
	assert.Equal(t, "error message", recorder.records[3].Body().AsString())
}

func Test_OTelLogger_ConvertsArgsToAttributes(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	logger.InfoContext(context.Background(), "specification evaluated",
		"specification", "low_stock",
		"satisfied", true,
		"matches", 3,
	)

	require.Len(t, recorder.records, 1)

	attributes := collectAttributes(recorder.records[0])

	assert.Equal(t, "low_stock", attributes["specification"])
	assert.Equal(t, "true", attributes["satisfied"])
	assert.Equal(t, "3", attributes["matches"])
}

func Test_OTelLogger_SkipsMalformedArgs(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	logger.InfoContext(context.Background(), "specification evaluated",
		42, "value for non-string key",
		"satisfied", false,
		"dangling key",
	)

	require.Len(t, recorder.records, 1)

	attributes := collectAttributes(recorder.records[0])

	assert.Equal(t, map[string]string{"satisfied": "false"}, attributes)
}

func collectAttributes(record log.Record) map[string]string {
	attributes := make(map[string]string)

	record.WalkAttributes(func(kv log.KeyValue) bool {
		attributes[kv.Key] = kv.Value.AsString()

		return true
	})

	return attributes
}
