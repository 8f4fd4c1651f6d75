package matcher_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/seqmatch/matcher"
)

// recordingLogger keeps every message with its level.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+msg)
}

func (r *recordingLogger) Trace(msg string, _ ...any) { r.add("trace", msg) }
func (r *recordingLogger) Debug(msg string, _ ...any) { r.add("debug", msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.add("info", msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.add("warn", msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.add("error", msg) }

func (r *recordingLogger) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return strings.Join(r.lines, "\n")
}

func TestDefaultOptions(t *testing.T) {
	o := matcher.DefaultOptions()
	assert.True(t, o.DiscardEmbedded())
	assert.False(t, o.Debug())
	assert.Equal(t, matcher.OrderNumeric, o.Ordering())
}

func TestOptions_Applied(t *testing.T) {
	m, err := matcher.New([]any{}, matcher.Pattern[any]{cond(isNull, 0, 1)},
		matcher.WithDiscardEmbedded(false),
		matcher.WithDebug(true),
		matcher.WithOrdering(matcher.OrderLexical),
		nil, // nil options are ignored
	)
	require.NoError(t, err)
	o := m.Options()
	assert.False(t, o.DiscardEmbedded())
	assert.True(t, o.Debug())
	assert.Equal(t, matcher.OrderLexical, o.Ordering())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { matcher.WithLogger(nil) })
	assert.Panics(t, func() { matcher.WithOrdering(matcher.Ordering(42)) })
	assert.Panics(t, func() { matcher.WithTracerProvider(nil) })
	assert.Panics(t, func() { matcher.WithMeterProvider(nil) })
}

func TestDebug_LogsPhases(t *testing.T) {
	rec := &recordingLogger{}
	_, err := matcher.Find(context.Background(), mixedItems,
		matcher.Pattern[any]{cond(isNumber, 1, 1), cond(isString, 1, 4)},
		matcher.WithDebug(true), matcher.WithLogger(rec))
	require.NoError(t, err)

	out := rec.joined()
	for _, want := range []string{
		"debug combination build time",
		"debug paths",
		"debug build predicate matrix time",
		"trace predicate matrix",
		"debug walk time",
		"debug discardEmbeddedRanges",
		"debug sort",
		"debug evaluate time",
		"debug matches",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDebug_SkippedFilterIsLogged(t *testing.T) {
	rec := &recordingLogger{}
	_, err := matcher.Find(context.Background(), []any{1}, matcher.Pattern[any]{cond(isNumber, 1, 1)},
		matcher.WithDebug(true), matcher.WithLogger(rec), matcher.WithDiscardEmbedded(false))
	require.NoError(t, err)
	assert.Contains(t, rec.joined(), "discardEmbeddedRanges: SKIPPED")
}

func TestDebugOff_LoggerSilenced(t *testing.T) {
	rec := &recordingLogger{}
	_, err := matcher.Find(context.Background(), mixedItems,
		matcher.Pattern[any]{cond(isNumber, 1, 1)},
		matcher.WithLogger(rec))
	require.NoError(t, err)
	assert.Empty(t, rec.joined(), "without debug the engine uses the no-op logger")
}

func TestTelemetry_SpansAndCounters(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	pattern := matcher.Pattern[any]{cond(isNumber, 1, 1), cond(isString, 1, 4)}
	got, err := matcher.Find(context.Background(), mixedItems, pattern,
		matcher.WithTracerProvider(tp), matcher.WithMeterProvider(mp))
	require.NoError(t, err)
	require.Len(t, got, 2)

	names := map[string]bool{}
	for _, s := range sr.Ended() {
		names[s.Name()] = true
	}
	for _, want := range []string{
		"seqmatch.evaluate",
		"seqmatch.combinations",
		"seqmatch.predicate_matrix",
		"seqmatch.walk",
		"seqmatch.discard_embedded",
		"seqmatch.sort",
	} {
		assert.True(t, names[want], "span %s", want)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(len(mixedItems)*len(pattern)), sums["seqmatch.predicate.calls"])
	assert.Equal(t, int64(4), sums["seqmatch.paths"])
	assert.Equal(t, int64(2), sums["seqmatch.matches"])
}

func TestTelemetry_ErrorRecordedOnSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	fail := func(context.Context, any, int, []any) (bool, error) { return false, assert.AnError }

	_, err := matcher.Find(context.Background(), []any{1}, matcher.Pattern[any]{{Min: 1, Max: 1, Predicate: fail}},
		matcher.WithTracerProvider(tp))
	require.ErrorIs(t, err, assert.AnError)

	var evaluate sdktrace.ReadOnlySpan
	for _, s := range sr.Ended() {
		if s.Name() == "seqmatch.evaluate" {
			evaluate = s
		}
	}
	require.NotNil(t, evaluate)
	assert.Equal(t, "Error", evaluate.Status().Code.String())
}
