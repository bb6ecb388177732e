package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lamnhan066/lite-logger/core"
	"github.com/lamnhan066/lite-logger/handler"
)

func fixedTimestamp(time.Time) string { return "[12:00:00]" }

func TestLogger_ThresholdGate(t *testing.T) {
	severities := []core.Severity{
		core.ErrorLevel,
		core.WarningLevel,
		core.SuccessLevel,
		core.InfoLevel,
		core.StepLevel,
		core.DebugLevel,
	}

	// A message passes iff its ordinal is <= the threshold ordinal.
	for _, threshold := range severities {
		sink := handler.NewCapture()
		log := NewBuilder().
			WithMinLevel(threshold).
			WithHandler(sink).
			Build()

		for _, sev := range severities {
			if err := log.Emit(core.Text("m"), sev); err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
		}

		var want int
		for _, sev := range severities {
			if sev <= threshold {
				want++
			}
		}
		if sink.Len() != want {
			t.Errorf("Threshold %s: expected %d emitted records, got %d", threshold, want, sink.Len())
		}
		for _, rec := range sink.Records() {
			if rec.Severity > threshold {
				t.Errorf("Threshold %s: severity %s should have been filtered", threshold, rec.Severity)
			}
		}
	}
}

func TestLogger_DisabledSuppressesEverything(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithEnabled(false).
		WithMinLevel(core.DebugLevel).
		WithHandler(sink).
		Build()

	lazyCalls := 0
	severities := []core.Severity{
		core.ErrorLevel,
		core.WarningLevel,
		core.SuccessLevel,
		core.InfoLevel,
		core.StepLevel,
		core.DebugLevel,
	}
	for _, sev := range severities {
		if err := log.Emit(core.Lazy(func() string {
			lazyCalls++
			return "expensive"
		}), sev); err != nil {
			t.Fatalf("Emit failed: %v", err)
		}
	}

	if sink.Len() != 0 {
		t.Errorf("Disabled logger emitted %d records", sink.Len())
	}
	if lazyCalls != 0 {
		t.Errorf("Disabled logger invoked lazy producer %d times", lazyCalls)
	}
}

func TestLogger_LazyInvokedExactlyOnce(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithMinLevel(core.InfoLevel).
		WithHandler(sink).
		Build()

	calls := 0
	msg := core.Lazy(func() string {
		calls++
		return "built once"
	})

	// Passes both gates: exactly one invocation.
	if err := log.Emit(msg, core.InfoLevel); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one producer call, got %d", calls)
	}
	if sink.Records()[0].Raw != "built once" {
		t.Errorf("Expected resolved text in record, got %q", sink.Records()[0].Raw)
	}

	// Fails the threshold gate: zero invocations.
	if err := log.Emit(core.Lazy(func() string {
		calls++
		return "filtered"
	}), core.DebugLevel); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Filtered call invoked the producer, total calls %d", calls)
	}
}

func TestLogger_RenderedEndsWithReset(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithMinLevel(core.DebugLevel).
		WithHandler(sink).
		WithTimestamp(fixedTimestamp).
		Build()

	log.Error("a")
	log.Info("b")
	log.Debug("c")

	for _, rec := range sink.Records() {
		if !strings.HasSuffix(rec.Rendered, "\x1b[0m") {
			t.Errorf("Rendered text must end with reset, got %q", rec.Rendered)
		}
	}
}

func TestLogger_DefaultTemplateOutput(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithHandler(sink).
		WithTimestamp(fixedTimestamp).
		Build()

	if err := log.Info("hello world"); err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	want := "\x1b[34m[12:00:00] 💡 [INFO] hello world\x1b[0m"
	if got := sink.Records()[0].Rendered; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLogger_CustomTemplate(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithHandler(sink).
		WithTemplate("[@{level}] @{message} @{icon}").
		WithTimestamp(fixedTimestamp).
		Build()

	if err := log.Info("Custom format"); err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	rendered := sink.Records()[0].Rendered
	if !strings.Contains(rendered, "[INFO] Custom format 💡") {
		t.Errorf("Expected '[INFO] Custom format 💡' in output, got %q", rendered)
	}
}

func TestLogger_CallbackBypassesConsole(t *testing.T) {
	var buf bytes.Buffer
	console := handler.NewConsoleHandler(handler.ConsoleConfig{Writer: &buf})

	var gotRaw, gotRendered string
	var gotSev core.Severity
	calls := 0

	log := NewBuilder().
		WithName("MyLogger").
		WithHandler(console). // callback still wins
		WithCallback(func(raw, rendered string, sev core.Severity) {
			calls++
			gotRaw = raw
			gotRendered = rendered
			gotSev = sev
		}).
		WithTimestamp(fixedTimestamp).
		Build()

	if err := log.Warning("careful"); err != nil {
		t.Fatalf("Warning failed: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("Console received %d bytes despite callback, output %q", buf.Len(), buf.String())
	}
	if calls != 1 {
		t.Errorf("Expected exactly one callback invocation, got %d", calls)
	}
	if gotRaw != "careful" {
		t.Errorf("Expected raw message, got %q", gotRaw)
	}
	if gotSev != core.WarningLevel {
		t.Errorf("Expected WarningLevel, got %v", gotSev)
	}
	if strings.Contains(gotRendered, "[MyLogger]") {
		t.Errorf("Callback must not see the console name prefix, got %q", gotRendered)
	}
	if !strings.HasSuffix(gotRendered, "\x1b[0m") {
		t.Errorf("Callback should receive the rendered text with reset suffix, got %q", gotRendered)
	}
}

func TestLogger_NamePrefixOnConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().
		WithName("MyLogger").
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: &buf})).
		WithTimestamp(fixedTimestamp).
		Build()

	if err := log.Info("Test message"); err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[MyLogger]") {
		t.Errorf("Expected '[MyLogger]' in console output, got %q", buf.String())
	}

	buf.Reset()
	unnamed := NewBuilder().
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: &buf})).
		WithTimestamp(fixedTimestamp).
		Build()

	if err := unnamed.Info("Test message"); err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if strings.Contains(buf.String(), "]: ") {
		t.Errorf("Unnamed logger must not produce a bracket-colon prefix, got %q", buf.String())
	}
}

func TestLogger_PartialOverrides(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithMinLevel(core.DebugLevel).
		WithHandler(sink).
		WithColors(map[core.Severity]core.Color{core.InfoLevel: core.Red}).
		WithIcons(map[core.Severity]string{core.InfoLevel: ">>"}).
		WithLabels(map[core.Severity]string{core.InfoLevel: "NOTE"}).
		WithTimestamp(fixedTimestamp).
		Build()

	log.Info("overridden")
	log.Warning("default")

	recs := sink.Records()
	if !strings.Contains(recs[0].Rendered, "\x1b[31m") {
		t.Errorf("Expected overridden Info color red, got %q", recs[0].Rendered)
	}
	if !strings.Contains(recs[0].Rendered, ">> [NOTE] overridden") {
		t.Errorf("Expected overridden icon and label, got %q", recs[0].Rendered)
	}

	// Warning keeps every default.
	if !strings.Contains(recs[1].Rendered, "\x1b[33m") {
		t.Errorf("Expected default Warning color yellow, got %q", recs[1].Rendered)
	}
	if !strings.Contains(recs[1].Rendered, "⚠️ [WARN] default") {
		t.Errorf("Expected default Warning icon and label, got %q", recs[1].Rendered)
	}
}

func TestLogger_WarningThresholdSequence(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithMinLevel(core.WarningLevel).
		WithHandler(sink).
		Build()

	log.Info("x")
	log.Warning("y")
	log.Error("z")

	recs := sink.Records()
	if len(recs) != 2 {
		t.Fatalf("Expected exactly 2 emitted records, got %d", len(recs))
	}
	if recs[0].Raw != "y" || recs[1].Raw != "z" {
		t.Errorf("Expected records y then z, got %q then %q", recs[0].Raw, recs[1].Raw)
	}
}

func TestLogger_Idempotence(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithHandler(sink).
		WithTimestamp(fixedTimestamp).
		Build()

	log.Info("same message")
	log.Info("same message")

	recs := sink.Records()
	if recs[0].Rendered != recs[1].Rendered {
		t.Errorf("Identical calls with a fixed timestamp must render identically:\n%q\n%q",
			recs[0].Rendered, recs[1].Rendered)
	}
}

func TestLogger_Shorthands(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithMinLevel(core.DebugLevel).
		WithHandler(sink).
		Build()

	log.Error("e")
	log.Warning("w")
	log.Success("s")
	log.Info("i")
	log.Step("st")
	log.Debug("d")

	recs := sink.Records()
	if len(recs) != 6 {
		t.Fatalf("Expected 6 records, got %d", len(recs))
	}
	wantSev := []core.Severity{
		core.ErrorLevel,
		core.WarningLevel,
		core.SuccessLevel,
		core.InfoLevel,
		core.StepLevel,
		core.DebugLevel,
	}
	for i, rec := range recs {
		if rec.Severity != wantSev[i] {
			t.Errorf("Record %d: expected severity %s, got %s", i, wantSev[i], rec.Severity)
		}
	}
}

func TestLogger_InfoEqualsDefaultEmit(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithHandler(sink).
		WithTimestamp(fixedTimestamp).
		Build()

	log.Info("via shorthand")
	log.Emit(core.Text("via shorthand"), core.InfoLevel)

	recs := sink.Records()
	if recs[0].Rendered != recs[1].Rendered {
		t.Error("Info shorthand and Emit at InfoLevel should render identically")
	}
}

func TestLogger_FormattedLogging(t *testing.T) {
	sink := handler.NewCapture()
	log := NewBuilder().
		WithHandler(sink).
		Build()

	if err := log.Infof("User %s logged in with ID %d", "alice", 123); err != nil {
		t.Fatalf("Infof failed: %v", err)
	}
	if got := sink.Records()[0].Raw; got != "User alice logged in with ID 123" {
		t.Errorf("Expected formatted message, got %q", got)
	}

	// A filtered-out formatted call does no formatting work and emits
	// nothing.
	log.Debugf("costly %v", struct{}{})
	if sink.Len() != 1 {
		t.Errorf("Filtered Debugf should not emit, got %d records", sink.Len())
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}

func TestLogger_OneConsoleWritePerPassingCall(t *testing.T) {
	w := &countingWriter{}
	log := NewBuilder().
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: w})).
		Build()

	log.Info("first")
	log.Info("second")
	log.Debug("filtered")

	if w.writes != 2 {
		t.Errorf("Expected exactly one console write per passing call, got %d writes", w.writes)
	}
}

func TestLogger_IndependentInstances(t *testing.T) {
	sinkA := handler.NewCapture()
	sinkB := handler.NewCapture()

	a := NewBuilder().WithName("A").WithMinLevel(core.ErrorLevel).WithHandler(sinkA).Build()
	b := NewBuilder().WithName("B").WithMinLevel(core.DebugLevel).WithHandler(sinkB).Build()

	a.Info("dropped by A")
	b.Info("kept by B")

	if sinkA.Len() != 0 {
		t.Errorf("Logger A threshold leaked, got %d records", sinkA.Len())
	}
	if sinkB.Len() != 1 {
		t.Errorf("Logger B should have 1 record, got %d", sinkB.Len())
	}
}

func TestLogger_OverrideTablesDetached(t *testing.T) {
	sink := handler.NewCapture()
	colors := map[core.Severity]core.Color{core.InfoLevel: core.Red}
	log := NewBuilder().
		WithHandler(sink).
		WithColors(colors).
		WithTimestamp(fixedTimestamp).
		Build()

	// Mutating the caller's map after Build must not affect the logger.
	colors[core.InfoLevel] = core.Green

	log.Info("m")
	if !strings.Contains(sink.Records()[0].Rendered, "\x1b[31m") {
		t.Errorf("Built logger should keep the table as of Build, got %q", sink.Records()[0].Rendered)
	}
}
