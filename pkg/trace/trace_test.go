package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/parser"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestRecordAndWriteHuman(t *testing.T) {
	f, err := parser.Parse("x<y")
	if err != nil {
		t.Fatalf("parsing: %s", err)
	}

	tr := New()
	tr.Record("original", f)
	tr.RecordVerdict(true)

	assert.Equal(t, 2, len(tr.Steps()))
	assert.Equal(t, "original", tr.Steps()[0].Operation)
	assert.Equal(t, "verdict", tr.Steps()[1].Operation)

	var buf bytes.Buffer
	if err := tr.WriteHuman(&buf); err != nil {
		t.Fatalf("WriteHuman: %s", err)
	}

	out := buf.String()
	if !strings.Contains(out, "x<y") || !strings.Contains(out, "verdict: true") {
		t.Fatalf("expected human trace to mention the formula and verdict, got %q", out)
	}
}

func TestWriteJSON(t *testing.T) {
	f, err := parser.Parse("x<y")
	if err != nil {
		t.Fatalf("parsing: %s", err)
	}

	tr := New()
	tr.Record("original", f)

	var buf bytes.Buffer
	if err := tr.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %s", err)
	}

	if !strings.Contains(buf.String(), `"operation":"original"`) {
		t.Fatalf("expected JSON output to contain the operation field, got %q", buf.String())
	}
}
