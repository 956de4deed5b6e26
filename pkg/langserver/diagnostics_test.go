package langserver

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestDiagnosticsForContentReportsParseErrors(t *testing.T) {
	content := "x<y\n\nx<)\n"

	diags := diagnosticsForContent(content)
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, uint32(2), diags[0].Range.Start.Line)
}

func TestDiagnosticsForContentAllValid(t *testing.T) {
	diags := diagnosticsForContent("x<y\ny<z\n")
	assert.Equal(t, 0, len(diags))
}

func TestTrimFormula(t *testing.T) {
	assert.Equal(t, "x<y", trimFormula("  x<y  \t"))
	assert.Equal(t, "", trimFormula("   "))
}

func TestDocumentStorePutGetRemove(t *testing.T) {
	ds := newDocumentStore()
	ds.put("file:///a.fol", "x<y")

	content, ok := ds.get("file:///a.fol")
	assert.Equal(t, true, ok)
	assert.Equal(t, "x<y", content)

	ds.remove("file:///a.fol")

	_, ok = ds.get("file:///a.fol")
	assert.Equal(t, false, ok)
}
