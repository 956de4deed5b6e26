package provecmd

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestReportProveErrorSetsExitCode(t *testing.T) {
	exitCode = 0
	reportProveError(1, &proverr.ResourceExhaustedError{Limit: 1, Got: 2})
	assert.Equal(t, 2, exitCode)

	exitCode = 0
	reportProveError(1, &proverr.DivisionByZeroError{})
	assert.Equal(t, 1, exitCode)
}

func TestExitCodeDefaultsToZero(t *testing.T) {
	exitCode = 0
	assert.Equal(t, 0, ExitCode())
}
