// ==============================================================================================
// FILE: internal/diag/diag_unit_test.go
// ==============================================================================================

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Error(t *testing.T) {
	e := ParseError{HasError: true, Line: 3, Column: 7, Message: "unexpected token"}
	assert.Equal(t, "parse error at 3:7: unexpected token", e.Error())
}
