package debugs

import (
	"math/big"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/logs"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
	).Fork(
		func() logs.UseJournal {
			return false
		},
	).Call(func(
		tap Tap,
	) {
		// stdin of a test is not a terminal, the REPL returns at EOF
		tap(t.Context(), "test", map[string]any{
			"last": big.NewInt(42),
		})
	})
}
