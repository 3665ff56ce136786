package calcconfigs

import (
	"github.com/reusee/dscope"
)

// Module needs logs.Module and a modes module in the same scope.
type Module struct {
	dscope.Module
}
