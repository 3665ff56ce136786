package repl

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/debugs"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Configs calcconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
