package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/repl"
)

type Module struct {
	dscope.Module
	REPL repl.Module
}
