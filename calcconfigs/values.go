package calcconfigs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/vars"
)

const DefaultPrompt = "calc> "

type Prompt string

var promptFlag = cmds.Var[string]("-prompt", "set the prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		DefaultPrompt,
	))
}

// HistoryFile is empty when history is not persisted.
type HistoryFile string

var historyFlag = cmds.Var[string]("-history", "set the history file")

func (Module) HistoryFile(
	loader configs.Loader,
	mode modes.Mode,
) HistoryFile {
	if !mode.Interactive() {
		return ""
	}
	path := vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history_file"),
	)
	home, err := os.UserHomeDir()
	if path == "" {
		if err != nil {
			return ""
		}
		return HistoryFile(filepath.Join(home, ".taicalc_history"))
	}
	if err == nil && (path == "~" || strings.HasPrefix(path, "~/")) {
		path = filepath.Join(home, path[1:])
	}
	return HistoryFile(path)
}

type ShowAST bool

var showASTFlag = cmds.Switch("-ast", "print the parsed tree before each result")

func (Module) ShowAST(
	loader configs.Loader,
) ShowAST {
	return ShowAST(*showASTFlag || configs.First[bool](loader, "show_ast"))
}
