package calcconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"calc.cue",
	".calc.cue",
}

// ConfigDirs are searched in order; earlier directories take precedence.
type ConfigDirs []string

func (Module) ConfigDirs() (ret ConfigDirs) {
	if workingDir, err := os.Getwd(); err == nil {
		ret = append(ret, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, configDir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
