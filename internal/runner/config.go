package runner

import (
	"os"
	"path/filepath"

	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/textsanity/weirdness"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	// pick up user-maintained extra patterns, if any; built-in sets are
	// never replaced, only extended
	defaultPatternCfg := filepath.Join(getUserHomeDir(), ".config/weirdness/patterns.yaml")
	if fileutil.FileExists(defaultPatternCfg) {
		if cfg, err := weirdness.NewConfig(defaultPatternCfg); err == nil {
			weirdness.DefaultConfig = *cfg
		}
	}
}
