package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                 _         __
 _    _____ (_)______/ /__  ___ ___ ___
| |/|/ / -_) / __/ _  / _ \/ -_|_-<(_-<
|__,__/\__/_/_/  \_,_/_//_/\__/___/___/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates weirdness
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("weirdness", version)()
	}
}
