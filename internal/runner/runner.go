package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Candidates         goflags.StringSlice // candidate strings to score
	Output             string
	Format             string
	Config             string
	PatternConfig      string
	Pick               bool
	Sort               bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Score candidate text decodings for mojibake weirdness and pick the sanest one.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Candidates, "list", "l", nil, "candidate strings to score (stdin, file, or repeated flag)", goflags.FileStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Pick, "pick", "p", false, "print only the lowest-cost candidate"),
		flagSet.BoolVar(&opts.Sort, "sort", false, "sort output by ascending cost"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "output line template, variables {{cost}} {{weirdness}} {{text}}"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write scored candidates"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display weirdness version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `weirdness cli config file (default '$HOME/.config/weirdness/config.yaml')`),
		flagSet.StringVar(&opts.PatternConfig, "pc", "", `extra pattern config file (default '$HOME/.config/weirdness/patterns.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update weirdness to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic weirdness update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("weirdness")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("weirdness version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current weirdness version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// candidates are full text fragments, so stdin is split on lines
	// rather than fields: spaces are part of the candidate
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		for _, line := range strings.Split(string(bin), "\n") {
			line = strings.TrimRight(line, "\r")
			if line != "" {
				opts.Candidates = append(opts.Candidates, line)
			}
		}
	}

	if len(opts.Candidates) == 0 {
		gologger.Fatal().Msgf("weirdness: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
