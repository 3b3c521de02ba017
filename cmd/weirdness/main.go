package main

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/projectdiscovery/fasttemplate"
	"github.com/projectdiscovery/gologger"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"github.com/textsanity/weirdness"
	"github.com/textsanity/weirdness/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	scorerOpts := &weirdness.Options{}
	if cliOpts.PatternConfig != "" {
		cfg, err := weirdness.NewConfig(cliOpts.PatternConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.PatternConfig, err)
		}
		scorerOpts.ExtraMojibake = cfg.ExtraMojibake
		scorerOpts.ExtraSymbols = cfg.ExtraSymbols
	}

	scorer, err := weirdness.New(scorerOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to build scorer got: %v", err)
	}

	candidates := sliceutil.Dedupe(cliOpts.Candidates)

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if cliOpts.Pick {
		best, cost := scorer.PickBest(candidates)
		gologger.Verbose().Msgf("picked candidate with cost %v out of %v", cost, len(candidates))
		output.Write([]byte(best + "\n"))
		return
	}

	results := make([]weirdness.Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, scorer.Score(c))
	}
	if cliOpts.Sort {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Cost < results[j].Cost
		})
	}

	var tmpl *fasttemplate.Template
	if cliOpts.Format != "" {
		tmpl, err = fasttemplate.NewTemplate(cliOpts.Format, "{{", "}}")
		if err != nil {
			gologger.Fatal().Msgf("invalid output format template got: %v", err)
		}
	}

	for _, res := range results {
		line := strconv.Itoa(res.Cost) + "\t" + res.Text
		if tmpl != nil {
			line = tmpl.ExecuteString(map[string]interface{}{
				"cost":      strconv.Itoa(res.Cost),
				"weirdness": strconv.Itoa(res.Weirdness),
				"text":      res.Text,
			})
		}
		if _, err := output.Write([]byte(line + "\n")); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
			return
		}
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
