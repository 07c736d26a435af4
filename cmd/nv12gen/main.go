package main

import (
	goflag "flag"

	flag "github.com/spf13/pflag"

	"github.com/videolab/framekit/pkg/config"
	"github.com/videolab/framekit/pkg/logger"
	"github.com/videolab/framekit/pkg/nv12"
	"github.com/videolab/framekit/pkg/os"
)

var Version = "?"

func main() {
	conf := config.NewGenConfig()
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	conf.ParseFlags()

	log := logger.NewConsole(conf.Gen.Debug, "gen", false)

	log.Info().Msgf("version %s", Version)
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}

	g := conf.Gen
	frame, err := nv12.Generate(nv12.Pattern(g.Pattern), g.Width, g.Height)
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
	if err := os.WriteFile(g.Output, frame, 0644); err != nil {
		log.Fatal().Err(err).Msg("the output is not writable")
	}
	log.Info().Msgf("%v %vx%v -> %v", g.Pattern, g.Width, g.Height, g.Output)
}
