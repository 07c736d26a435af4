package main

import (
	goflag "flag"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/videolab/framekit/pkg/config"
	"github.com/videolab/framekit/pkg/logger"
	"github.com/videolab/framekit/pkg/nv12"
)

var Version = "?"

func main() {
	conf := config.NewScaleConfig()
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	conf.ParseFlags()

	log := logger.NewConsole(conf.Scale.Debug, "scale", false)

	log.Info().Msgf("version %s", Version)
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}

	s := conf.Scale
	if s.Input == "" || s.Output == "" {
		log.Fatal().Msg("both -in and -out files are needed")
	}
	src, err := os.ReadFile(s.Input)
	if err != nil {
		log.Fatal().Err(err).Msg("the input is not readable")
	}
	dst, err := nv12.Scale(src, s.Width, s.Height, s.OutWidth, s.OutHeight)
	if err != nil {
		log.Fatal().Err(err).Msg("scaling failed")
	}
	if err := os.WriteFile(s.Output, dst, 0644); err != nil {
		log.Fatal().Err(err).Msg("the output is not writable")
	}
	log.Info().Msgf("scaled %vx%v -> %vx%v, %v", s.Width, s.Height, s.OutWidth, s.OutHeight, s.Output)
}
