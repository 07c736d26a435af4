package main

import (
	"context"
	goflag "flag"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/videolab/framekit/pkg/batch"
	"github.com/videolab/framekit/pkg/config"
	"github.com/videolab/framekit/pkg/logger"
	"github.com/videolab/framekit/pkg/monitoring"
	"github.com/videolab/framekit/pkg/os"
)

var Version = "?"

func main() {
	conf := config.NewConvertConfig()
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	conf.ParseFlags()

	log := logger.NewConsole(conf.Convert.Debug, "rgb", false)

	log.Info().Msgf("version %s", Version)
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}

	if conf.Convert.Watch.Dir != "" {
		watch(conf, log)
		return
	}

	if conf.Convert.Input == "" || conf.Convert.Output == "" {
		log.Fatal().Msg("both -in and -out files are needed")
	}
	job, err := batch.NewJob(conf.Convert, log)
	if err != nil {
		log.Fatal().Err(err).Msg("the converter can't start")
	}
	if err := job.Stream(conf.Convert.Input, conf.Convert.Output, conf.Convert.Frames); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}

func watch(conf config.ConvertConfig, log *logger.Logger) {
	w, err := batch.NewWatcher(conf.Convert, log)
	if err != nil {
		log.Fatal().Err(err).Msg("the watcher can't start")
	}

	var monitor *monitoring.Monitoring
	if conf.Monitoring.IsEnabled() {
		monitor = monitoring.New(conf.Monitoring, log)
		monitor.Run()
	}

	if err := w.Run(); err != nil {
		log.Fatal().Err(err).Msg("the watcher can't start")
	}

	<-os.ExpectTermination()

	if err := w.Stop(); err != nil {
		log.Error().Err(err).Msg("service shutdown errors")
	}
	if monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := monitor.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("service shutdown errors")
		}
	}
}
