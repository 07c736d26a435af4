package config

import "flag"

type GenConfig struct {
	Gen Gen
}

type Gen struct {
	Debug   bool
	Pattern string `default:"white"`
	Width   int    `default:"640"`
	Height  int    `default:"480"`
	Output  string `default:"out.nv12"`
}

func NewGenConfig() (conf GenConfig) {
	if err := load(&conf, ""); err != nil {
		panic(err)
	}
	return
}

func (c *GenConfig) ParseFlags() {
	flag.BoolVar(&c.Gen.Debug, "debug", c.Gen.Debug, "Enable debug logging")
	flag.StringVar(&c.Gen.Pattern, "pattern", c.Gen.Pattern, "Pattern name (white, checker, gradient)")
	flag.IntVar(&c.Gen.Width, "w", c.Gen.Width, "Frame width")
	flag.IntVar(&c.Gen.Height, "h", c.Gen.Height, "Frame height")
	flag.StringVar(&c.Gen.Output, "out", c.Gen.Output, "Output NV12 file")
	flag.Parse()
}
