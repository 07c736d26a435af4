package config

import "flag"

type ScaleConfig struct {
	Scale Scale
}

type Scale struct {
	Debug     bool
	Input     string
	Output    string
	Width     int `default:"640"`
	Height    int `default:"480"`
	OutWidth  int `fig:"out_width" default:"320"`
	OutHeight int `fig:"out_height" default:"240"`
}

func NewScaleConfig() (conf ScaleConfig) {
	if err := load(&conf, ""); err != nil {
		panic(err)
	}
	return
}

func (c *ScaleConfig) ParseFlags() {
	flag.BoolVar(&c.Scale.Debug, "debug", c.Scale.Debug, "Enable debug logging")
	flag.StringVar(&c.Scale.Input, "in", c.Scale.Input, "Input NV12 frame file")
	flag.StringVar(&c.Scale.Output, "out", c.Scale.Output, "Output NV12 file")
	flag.IntVar(&c.Scale.Width, "w", c.Scale.Width, "Source frame width")
	flag.IntVar(&c.Scale.Height, "h", c.Scale.Height, "Source frame height")
	flag.IntVar(&c.Scale.OutWidth, "ow", c.Scale.OutWidth, "Output frame width")
	flag.IntVar(&c.Scale.OutHeight, "oh", c.Scale.OutHeight, "Output frame height")
	flag.Parse()
}
