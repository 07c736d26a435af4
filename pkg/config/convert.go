package config

import "flag"

type ConvertConfig struct {
	Convert    Convert
	Monitoring Monitoring
}

type Convert struct {
	Debug    bool
	Threaded bool `default:"true"`
	Threads  int
	Width    int `default:"640"`
	Height   int `default:"480"`
	Input    string
	Output   string
	// Frames limits stream conversion; 0 derives the count from the file size.
	Frames  int
	PNG     string
	Watch   Watch
	Preview Preview
}

type Watch struct {
	Dir     string
	OutDir  string `fig:"out_dir"`
	Lock    string
	Pattern string `default:"*.nv12"`
}

type Preview struct {
	Width  int    `fig:"width"`
	Height int    `fig:"height"`
	Scale  string `default:"nearest"`
}

func NewConvertConfig() (conf ConvertConfig) {
	if err := load(&conf, ""); err != nil {
		panic(err)
	}
	return
}

// ParseFlags updates config values from passed runtime flags.
// Define own flags with default value set to the current config param.
// Don't forget to call flag.Parse().
func (c *ConvertConfig) ParseFlags() {
	flag.BoolVar(&c.Convert.Debug, "debug", c.Convert.Debug, "Enable debug logging")
	flag.StringVar(&c.Convert.Input, "in", c.Convert.Input, "Input NV12 frame file")
	flag.StringVar(&c.Convert.Output, "out", c.Convert.Output, "Output RGB24 file")
	flag.IntVar(&c.Convert.Width, "w", c.Convert.Width, "Frame width")
	flag.IntVar(&c.Convert.Height, "h", c.Convert.Height, "Frame height")
	flag.IntVar(&c.Convert.Frames, "frames", c.Convert.Frames, "Frames to convert, 0 derives the count from the file size")
	flag.StringVar(&c.Convert.PNG, "png", c.Convert.PNG, "Write a PNG preview of the last frame to the given path")
	flag.BoolVar(&c.Convert.Threaded, "threaded", c.Convert.Threaded, "Convert rows in parallel")
	flag.IntVar(&c.Convert.Threads, "threads", c.Convert.Threads, "Conversion goroutines, 0 means all CPUs")
	flag.StringVar(&c.Convert.Watch.Dir, "watch", c.Convert.Watch.Dir, "Convert frames appearing in the given directory")
	flag.StringVar(&c.Convert.Watch.OutDir, "outdir", c.Convert.Watch.OutDir, "Output directory for watch mode")
	flag.IntVar(&c.Monitoring.Port, "monitoring.port", c.Monitoring.Port, "Monitoring server port")
	flag.Parse()
}
