// Package batch runs NV12 to RGB24 conversion jobs over files,
// frame streams, and watched directories.
package batch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/videolab/framekit/pkg/config"
	"github.com/videolab/framekit/pkg/logger"
	"github.com/videolab/framekit/pkg/nv12"
	"github.com/videolab/framekit/pkg/preview"
)

// Job converts NV12 frames of a fixed geometry into RGB24.
// One Job holds one converter, so its output buffers are reused
// between frames.
type Job struct {
	id   string
	conf config.Convert
	conv *nv12.Converter
	log  *logger.Logger
}

func NewJob(conf config.Convert, log *logger.Logger) (*Job, error) {
	conv, err := nv12.New(conf.Width, conf.Height, nv12.WithOptions(nv12.Options{
		Threaded: conf.Threaded,
		Threads:  conf.Threads,
	}))
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	job := &Job{id: id.String(), conf: conf, conv: conv}
	job.log = log.Extend(log.With().Str("job", job.id[:8]))
	return job, nil
}

func (j *Job) Id() string { return j.id }

// File converts a single frame file and, when configured, writes
// a PNG preview of the result.
func (j *Job) File(in string, out string) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	rgb, err := j.frame(src)
	if err != nil {
		return fmt.Errorf("%v: %w", in, err)
	}
	defer j.conv.Put(&rgb)
	if err := os.WriteFile(out, rgb, 0644); err != nil {
		return err
	}
	j.log.Info().Msgf("converted %v -> %v", in, out)
	return j.preview(rgb)
}

// Stream converts a concatenation of same-geometry frames.
// A zero frame count derives the number of frames from the input
// file size, and then a trailing partial frame is an error.
func (j *Job) Stream(in string, out string, frames int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	size := nv12.FrameSize(j.conf.Width, j.conf.Height)
	if frames == 0 {
		stat, err := f.Stat()
		if err != nil {
			return err
		}
		if stat.Size()%int64(size) != 0 {
			return fmt.Errorf("%v: %v bytes is not a whole number of %v byte frames", in, stat.Size(), size)
		}
		frames = int(stat.Size() / int64(size))
	}

	dst, err := newSink(out)
	if err != nil {
		return err
	}

	var result *multierror.Error
	buf := make([]byte, size)
	for i := 0; i < frames; i++ {
		if _, err := io.ReadFull(f, buf); err != nil {
			result = multierror.Append(result, fmt.Errorf("frame %v: %w", i, err))
			break
		}
		rgb, err := j.frame(buf)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("frame %v: %w", i, err))
			break
		}
		err = dst.Write(rgb)
		if err == nil && i == frames-1 {
			err = j.preview(rgb)
		}
		j.conv.Put(&rgb)
		if err != nil {
			result = multierror.Append(result, err)
			break
		}
	}
	result = multierror.Append(result, dst.Close())

	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	j.log.Info().Msgf("converted %v frames %v -> %v", frames, in, out)
	return nil
}

// frame converts one frame and tracks the outcome.
func (j *Job) frame(src []byte) ([]byte, error) {
	start := time.Now()
	rgb, err := j.conv.Convert(src)
	if err != nil {
		convertErrors.Inc()
		return nil, err
	}
	framesConverted.Inc()
	convertDuration.Observe(time.Since(start).Seconds())
	return rgb, nil
}

func (j *Job) preview(rgb []byte) error {
	if j.conf.PNG == "" {
		return nil
	}
	p := j.conf.Preview
	err := preview.WriteScaledPNG(j.conf.PNG, rgb, j.conf.Width, j.conf.Height,
		p.Width, p.Height, preview.ScaleKind(p.Scale))
	if err != nil {
		return err
	}
	j.log.Debug().Msgf("preview %v", j.conf.PNG)
	return nil
}
