package batch

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
)

var defaultBufferSize = 4096

// sink is a buffered output frame writer.
type sink struct {
	sync.Mutex

	f *os.File
	w *bufio.Writer
}

func newSink(path string) (*sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return &sink{f: f, w: bufio.NewWriterSize(f, defaultBufferSize)}, nil
}

func (s *sink) Write(data []byte) error {
	s.Lock()
	n, err := s.w.Write(data)
	s.Unlock()
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("write size mismatch [%v!=%v]", n, len(data))
	}
	return nil
}

func (s *sink) Close() error {
	s.Lock()
	defer s.Unlock()
	var result *multierror.Error
	result = multierror.Append(result, s.w.Flush())
	result = multierror.Append(result, s.f.Close())
	return result.ErrorOrNil()
}
