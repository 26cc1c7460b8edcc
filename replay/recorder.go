package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/stomp/engine"
)

// ErrClosed is returned when recording after Close
var ErrClosed = errors.New("recorder closed")

// Recorder appends msgpack frames to a stream
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
	closed bool
}

// NewRecorder records onto w; Close flushes but does not close w
func NewRecorder(w io.Writer) *Recorder {
	buf := bufio.NewWriter(w)
	return &Recorder{buf: buf, enc: msgpack.NewEncoder(buf)}
}

// Create records into a new file at path
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording %s: %w", path, err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

// Record encodes one snapshot
func (r *Recorder) Record(s engine.Snapshot) error {
	if r.closed {
		return ErrClosed
	}
	frame := FromSnapshot(s)
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("failed to encode frame %d: %w", s.Tick, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of recorded frames
func (r *Recorder) Frames() int { return r.frames }

// Close flushes buffered frames and closes the file it owns
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.buf.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("failed to close recording: %w", err)
	}
	return nil
}

// Reader decodes frames from a recording
type Reader struct {
	dec    *msgpack.Decoder
	closer io.Closer
}

// NewReader reads frames from r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(bufio.NewReader(r))}
}

// Open reads the recording at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording %s: %w", path, err)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Next decodes the next frame, io.EOF at the end of the recording
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return f, nil
}

// Close closes the file it owns
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
