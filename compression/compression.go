package compression

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/mholt/archives"
	"github.com/ulikunitz/xz"
)

// Codec enumerates the stream compression formats the reader factory knows
// how to open. The codec is always supplied by the caller; there is no magic
// byte sniffing here.
type Codec int

const (
	Gzip Codec = iota
	Bzip2
	Xz
	Zstd
	Lz4
)

var codecNames = map[Codec]string{
	Gzip:  "gzip",
	Bzip2: "bzip2",
	Xz:    "xz",
	Zstd:  "zstd",
	Lz4:   "lz4",
}

func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return "unknown"
}

const defaultBufSize = 32 * 1024

type readerConfiguration struct {
	BufSize int
}

type Option func(*readerConfiguration)

func WithBufSize(size int) Option {
	return func(c *readerConfiguration) {
		c.BufSize = size
	}
}

// Reader decompresses a single stream of the configured codec. EmbeddedName
// reports the original file name when the codec records one (only gzip does).
type Reader struct {
	reader io.ReadCloser
	name   string
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

func (r *Reader) EmbeddedName() string {
	return r.name
}

// NewReader opens a decompressing reader for the given codec over src.
// Failures to initialize the underlying codec are wrapped in ErrGetReader so
// callers can tell "not this format" apart from read-time failures.
func NewReader(codec Codec, src io.Reader, options ...Option) (*Reader, error) {
	config := &readerConfiguration{BufSize: defaultBufSize}
	for _, option := range options {
		option(config)
	}
	buffered := bufio.NewReaderSize(src, config.BufSize)

	if codec == Gzip {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, &ErrGetReader{err}
		}
		return &Reader{reader: gz, name: gz.Header.Name}, nil
	}

	getReader, ok := codecReaders[codec]
	if !ok {
		return nil, &ErrGetReader{errors.New("no reader for codec " + codec.String())}
	}
	r, err := getReader(buffered)
	if err != nil {
		return nil, &ErrGetReader{err}
	}
	return &Reader{reader: r}, nil
}

var codecReaders = map[Codec]func(io.Reader) (io.ReadCloser, error){
	Bzip2: bz2Reader,
	Xz:    xzReader,
	Zstd:  zstdReader,
	Lz4:   lz4Reader,
}

type ErrGetReader struct {
	err error
}

func (e *ErrGetReader) Error() string {
	return e.err.Error()
}

func (e *ErrGetReader) Unwrap() error {
	return e.err
}

func IsGetReaderError(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(*ErrGetReader); ok {
			return true
		}
	}
	return false
}

func bz2Reader(reader io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(reader, nil)
}

func xzReader(reader io.Reader) (io.ReadCloser, error) {
	r, err := xz.NewReader(reader)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(r), nil
}

func zstdReader(reader io.Reader) (io.ReadCloser, error) {
	r, err := zstd.NewReader(reader, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &zstdReadCloser{r}, nil
}

// zstd.Decoder.Close has no error return, which keeps it off io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (zr *zstdReadCloser) Close() error {
	zr.Decoder.Close()
	return nil
}

func lz4Reader(reader io.Reader) (io.ReadCloser, error) {
	return archives.Lz4{}.OpenReader(reader)
}
