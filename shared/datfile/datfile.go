// Package datfile reads the game's .dat files: zlib-compressed, attribute-centric
// XML documents. It provides the shared stream decoder, the scalar attribute
// codecs and the error taxonomy used by the document parsers.
// It has no dependencies on ebitengine or the viewer and holds pure data only.
package datfile

import (
	"bufio"
	"compress/zlib"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Open returns a buffered stream of the decompressed contents of path.
// Closing the stream releases the underlying file.
func Open(path string) (io.ReadCloser, error) {
	return open(path)
}

// Decode streams the decompressed XML document at path into v. The stream is
// read to its end so the zlib checksum is verified even when the document
// closes early.
func Decode(path string, v any) error {
	s, err := open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := newDecoder(s).Decode(v); err != nil {
		if s.src.err != nil {
			return s.src.err
		}
		return fmt.Errorf("%s: %w", path, schemaFailure(err))
	}
	if _, err := io.Copy(io.Discard, s); err != nil {
		if s.src.err != nil {
			return s.src.err
		}
		return fmt.Errorf("%w: %s: %w", ErrDecompress, path, err)
	}
	return nil
}

// DecodeXML decodes an already decompressed XML document into v. Failures are
// reported as schema errors unless they came from r itself, in which case the
// read error is returned unchanged.
func DecodeXML(r io.Reader, v any) error {
	src := &readSource{r: r}
	if err := newDecoder(src).Decode(v); err != nil {
		if src.err != nil {
			return src.err
		}
		return schemaFailure(err)
	}
	return nil
}

func newDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	return d
}

// charsetReader accepts the ASCII-compatible encodings a .dat declaration may
// name. encoding/xml handles "utf-8" before asking.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii", "utf8":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}

// readSource remembers the first read failure so it is not reported as
// malformed XML.
type readSource struct {
	r   io.Reader
	err error
}

func (s *readSource) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

func schemaFailure(err error) error {
	if errors.Is(err, ErrSchema) || errors.Is(err, ErrDecompress) || errors.Is(err, ErrOpen) {
		return err
	}
	return &SchemaError{Index: -1, Err: err}
}

type stream struct {
	*bufio.Reader
	src  *zlibSource
	file *os.File
}

func open(path string) (*stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	zr, err := zlib.NewReader(f)
	if err != nil {
		_ = f.Close()
		if errors.As(err, new(*fs.PathError)) {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecompress, path, err)
	}

	src := &zlibSource{path: path, zr: zr}
	return &stream{
		Reader: bufio.NewReader(src),
		src:    src,
		file:   f,
	}, nil
}

func (s *stream) Close() error {
	zerr := s.src.zr.Close()
	ferr := s.file.Close()
	if ferr != nil {
		return ferr
	}
	return zerr
}

// zlibSource tags read failures so a corrupt stream is never mistaken for
// malformed XML.
type zlibSource struct {
	path string
	zr   io.ReadCloser
	err  error
}

func (z *zlibSource) Read(p []byte) (int, error) {
	n, err := z.zr.Read(p)
	if err != nil && err != io.EOF {
		if z.err == nil {
			if errors.As(err, new(*fs.PathError)) {
				z.err = fmt.Errorf("%w: %w", ErrOpen, err)
			} else {
				z.err = fmt.Errorf("%w: %s: %w", ErrDecompress, z.path, err)
			}
		}
		return n, z.err
	}
	return n, err
}
