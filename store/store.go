// Package store persists sequence records as their portable forms in a
// directory, one file per record, optionally block-compressed. It is the
// on-disk counterpart of record.Portable; any other persistence layer can
// consume the same portable structures through a codec of its choice.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/diverseq/kmervec/codec"
	"github.com/diverseq/kmervec/record"
)

// suffix of record files under the store root.
const suffix = ".rec"

// magic identifies record files and versions the container format.
var magic = []byte("kvr1")

var (
	// ErrNotFound is returned when no record with the requested name
	// exists. Satisfies errors.Is(err, os.ErrNotExist).
	ErrNotFound = os.ErrNotExist

	// ErrInvalidName is returned for record names that cannot form a
	// file name under the store root.
	ErrInvalidName = errors.New("store: record name must be non-empty without path separators")

	// ErrMalformed is returned when a record file cannot be parsed.
	ErrMalformed = errors.New("store: malformed record file")
)

// Store is a directory-backed record store. Safe for concurrent use by
// multiple goroutines as long as distinct records are written.
type Store struct {
	root        string
	codec       codec.Codec
	compression Compression
	zenc        *zstd.Encoder
	zdec        *zstd.Decoder
}

// Option configures a Store.
type Option func(*Store)

// WithCodec sets the codec used for newly written records. If nil is
// passed, codec.Default is used. Reads select the codec recorded in each
// file regardless of this setting.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c == nil {
			c = codec.Default
		}
		s.codec = c
	}
}

// WithCompression sets the block compression for newly written records.
func WithCompression(c Compression) Option {
	return func(s *Store) {
		s.compression = c
	}
}

// Open opens (creating if necessary) a record store rooted at dir.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		root:        dir,
		codec:       codec.Default,
		compression: CompressionNone,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("store: zstd encoder: %w", err)
	}
	zdec, err := zstd.NewReader(nil)
	if err != nil {
		zenc.Close()
		return nil, fmt.Errorf("store: zstd decoder: %w", err)
	}
	s.zenc = zenc
	s.zdec = zdec
	return s, nil
}

// Close releases the store's compression resources.
func (s *Store) Close() error {
	s.zdec.Close()
	return s.zenc.Close()
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// Write persists rec under its name, replacing any previous version. The
// write is atomic via a temp file rename.
func (s *Store) Write(rec *record.SeqRecord) error {
	path, err := s.path(rec.Name())
	if err != nil {
		return err
	}

	payload, err := s.codec.Marshal(rec.Portable())
	if err != nil {
		return fmt.Errorf("store: encode record %q: %w", rec.Name(), err)
	}
	block, err := compressBlock(payload, s.compression, s.zenc)
	if err != nil {
		return err
	}

	name := s.codec.Name()
	buf := make([]byte, 0, len(magic)+2+len(name)+len(block))
	buf = append(buf, magic...)
	buf = append(buf, byte(s.compression), byte(len(name)))
	buf = append(buf, name...)
	buf = append(buf, block...)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("store: write record %q: %w", rec.Name(), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: write record %q: %w", rec.Name(), err)
	}
	return nil
}

// Read loads the record with the given name.
func (s *Store) Read(name string) (*record.SeqRecord, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store: record %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("store: read record %q: %w", name, err)
	}

	if len(buf) < len(magic)+2 || string(buf[:len(magic)]) != string(magic) {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, name)
	}
	compression := Compression(buf[len(magic)])
	nameLen := int(buf[len(magic)+1])
	rest := buf[len(magic)+2:]
	if len(rest) < nameLen {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, name)
	}
	codecName := string(rest[:nameLen])
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q: unknown codec %q", ErrMalformed, name, codecName)
	}

	payload, err := decompressBlock(rest[nameLen:], compression, s.zdec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, name, err)
	}
	var p record.Portable
	if err := c.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, name, err)
	}
	return record.FromPortable(p)
}

// Delete removes the record with the given name.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("store: record %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("store: delete record %q: %w", name, err)
	}
	return nil
}

// Names returns the names of all stored records in lexical order.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("store: list records: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	return names, nil
}

// path maps a record name to its file path, rejecting names that would
// escape the store root.
func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, name+suffix), nil
}
