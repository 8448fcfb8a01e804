// Copyright 2019-2026 The NATS Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/highwayhash"
)

// Compression of an input file.
type Compression uint8

const (
	NoCompression Compression = iota
	S2Compression
	ZstdCompression
	GzipCompression
	// AutoCompression sniffs the first bytes of the input.
	AutoCompression
)

func (alg Compression) String() string {
	switch alg {
	case NoCompression:
		return "none"
	case S2Compression:
		return "s2"
	case ZstdCompression:
		return "zstd"
	case GzipCompression:
		return "gzip"
	case AutoCompression:
		return "auto"
	default:
		return "unknown"
	}
}

func (alg Compression) MarshalJSON() ([]byte, error) {
	if alg > AutoCompression {
		return nil, ErrUnknownCompression
	}
	return json.Marshal(alg.String())
}

func (alg *Compression) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseCompression(str)
	if err != nil {
		return err
	}
	*alg = parsed
	return nil
}

// ParseCompression returns the Compression named by s.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "auto":
		return AutoCompression, nil
	case "none":
		return NoCompression, nil
	case "s2", "snappy":
		return S2Compression, nil
	case "zstd":
		return ZstdCompression, nil
	case "gzip", "gz":
		return GzipCompression, nil
	}
	return NoCompression, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

var (
	// Stream identifier chunks, s2 also reads snappy framed streams.
	s2Magic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic   = []byte{0x1f, 0x8b}
)

// Recognize a compressed stream by its leading bytes.
func detectCompression(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, s2Magic), bytes.HasPrefix(head, snappyMagic):
		return S2Compression
	case bytes.HasPrefix(head, zstdMagic):
		return ZstdCompression
	case bytes.HasPrefix(head, gzipMagic):
		return GzipCompression
	}
	return NoCompression
}

// NewReader wraps r with a decompressor for alg.
func (alg Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch alg {
	case NoCompression:
		return io.NopCloser(r), nil
	case S2Compression:
		return io.NopCloser(s2.NewReader(r)), nil
	case ZstdCompression:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case GzipCompression:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, alg)
	}
}

// ReadText reads all of r, decompressing as requested. AutoCompression
// resolves to the detected algorithm, which is returned. A positive limit
// bounds the decompressed size.
func ReadText(r io.Reader, alg Compression, limit int64) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	if alg == AutoCompression {
		// Short inputs come back with fewer bytes and io.EOF, that is fine here.
		head, _ := br.Peek(MAGIC_PEEK_SIZE)
		alg = detectCompression(head)
	}
	rc, err := alg.NewReader(br)
	if err != nil {
		return nil, alg, fmt.Errorf("error opening %s stream: %w", alg, err)
	}
	defer rc.Close()

	var src io.Reader = rc
	if limit > 0 {
		src = io.LimitReader(rc, limit+1)
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, alg, fmt.Errorf("error reading %s input: %w", alg, err)
	}
	if limit > 0 && int64(len(text)) > limit {
		return nil, alg, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return text, alg, nil
}

// LoadText reads the whole file at path into memory.
func LoadText(path string, alg Compression, limit int64) ([]byte, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, alg, fmt.Errorf("error opening input file: %w", err)
	}
	defer f.Close()
	return ReadText(f, alg, limit)
}

// Pick a byte that does not occur in text, preferring DEFAULT_TERMINATOR.
func chooseTerminator(text []byte) (byte, error) {
	var present [256]bool
	for _, c := range text {
		present[c] = true
	}
	if !present[DEFAULT_TERMINATOR] {
		return DEFAULT_TERMINATOR, nil
	}
	for c := 0; c < len(present); c++ {
		if !present[c] {
			return byte(c), nil
		}
	}
	return 0, ErrNoTerminator
}

var digestKey = sha256.Sum256([]byte("suffixsearch"))

// Identifies the indexed text in logs and stats.
func textDigest(text []byte) (uint64, error) {
	hh, err := highwayhash.New64(digestKey[:])
	if err != nil {
		return 0, err
	}
	hh.Write(text)
	return hh.Sum64(), nil
}
