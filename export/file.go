package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Create opens path for writing, creating parent directories. Paths ending
// in .zst are zstd-compressed. Close flushes the encoder before the file.
func Create(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &zstdFile{enc: enc, f: f}, nil
}

type zstdFile struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdFile) Write(p []byte) (int, error) {
	return z.enc.Write(p)
}

func (z *zstdFile) Close() error {
	err := z.enc.Close()
	if cerr := z.f.Close(); err == nil {
		err = cerr
	}
	return err
}
