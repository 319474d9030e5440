package archive_extractor

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"strings"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/mholt/archives"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

type fixtureFile struct {
	name string
	data []byte
	dir  bool
}

func helloFixture() []fixtureFile {
	return []fixtureFile{
		{name: "hello.txt", data: []byte("Hello, World!\n")},
		{name: "nested/", dir: true},
		{name: "nested/deep/path/deep-file.txt", data: []byte("deep\n")},
		{name: "binary.bin", data: bytes.Repeat([]byte{0xAB}, 10*1024)},
	}
}

// sizedFixture is the three-entry container used by the size limit scenarios.
func sizedFixture() []fixtureFile {
	return []fixtureFile{
		{name: "a.bin", data: bytes.Repeat([]byte{'a'}, 10)},
		{name: "b.bin", data: bytes.Repeat([]byte{'b'}, 20)},
		{name: "c.bin", data: bytes.Repeat([]byte{'c'}, 5000)},
	}
}

func buildZip(t *testing.T, files []fixtureFile) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f.name)
		require.NoError(t, err)
		if !f.dir {
			_, err = fw.Write(f.data)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func buildTar(t *testing.T, files []fixtureFile) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := tar.NewWriter(&buf)
	for _, f := range files {
		header := &tar.Header{
			Name:    f.name,
			Mode:    0o644,
			ModTime: time.Unix(1661433804, 0),
		}
		if f.dir {
			header.Typeflag = tar.TypeDir
			header.Mode = 0o755
		} else {
			header.Typeflag = tar.TypeReg
			header.Size = int64(len(f.data))
		}
		require.NoError(t, w.WriteHeader(header))
		if !f.dir {
			_, err := w.Write(f.data)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func buildAr(t *testing.T, files []fixtureFile) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := ar.NewWriter(&buf)
	require.NoError(t, w.WriteGlobalHeader())
	for _, f := range files {
		header := &ar.Header{
			Name:    f.name,
			ModTime: time.Unix(1661433804, 0),
			Mode:    0o644,
			Size:    int64(len(f.data)),
		}
		require.NoError(t, w.WriteHeader(header))
		_, err := w.Write(f.data)
		require.NoError(t, err)
	}
	return buf.Bytes()
}

func gzipBytes(t *testing.T, raw []byte, name string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Name = name
	_, err := w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func bzip2Bytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestSpeed})
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func xzBytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func lz4Bytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := archives.Lz4{}.OpenWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func findEntry(t *testing.T, entries []Entry, pathContains string) Entry {
	t.Helper()
	for _, e := range entries {
		if strings.Contains(e.Path, pathContains) {
			return e
		}
	}
	t.Fatalf("expected to find entry containing %q in path", pathContains)
	return Entry{}
}
