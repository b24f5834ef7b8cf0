package iofetch

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

// download saves the content of url to path.
func (f *fetcher) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return DownloadError(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return DownloadError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HTTPStatusError(url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}

	var r io.Reader = resp.Body
	if f.progress {
		bar := pb.Full.Start64(resp.ContentLength)
		bar.Set("prefix", filepath.Base(path)+" ")
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		r = bar.NewProxyReader(resp.Body)
	}

	n, err := saveBody(url, path, out, r)
	if err != nil {
		return err
	}
	slog.Info("Downloaded file",
		"url", url, "path", path, "size", humanize.Bytes(uint64(n)))
	return nil
}

// saveBody copies r into out and closes out. A failed close means the
// file may be truncated, so it is reported as a write error.
func saveBody(url, path string, out io.WriteCloser, r io.Reader) (int64, error) {
	n, err := io.Copy(out, r)
	if err != nil {
		out.Close()
		return n, DownloadError(url, err)
	}
	if err = out.Close(); err != nil {
		return n, WriteFileError(path, err)
	}
	return n, nil
}

// extractArchive copies members with given names from a tar.gz archive
// into dir. Members are matched by their base name.
func extractArchive(path, dir string, members []string) error {
	f, err := os.Open(path)
	if err != nil {
		return ReadFileError(path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return ArchiveError(path, err)
	}
	defer gz.Close()

	missing := slices.Clone(members)
	tr := tar.NewReader(gz)
	for len(missing) > 0 {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ArchiveError(path, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := filepath.Base(hdr.Name)
		idx := slices.Index(missing, name)
		if idx == -1 {
			continue
		}

		err = writeFile(filepath.Join(dir, name), tr)
		if err != nil {
			return err
		}
		missing = slices.Delete(missing, idx, idx+1)
	}

	if len(missing) > 0 {
		return MissingDumpError(path, missing)
	}
	return nil
}

// gunzipFile decompresses gzPath into path.
func gunzipFile(gzPath, path string) error {
	f, err := os.Open(gzPath)
	if err != nil {
		return ReadFileError(gzPath, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return ArchiveError(gzPath, err)
	}
	defer gz.Close()

	return writeFile(path, gz)
}

func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}
	_, err = io.Copy(out, r)
	if err != nil {
		out.Close()
		return WriteFileError(path, err)
	}
	err = out.Close()
	if err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
