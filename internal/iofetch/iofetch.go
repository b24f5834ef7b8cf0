// Package iofetch downloads NCBI taxonomy dump and reads names, nodes and
// merged tables from it.
package iofetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Names of the dump files used from the NCBI taxonomy archive.
const (
	NamesDump  = "names.dmp"
	NodesDump  = "nodes.dmp"
	MergedDump = "merged.dmp"
)

// dumps lists dump files in the order they appear in RawRecords.
var dumps = []string{NamesDump, NodesDump, MergedDump}

type fetcher struct {
	url         string
	fallbackURL string
	dir         string
	cleanup     bool
	timeout     time.Duration
	progress    bool
	client      *http.Client
}

// Option modifies the fetcher.
type Option func(*fetcher)

// OptProgress toggles download progress bars.
func OptProgress(b bool) Option {
	return func(f *fetcher) {
		f.progress = b
	}
}

// OptHTTPClient sets a custom HTTP client.
func OptHTTPClient(c *http.Client) Option {
	return func(f *fetcher) {
		f.client = c
	}
}

// New creates a Fetcher that keeps downloaded files in the download
// directory of the gntaxa cache.
func New(cfg *config.Config, opts ...Option) lifecycle.Fetcher {
	res := &fetcher{
		url:         cfg.Taxonomy.URL,
		fallbackURL: cfg.Taxonomy.FallbackURL,
		dir:         config.DownloadDir(cfg.HomeDir),
		cleanup:     cfg.Taxonomy.Cleanup,
		timeout:     time.Duration(cfg.Taxonomy.FetchTimeout) * time.Second,
		progress:    true,
		client:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Fetch downloads the taxonomy archive and reads its dumps. If the
// archive cannot be obtained, gzipped dump files from the fallback
// location are used instead.
func (f *fetcher) Fetch(ctx context.Context) (*taxonomy.RawRecords, error) {
	start := time.Now()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	err := gnsys.MakeDir(f.dir)
	if err == nil {
		err = gnsys.CleanDir(f.dir)
	}
	if err != nil {
		return nil, iofs.CreateDirError(f.dir, err)
	}
	if f.cleanup {
		defer f.clean()
	}

	slog.Info("Fetching taxonomy", "url", f.url, "dir", f.dir)
	errMain := f.fetchArchive(ctx)
	if errMain != nil {
		slog.Warn("Cannot fetch taxonomy archive",
			"url", f.url, "error", errMain)
		if ctx.Err() != nil {
			return nil, AllSourcesFailedError(f.url, f.fallbackURL, errMain)
		}
		gn.Warn("Taxonomy archive is not available, trying <em>%s</em>",
			f.fallbackURL)
		errFallback := f.fetchFallback(ctx)
		if errFallback != nil {
			slog.Error("Cannot fetch taxonomy fallback",
				"url", f.fallbackURL, "error", errFallback)
			err = errors.Join(errMain, errFallback)
			return nil, AllSourcesFailedError(f.url, f.fallbackURL, err)
		}
	}

	res, err := ReadDumps(ctx, f.dir)
	if err != nil {
		return nil, err
	}
	if len(res.Names) == 0 || len(res.Nodes) == 0 {
		return nil, EmptyDumpError(f.dir)
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Taxonomy dump is read",
		"names", len(res.Names),
		"nodes", len(res.Nodes),
		"merged", len(res.Merged),
		"duration", dur,
	)
	gn.Info(fmt.Sprintf(
		"Read <em>%s</em> names, <em>%s</em> nodes, <em>%s</em> merged ids in %s",
		humanize.Comma(int64(len(res.Names))),
		humanize.Comma(int64(len(res.Nodes))),
		humanize.Comma(int64(len(res.Merged))),
		dur,
	))
	return res, nil
}

func (f *fetcher) fetchArchive(ctx context.Context) error {
	path := filepath.Join(f.dir, filepath.Base(f.url))
	err := f.download(ctx, f.url, path)
	if err != nil {
		return err
	}
	return extractArchive(path, f.dir, dumps)
}

func (f *fetcher) fetchFallback(ctx context.Context) error {
	for _, v := range dumps {
		url := f.fallbackURL + "/" + v + ".gz"
		gzPath := filepath.Join(f.dir, v+".gz")
		err := f.download(ctx, url, gzPath)
		if err != nil {
			return err
		}
		err = gunzipFile(gzPath, filepath.Join(f.dir, v))
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *fetcher) clean() {
	err := gnsys.CleanDir(f.dir)
	if err != nil {
		slog.Warn("Cannot clean download directory", "dir", f.dir, "error", err)
	}
}
