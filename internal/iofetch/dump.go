package iofetch

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gntaxa/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// ReadDumps reads names, nodes and merged dumps from dir concurrently.
// A missing merged dump results in an empty Merged table.
func ReadDumps(ctx context.Context, dir string) (*taxonomy.RawRecords, error) {
	res := &taxonomy.RawRecords{}
	g, ctx := errgroup.WithContext(ctx)

	targets := []*[][]string{&res.Names, &res.Nodes, &res.Merged}
	for i, v := range dumps {
		path := filepath.Join(dir, v)
		g.Go(func() error {
			if v == MergedDump {
				if _, err := os.Stat(path); err != nil {
					return nil
				}
			}
			rows, err := ReadDump(ctx, path)
			if err != nil {
				return err
			}
			*targets[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadDump reads a dump file and splits every line on tab characters.
// Field separators "|" stay in the result, so data of a row occupy
// even positions: 0, 2, 4...
func ReadDump(ctx context.Context, path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var res [][]string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var count int
	for sc.Scan() {
		count++
		if count%100_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		res = append(res, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
