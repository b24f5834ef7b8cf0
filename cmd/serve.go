/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/ioweb"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/parserpool"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var flags taxonomyFlags
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP service for taxonomy queries",
		Long: `Serve loads the taxonomy and answers queries over HTTP.

Endpoints:
  GET  /api/v1/ping
  GET  /api/v1/taxa/:id
  GET  /api/v1/taxa/:id/lineage
  GET  /api/v1/taxa/:id/children
  GET  /api/v1/lca?a=ID&b=ID
  GET  /api/v1/compare?query=ID&ref=ID
  GET  /api/v1/find?name=NAME
  POST /api/v1/reload
  GET  /metrics

A reload builds a new taxonomy while the current one keeps serving
requests.

Examples:
  gntaxa serve
  gntaxa serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &flags, port)
		},
	}

	addTaxonomyFlags(serveCmd, &flags)
	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port of the HTTP service")
	return serveCmd
}

func runServe(cmd *cobra.Command, flags *taxonomyFlags, port int) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Update(flags.options(cmd))
	if cmd.Flags().Changed("port") {
		cfg.Update([]config.Option{config.OptServerPort(port)})
	}

	loader, err := newLoader(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	srv := ioweb.New(cfg, loader, pool.Normalizer())
	if _, err = srv.Load(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Serving taxonomy on port <em>%d</em>", cfg.Server.Port)
	if err = srv.Run(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
