package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/footprintcalc/embedkit/internal/server"
)

func cmdServe(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit serve [--addr host:port]"

	svc, err := NewServices(version)
	if err != nil {
		if gf.JSON {
			ReturnError(w, "init_failed", err.Error(), nil, version)
		} else {
			Errorf(wErr, "failed to initialize: %v", err)
		}
		return ExitInternalError
	}

	fs := newFlagSet("serve")
	addr := fs.String("addr", svc.Config.Serve.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return returnUsageError(w, wErr, gf, usage, version, err)
	}
	if fs.NArg() > 0 {
		return returnUsageError(w, wErr, gf, usage, version,
			fmt.Errorf("unexpected arguments: %v", fs.Args()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !gf.Quiet && !gf.JSON {
		fmt.Fprintf(w, "Serving embed documentation on http://%s\n", *addr)
	}

	srv := server.New(svc.Catalog, version)
	if err := srv.ListenAndServe(ctx, *addr); err != nil && err != context.Canceled {
		if gf.JSON {
			ReturnError(w, "serve_failed", err.Error(), nil, version)
		} else {
			Errorf(wErr, "serve failed: %v", err)
		}
		return ExitInternalError
	}
	return ExitOK
}
