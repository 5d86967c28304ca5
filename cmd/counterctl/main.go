// Command counterctl lists, displays and resets counters on a running server.
//
// Connection flags come before the command:
//
//	counterctl [-a addr] [-t timeout] [-retries n] list [-page n] [-size n] [-detailed]
//	counterctl [-a addr] get NAME
//	counterctl [-a addr] delete NAME
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/counters-admin/internal/buildinfo"
	"github.com/and161185/counters-admin/internal/client"
	"github.com/and161185/counters-admin/internal/config"
	"github.com/urfave/cli/v2"
)

var errUsage = errors.New("usage: counterctl [flags] list [-page n] [-size n] [-detailed] | get NAME | delete NAME")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewClientConfig()
	app := newApp(client.NewClient(cfg), os.Stdout)
	if err := app.RunContext(ctx, append([]string{app.Name}, flag.Args()...)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(c *client.Client, out io.Writer) *cli.App {
	return &cli.App{
		Name:    "counterctl",
		Usage:   "inspect and reset counters",
		Version: buildinfo.BuildVersion,
		Writer:  out,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list counters ranked by value",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "zero based page number"},
					&cli.IntFlag{Name: "size", Usage: "page size"},
					&cli.BoolFlag{Name: "detailed", Usage: "include counter values"},
				},
				Action: func(cCtx *cli.Context) error { return list(cCtx, c) },
			},
			{
				Name:      "get",
				Usage:     "show one counter",
				ArgsUsage: "NAME",
				Action:    func(cCtx *cli.Context) error { return get(cCtx, c) },
			},
			{
				Name:      "delete",
				Aliases:   []string{"reset"},
				Usage:     "reset one counter",
				ArgsUsage: "NAME",
				Action:    func(cCtx *cli.Context) error { return remove(cCtx, c) },
			},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() == 0 {
				return errUsage
			}
			return fmt.Errorf("unknown command %q: %w", cCtx.Args().First(), errUsage)
		},
	}
}

func list(cCtx *cli.Context, c *client.Client) error {
	var q *client.PageQuery
	if cCtx.IsSet("page") || cCtx.IsSet("size") {
		q = &client.PageQuery{Page: cCtx.Int("page"), Size: cCtx.Int("size")}
	}

	if cCtx.Bool("detailed") {
		res, err := c.ListCountersDetailed(cCtx.Context, q)
		if err != nil {
			return err
		}
		return printJSON(cCtx.App.Writer, res)
	}
	res, err := c.ListCounters(cCtx.Context, q)
	if err != nil {
		return err
	}
	return printJSON(cCtx.App.Writer, res)
}

func get(cCtx *cli.Context, c *client.Client) error {
	if cCtx.NArg() != 1 {
		return errUsage
	}
	res, err := c.Counter(cCtx.Context, cCtx.Args().First())
	if err != nil {
		return err
	}
	return printJSON(cCtx.App.Writer, res)
}

func remove(cCtx *cli.Context, c *client.Client) error {
	if cCtx.NArg() != 1 {
		return errUsage
	}
	name := cCtx.Args().First()
	if err := c.DeleteCounter(cCtx.Context, name); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cCtx.App.Writer, "counter %q reset\n", name)
	return err
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
