// Command textq imports delimited text files into a local SQLite store,
// searches a chosen column by substring, and exports search results to a
// spreadsheet file. It is a thin frontend over the textq package; all data
// semantics live there.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/textq/textq"
)

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := textq.LoadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	cmd := &cli.Command{
		Name:  "textq",
		Usage: "import delimited text files into a local store, search them, and export results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "path of the on-disk store",
				Value: cfg.StorePath,
			},
		},
		Commands: []*cli.Command{
			loadCommand(),
			tablesCommand(),
			columnsCommand(),
			searchCommand(),
		},
	}

	return cmd.Run(ctx, args)
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// openSession opens the store named by the --db flag and wraps it in a
// session. The caller owns the returned session for the rest of the process.
func openSession(cmd *cli.Command) (*textq.Session, error) {
	path := cmd.String("db")
	store, err := textq.Open(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("store opened", "path", path)
	return textq.NewSession(store), nil
}

func loadCommand() *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "import a delimited file as a table, replacing any table of the same name",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "delimiter",
				Usage: "override the extension-based delimiter with a single character",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().Get(0)
			if path == "" {
				return fmt.Errorf("load: missing file argument")
			}

			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer session.Close() //nolint:errcheck // process is exiting

			var table string
			if d := cmd.String("delimiter"); d != "" {
				runes := []rune(d)
				if len(runes) != 1 {
					return fmt.Errorf("load: delimiter must be a single character, got %q", d)
				}
				table, err = session.LoadDelimiter(ctx, path, runes[0])
			} else {
				table, err = session.Load(ctx, path)
			}
			if err != nil {
				return err
			}

			slog.Info("table loaded", "table", table, "file", path)
			fmt.Println(table)
			return nil
		},
	}
}

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "list the tables in the store",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer session.Close() //nolint:errcheck // process is exiting

			tables, err := session.Tables(ctx)
			if err != nil {
				return err
			}
			for _, t := range tables {
				fmt.Println(t)
			}
			return nil
		},
	}
}

func columnsCommand() *cli.Command {
	return &cli.Command{
		Name:      "columns",
		Usage:     "list the columns of a table in schema order",
		ArgsUsage: "<table>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := cmd.Args().Get(0)
			if table == "" {
				return fmt.Errorf("columns: missing table argument")
			}

			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer session.Close() //nolint:errcheck // process is exiting

			columns, err := session.Columns(ctx, table)
			if err != nil {
				return err
			}
			for _, c := range columns {
				fmt.Println(c)
			}
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search a column by substring and print (or export) up to 500 matching rows",
		ArgsUsage: "<table> <column> [pattern]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"o"},
				Usage:   "write the result set to a spreadsheet file instead of printing it",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := cmd.Args().Get(0)
			column := cmd.Args().Get(1)
			pattern := cmd.Args().Get(2)
			if table == "" || column == "" {
				return fmt.Errorf("search: table and column arguments are required")
			}

			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer session.Close() //nolint:errcheck // process is exiting

			rs, err := session.Search(ctx, table, column, pattern)
			if err != nil {
				return err
			}
			slog.Info("search finished", "table", table, "column", column, "rows", rs.RowCount())

			if out := cmd.String("export"); out != "" {
				written, err := session.Export(out)
				if err != nil {
					return err
				}
				fmt.Println(written)
				return nil
			}

			printResult(rs)
			return nil
		},
	}
}

func printResult(rs *textq.ResultSet) {
	fmt.Println(strings.Join(rs.Columns, "\t"))
	for _, row := range rs.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = ""
				continue
			}
			cells[i] = fmt.Sprintf("%v", v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}
