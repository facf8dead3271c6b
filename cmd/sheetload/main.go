// Package main provides the CLI entry point for sheetload.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetload-go/internal/config"
	"github.com/ukaji3/sheetload-go/internal/logging"
	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/insert"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/output"
)

var (
	outputPath string
	pretty     bool
	backend    string
	asJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetload",
		Short: "Load spreadsheet rows as records",
		Long: `sheetload decodes the first sheet of an Excel workbook, maps every
row below the header into a record and hands the records to an inserter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Decoder backend: excelize or tealeg (default: SHEETLOAD_BACKEND)")

	mapCmd := &cobra.Command{
		Use:   "map <input.xlsx>",
		Short: "Decode a workbook and print its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runMap,
	}
	mapCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	mapCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	insertCmd := &cobra.Command{
		Use:   "insert <input.xlsx>",
		Short: "Decode a workbook and insert its records",
		Long: `insert writes the records to Postgres when DATABASE_URL is set and to an
in-memory store otherwise. One outcome line is printed per record.`,
		Args: cobra.ExactArgs(1),
		RunE: runInsert,
	}
	insertCmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	insertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	rootCmd.AddCommand(mapCmd, insertCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+errs.UserMessage(err))
		os.Exit(1)
	}
}

// setup loads configuration, installs the logger and builds the loader.
func setup() (*config.Config, *sheetload.Loader, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if backend != "" {
		cfg.Load.Backend = sheetload.Backend(backend)
	}

	logger := logging.Init(os.Stderr, cfg.LogLevel)

	loader, err := sheetload.NewLoader(cfg.Load.Options(), logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader, nil
}

// newInserter connects to Postgres when a database URL is configured.
// The returned func releases the connection.
func newInserter(ctx context.Context, cfg *config.Config) (insert.Inserter, func(), error) {
	if cfg.Database.URL == "" {
		slog.Info("DATABASE_URL not set, using in-memory inserter")
		return insert.NewMemory(cfg.Database.Required...), func() {}, nil
	}

	db, err := insert.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pg, err := insert.NewPostgres(db, cfg.Database.Table)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to prepare table: %w", err)
	}
	return pg, func() { db.Close() }, nil
}

func runMap(cmd *cobra.Command, args []string) error {
	_, loader, err := setup()
	if err != nil {
		return err
	}

	up, err := loader.Load(cmd.Context(), sheetload.FileSource(args[0]))
	if err != nil {
		return err
	}

	jsonData, err := output.UploadToJSON(up, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runInsert(cmd *cobra.Command, args []string) error {
	cfg, loader, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	up, err := loader.Load(ctx, sheetload.FileSource(args[0]))
	if err != nil {
		return err
	}

	inserter, closeFn, err := newInserter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := loader.Insert(ctx, up, inserter)
	if err != nil {
		return err
	}

	if asJSON {
		jsonData, err := output.ResultToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}
	return output.WriteOutcomes(os.Stdout, res.Outcomes)
}
