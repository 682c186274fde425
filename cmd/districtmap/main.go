package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"districtmap/adapters/excel"
	"districtmap/adapters/jsonfile"
	"districtmap/app"
	"districtmap/domain/district"
	"districtmap/internal/config"
	"districtmap/internal/errors"
	"districtmap/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rootCmd := newRootCmd(cfg, stdout)
	rootCmd.AddCommand(
		newLookupCmd(cfg, stdout),
		newServeCmd(cfg),
	)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if cmd, err := rootCmd.ExecuteContextC(ctx); err != nil {
		if notFound := errors.Find(err, errors.CodeInputNotFound); notFound != nil {
			fmt.Fprintf(stderr, "Error: %s\n", notFound.Message)
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config, stdout io.Writer) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "districtmap [excel_file] [output_file]",
		Short: "Convert the Indiana district/county workbook into the site's JSON lookup file",
		Long: `Convert the Indiana House, Senate and Congressional district workbook into a
JSON lookup document for the static website.

Defaults: "` + config.DefaultInputFile + `" → "` + config.DefaultOutputFile + `"
Environment: DISTRICTMAP_INPUT, DISTRICTMAP_OUTPUT, DISTRICTMAP_SHEET, DISTRICTMAP_INDENT

Example: districtmap "Indiana House Districts by County.xlsx" public/district_data.json`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.WithArgs(args)
			if sheet != "" {
				cfg.Paths.SheetName = sheet
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConvert(cmd.Context(), cfg, stdout)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")

	return cmd
}

func runConvert(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	reader := excel.NewDataReader(excel.ReaderConfig{
		FilePath:  cfg.Paths.InputFile,
		SheetName: cfg.Paths.SheetName,
	})
	converter := app.NewConverter(jsonfile.NewWriter(cfg.Output.Indent), stdout)

	_, err := converter.Convert(ctx, app.ConvertRequest{
		Source:     reader,
		SourceName: cfg.Paths.InputFile,
		OutputPath: cfg.Paths.OutputFile,
	})
	return err
}

func newLookupCmd(cfg *config.Config, stdout io.Writer) *cobra.Command {
	var county string
	var districtRef string

	cmd := &cobra.Command{
		Use:   "lookup [data-file]",
		Short: "Query a generated lookup file by county or district",
		Long: `Print the districts that include a county, or the counties of a district.

Example: districtmap lookup district_data.json --county "St. Joseph"
         districtmap lookup district_data.json --district senate:5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Paths.OutputFile
			if len(args) > 0 {
				path = args[0]
			}
			if (county == "") == (districtRef == "") {
				return errors.InvalidInput("exactly one of --county or --district is required")
			}

			doc, err := jsonfile.Read(path)
			if err != nil {
				return err
			}
			lookup := app.NewLookup(doc)

			if county != "" {
				return printCounty(stdout, lookup, county)
			}
			return printDistrict(stdout, lookup, districtRef)
		},
	}

	cmd.Flags().StringVar(&county, "county", "", "County name (case-insensitive)")
	cmd.Flags().StringVar(&districtRef, "district", "", "District reference such as house:12, sd:5 or cd:2")

	return cmd
}

func printCounty(w io.Writer, lookup *app.Lookup, name string) error {
	result, err := lookup.County(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", result.County)
	for _, c := range district.Categories() {
		fmt.Fprintf(w, "  %-14s %s\n", string(c)+":", joinInts(result.Districts[c]))
	}
	return nil
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

func printDistrict(w io.Writer, lookup *app.Lookup, ref string) error {
	category, number, err := app.ParseDistrictRef(ref)
	if err != nil {
		return err
	}
	counties, err := lookup.District(category, number)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s district %d: %s\n", category, number, strings.Join(counties, ", "))
	return nil
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	var port int
	var siteDir string

	cmd := &cobra.Command{
		Use:   "serve [data-file]",
		Short: "Serve a generated lookup file for local site preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Paths.OutputFile
			if len(args) > 0 {
				path = args[0]
			}
			cfg.Server.Port = port
			if err := cfg.Server.Validate(); err != nil {
				return err
			}

			doc, err := jsonfile.Read(path)
			if err != nil {
				return err
			}

			server, err := ui.NewServer(app.NewLookup(doc), ui.ServerOptions{
				DocName: filepath.Base(path),
				SiteDir: siteDir,
				GinMode: cfg.Server.GinMode,
			})
			if err != nil {
				return err
			}
			return server.Start(":" + strconv.Itoa(cfg.Server.Port))
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Server.Port, "Port to listen on")
	cmd.Flags().StringVar(&siteDir, "site", "", "Directory of static site files to serve alongside the data")

	return cmd
}
