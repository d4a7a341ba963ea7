package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/epistack/pkg/device"
	epio "github.com/matzehuels/epistack/pkg/io"
	"github.com/matzehuels/epistack/pkg/observability"
)

const defaultOutput = "hemt_structure"

// extensions maps export formats to output file extensions.
var extensions = map[string]string{
	formatTCAD: ".cmd",
	formatJSON: ".json",
}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	src     sourceOpts
	formats []string
	output  string // base path, extension appended per format
}

// exportCommand creates the export command for writing structure files.
func (c *CLI) exportCommand() *cobra.Command {
	var formatsStr string
	opts := exportOpts{output: defaultOutput}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the structure as a TCAD script and/or JSON document",
		Long: `Write a HEMT structure to disk.

Formats:
  tcad  Sentaurus structure editor script (<output>.cmd)
  json  JSON interchange document (<output>.json)

Multiple formats are written concurrently. A JSON document written here can be
read back with --input.`,
		Example: `  epistack export -f tcad,json -o build/hemt
  epistack export --substrate GaN --back-barrier -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	opts.src.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): tcad (default), json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, stdout, stderr io.Writer, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	s, err := loadStructure(ctx, opts.src)
	if err != nil {
		return err
	}

	st := startStep(logger, "export", "substrate", s.Substrate, "formats", opts.formats)
	spinner := newSpinner(ctx, stderr, "Exporting structure...")
	spinner.Start()

	paths, err := exportAll(ctx, s, opts.formats, opts.output)
	if err != nil {
		spinner.StopWithError("Export failed")
		st.done(err)
		return err
	}
	spinner.Stop()
	st.done(nil, "files", len(paths))

	printSuccess(stdout, "Exported %s structure", s.Substrate)
	for _, p := range paths {
		printFile(stdout, p)
	}
	return nil
}

// exportAll writes s once per format, concurrently, and returns the paths
// in format order. The first failure cancels the writes not yet started.
func exportAll(ctx context.Context, s *device.Structure, formats []string, base string) ([]string, error) {
	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)

	for i, format := range formats {
		path := base + extensions[format]
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return exportOne(ctx, s, format, path)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func exportOne(ctx context.Context, s *device.Structure, format, path string) (err error) {
	hooks := observability.Export()
	hooks.OnExportStart(ctx, format, path)
	defer func(start time.Time) {
		hooks.OnExportComplete(ctx, format, path, time.Since(start), err)
	}(time.Now())

	st := startStep(loggerFromContext(ctx), "wrote "+format, "path", path)
	defer func() { st.done(err) }()

	switch format {
	case formatJSON:
		return epio.ExportJSON(s, path)
	default:
		return epio.ExportTCAD(s, path)
	}
}
