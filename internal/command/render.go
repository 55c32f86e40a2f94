package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/yell/internal/content"
)

const stdinPath = "-"

func renderCommand() *cobra.Command {
	var (
		format  string
		charset string
	)
	cmd := &cobra.Command{
		Use:   "render [FILE...]",
		Short: "render Markdown documents to HTML or Markdown",
		Long: "Renders each file, or stdin when no file (or -) is given, expanding registered\n" +
			"blocks. Documents are rendered concurrently and written to stdout in order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}

			registry, err := newRegistry(cfg, logger)
			if err != nil {
				return err
			}
			pipeline, err := content.Pipeline(registry, content.Format(cfg.Format), cfg.Sanitize)
			if err != nil {
				return err
			}

			contentType := "text/markdown"
			if charset != "" {
				contentType += "; charset=" + charset
			}
			if len(args) == 0 {
				args = []string{stdinPath}
			}

			outputs := make([][]byte, len(args))
			grp, ctx := errgroup.WithContext(cmd.Context())
			grp.SetLimit(cfg.Workers)
			for idx, path := range args {
				grp.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					input, err := readInput(cmd.InOrStdin(), path)
					if err != nil {
						return err
					}
					output, err := content.Render(contentType, pipeline, input)
					if err != nil {
						return fmt.Errorf("failed to render %s: %w", path, err)
					}
					logger.DebugContext(ctx, "rendered document",
						slog.String("path", path),
						slog.Int("bytes", len(output)))
					outputs[idx] = output
					return nil
				})
			}
			if err = grp.Wait(); err != nil {
				return err
			}

			for _, output := range outputs {
				if _, err = cmd.OutOrStdout().Write(output); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", `output format, "html" or "markdown" (default from config)`)
	cmd.Flags().StringVar(&charset, "charset", "", "input charset (detected when unset)")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // reading user-supplied documents is the point
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
