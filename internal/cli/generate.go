package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runfalk/typed-ctypes/internal/gen"
)

// NewGenerateCommand creates the generate command, which renders the testlib
// sources from the type manifest.
func NewGenerateCommand(opts *RootOptions) *cobra.Command {
	var (
		manifestPath string
		outDir       string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the testlib sources from the type manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := gen.Load(manifestPath)
			if err != nil {
				return err
			}
			slog.Debug("manifest loaded", "path", manifestPath, "types", len(m.Types))

			files, err := gen.Render(m)
			if err != nil {
				return err
			}

			if check {
				stale, err := gen.Check(outDir, files)
				if err != nil {
					return err
				}
				if len(stale) > 0 {
					return fmt.Errorf("generated sources are out of date, rerun fixturegen generate: %s",
						strings.Join(stale, ", "))
				}
				slog.Info("generated sources are up to date", "dir", outDir)
				return nil
			}

			if err := gen.Write(outDir, files); err != nil {
				return err
			}
			slog.Info("sources written", "dir", outDir, "files", len(files))
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "testlib/types.yaml", "path to the type manifest")
	cmd.Flags().StringVar(&outDir, "out", "testlib", "directory to place the generated sources in")
	cmd.Flags().BoolVar(&check, "check", false, "verify the generated sources match the manifest instead of writing")

	return cmd
}
