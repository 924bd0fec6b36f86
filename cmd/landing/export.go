package main

import (
	"github.com/spf13/cobra"

	"github.com/holistic-man/pagina-guia/internal/export"
	"github.com/holistic-man/pagina-guia/internal/landing"
	"github.com/holistic-man/pagina-guia/internal/observability"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page to a directory as index.html",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		dir := cfg.Export.Dir
		if exportDir != "" {
			dir = exportDir
		}

		doc, err := render.HTML(landing.Page(), documentOptions(cfg))
		if err != nil {
			return err
		}

		ctx := observability.WithLogger(cmd.Context(), logger.Named("export"))
		path, err := export.Write(ctx, dir, doc)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (overrides LANDING_OUT_DIR)")
	rootCmd.AddCommand(exportCmd)
}
