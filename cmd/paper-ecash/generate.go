package main

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elsirion/paper-ecash/internal/layout"
	"github.com/elsirion/paper-ecash/internal/manifest"
	"github.com/elsirion/paper-ecash/internal/notes"
	"github.com/elsirion/paper-ecash/internal/qr"
	"github.com/elsirion/paper-ecash/pkg/types"
)

func init() {
	def := types.DefaultRenderConfig()

	rootCmd.Flags().String("front-image", def.FrontImage, "base image for the note front")
	rootCmd.Flags().String("back-image", def.BackImage, "image for the note back")
	rootCmd.Flags().String("output", def.Output, "output PDF file")
	rootCmd.Flags().String("qr-dir", def.QRDir, "directory for intermediate QR images")
	rootCmd.Flags().String("qr-icon", "", "optional icon overlaid on the center of each QR code")
	rootCmd.Flags().Int("qr-icon-size", def.IconSizePercent, "icon size as a percentage of the QR width")
	rootCmd.Flags().String("qr-error-correction", string(def.Level), "QR error-correction level: L, M, Q, or H (auto-upgraded to H with --qr-icon)")
	rootCmd.Flags().Float64("qr-x-offset", def.XOffsetCM, "QR distance from the note's left edge, in cm")
	rootCmd.Flags().Float64("qr-y-offset", def.YOffsetCM, "QR distance from the note's bottom edge, in cm")
	rootCmd.Flags().Float64("qr-size", def.SizeCM, "printed QR edge length, in cm")
	rootCmd.Flags().Float64("note-width", def.NoteWidthCM, "printed note width, in cm")
	rootCmd.Flags().Float64("note-height", def.NoteHeightCM, "printed note height, in cm")
	rootCmd.Flags().Float64("page-margin", def.PageMarginCM, "sheet margin, in cm")
	rootCmd.Flags().Float64("vertical-spacing", def.VSpacingCM, "vertical gap between notes, in cm")
	rootCmd.Flags().Bool("qr-transparent", def.Transparent, "render the QR background transparent")
	rootCmd.Flags().Bool("keep-going", false, "report tokens that fail QR encoding and continue instead of aborting")
	rootCmd.Flags().String("manifest", "", "write a YAML manifest tying input lines to printed sheets")
}

// configFromFlags resolves the render configuration with the usual
// precedence: explicit flag, then config file or environment, then default.
func configFromFlags(cmd *cobra.Command) (types.RenderConfig, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return types.RenderConfig{}, err
	}

	level, err := types.ParseECLevel(viper.GetString("qr-error-correction"))
	if err != nil {
		return types.RenderConfig{}, err
	}

	cfg := types.RenderConfig{
		FrontImage:      viper.GetString("front-image"),
		BackImage:       viper.GetString("back-image"),
		Output:          viper.GetString("output"),
		QRDir:           viper.GetString("qr-dir"),
		IconPath:        viper.GetString("qr-icon"),
		IconSizePercent: viper.GetInt("qr-icon-size"),
		Level:           level,
		XOffsetCM:       viper.GetFloat64("qr-x-offset"),
		YOffsetCM:       viper.GetFloat64("qr-y-offset"),
		SizeCM:          viper.GetFloat64("qr-size"),
		NoteWidthCM:     viper.GetFloat64("note-width"),
		NoteHeightCM:    viper.GetFloat64("note-height"),
		PageMarginCM:    viper.GetFloat64("page-margin"),
		VSpacingCM:      viper.GetFloat64("vertical-spacing"),
		Transparent:     viper.GetBool("qr-transparent"),
		KeepGoing:       viper.GetBool("keep-going"),
		ManifestPath:    viper.GetString("manifest"),
	}

	explicit := cmd.Flags().Changed("qr-error-correction")
	cfg.Level = qr.EffectiveLevel(cfg.Level, cfg.IconPath != "", explicit)

	return cfg, cfg.Validate()
}

// checkImage verifies an artwork file exists and decodes as an image before
// any output is produced.
func checkImage(path string) error {
	if _, err := imaging.Open(path); err != nil {
		return &types.InputError{Path: path, Err: err}
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	if cfg.IconPath != "" {
		if cfg.IconSizePercent > qr.IconSafePercent {
			fmt.Fprintf(os.Stderr, "warning: icon size %d%% exceeds %d%%; the QR codes may not scan even at level H\n",
				cfg.IconSizePercent, qr.IconSafePercent)
		}
		if cfg.Level != types.ECHigh {
			fmt.Fprintf(os.Stderr, "warning: icon overlay with error-correction level %s; level H is recommended\n", cfg.Level)
		}
	}

	// Fail on unreadable inputs before writing anything.
	if err := checkImage(cfg.FrontImage); err != nil {
		return err
	}
	if err := checkImage(cfg.BackImage); err != nil {
		return err
	}

	noteList, err := notes.Load(csvPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d note(s) in %s, generating QR codes at level %s...\n",
		len(noteList), csvPath, cfg.Level)

	gen, err := qr.NewGenerator(cfg)
	if err != nil {
		return err
	}
	result, err := gen.GenerateBatch(noteList, cfg.QRDir, cfg.KeepGoing, os.Stderr)
	if err != nil {
		return err
	}
	if result.Generated == 0 {
		return fmt.Errorf("no QR codes were generated")
	}

	if err := layout.Emit(cfg, result.Files, os.Stderr); err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		doc := manifest.Build(csvPath, cfg.Output, noteList, result.Files, layout.SlotsPerSheet(cfg))
		if err := manifest.Write(doc, cfg.ManifestPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote manifest %s\n", cfg.ManifestPath)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d note(s) failed QR encoding; their rows are absent from the output", result.Failed)
	}
	fmt.Fprintf(os.Stderr, "Success! PDF generated: %s\n", cfg.Output)
	return nil
}
