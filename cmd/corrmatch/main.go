package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"corrmatch/internal/correlate"
	"corrmatch/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	logger *zap.Logger

	flagStretch     bool
	flagPseudocolor bool
	flagMode        string
	flagColor       string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "corrmatch [flags] <template> <search> <correlationOut> [<matchOut>]",
	Short: "Locate a template image inside a search image",
	Long: `corrmatch performs normalized cross-correlation template matching.

It computes a correlation-score surface the size of the search image,
where each pixel is the correlation coefficient between the template
and the search region anchored there, writes the surface to
<correlationOut>, and reports the best-match coordinate. If <matchOut>
is given, it also writes an annotated copy of the search image marking
the match, either as a rectangle outline (draw) or by compositing the
template over a half-transparent background (overlay).

Scores are invariant to linear brightness and contrast differences
between the template and the search image.`,
	Version:       Version,
	Args:          cobra.RangeArgs(3, 4),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if flagVerbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return err
		}
		logger.Debug("corrmatch",
			zap.String("version", Version),
			zap.String("commit", GitCommit))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	templatePath, searchPath, surfaceOut := args[0], args[1], args[2]
	matchOut := ""
	if len(args) == 4 {
		matchOut = args[3]
	}

	if flagMode != "draw" && flagMode != "overlay" {
		return correlate.NewInvalidInput("unknown render mode %q (want draw or overlay)", flagMode)
	}
	stroke, err := imaging.ParseColor(flagColor)
	if err != nil {
		return &correlate.InvalidInputError{Msg: "stroke color", Cause: err}
	}

	// Fail fast if the transform backend cannot hold full score precision.
	if err := correlate.VerifyTransform(); err != nil {
		return err
	}

	templateImg, err := imaging.Load(templatePath)
	if err != nil {
		return &correlate.InvalidInputError{Msg: "template image", Cause: err}
	}
	searchImg, err := imaging.Load(searchPath)
	if err != nil {
		return &correlate.InvalidInputError{Msg: "search image", Cause: err}
	}

	tPlane := imaging.ToPlane(templateImg)
	sPlane := imaging.ToPlane(searchImg)
	logger.Debug("loaded inputs",
		zap.Int("template_width", tPlane.W),
		zap.Int("template_height", tPlane.H),
		zap.Int("search_width", sPlane.W),
		zap.Int("search_height", sPlane.H))

	surface, match, err := correlate.Correlate(tPlane, sPlane)
	if err != nil {
		return err
	}
	logger.Info("best match",
		zap.Int("x", match.X),
		zap.Int("y", match.Y),
		zap.Float64("score", match.Score))

	rendered := imaging.Render(surface, imaging.RenderOptions{
		Stretch:     flagStretch,
		Pseudocolor: flagPseudocolor,
	})
	if err := imaging.Save(rendered, surfaceOut); err != nil {
		return fmt.Errorf("writing correlation surface: %w", err)
	}

	if matchOut != "" {
		var annotated image.Image
		switch flagMode {
		case "draw":
			annotated = imaging.DrawMatch(searchImg, match.X, match.Y, tPlane.W, tPlane.H, stroke)
		case "overlay":
			annotated = imaging.OverlayMatch(searchImg, templateImg, match.X, match.Y)
		}
		if err := imaging.Save(annotated, matchOut); err != nil {
			return fmt.Errorf("writing match image: %w", err)
		}
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolVarP(&flagStretch, "stretch", "s", false, "stretch the surface to the full output dynamic range")
	rootCmd.Flags().BoolVarP(&flagPseudocolor, "pseudocolor", "p", false, "render the surface with a 7-stop color gradient")
	rootCmd.Flags().StringVarP(&flagMode, "mode", "m", "draw", "match render mode: draw or overlay")
	rootCmd.Flags().StringVarP(&flagColor, "color", "c", "black", "stroke color for draw mode (name or #RRGGBB)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
