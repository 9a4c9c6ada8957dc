// Command hersenviz renders fMRI-style activity animations: synthetic
// demos, CSV volumes, terminal playback and background generation.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	hersenen "github.com/AliceLynxx/BewegendeHersenen"
	"github.com/AliceLynxx/BewegendeHersenen/internal/config"
	"github.com/AliceLynxx/BewegendeHersenen/internal/player"
	"github.com/AliceLynxx/BewegendeHersenen/internal/synth"
)

var (
	configFile string
	verbose    bool

	// Render settings (flags override the config file).
	colormap   string
	alpha      float64
	threshold  string
	interval   int
	background string
	autoBG     bool
	output     string
	title      string

	// Demo data settings.
	width  int
	height int
	frames int
	noise  float64
	seed   int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hersenviz",
		Short: "fMRI-style activity animations from scalar fields",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				hersenen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "render a synthetic brain-activity animation",
		RunE:  runDemo,
	}
	addRenderFlags(demoCmd)
	addSynthFlags(demoCmd)

	renderCmd := &cobra.Command{
		Use:   "render [volume.csv]",
		Short: "render an animation from a CSV volume",
		Long: "Render an animation from a CSV volume: one row of comma-separated\n" +
			"values per scan line, frames separated by blank lines.",
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
	addRenderFlags(renderCmd)

	playCmd := &cobra.Command{
		Use:   "play [volume.csv]",
		Short: "play an animation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	addRenderFlags(playCmd)
	addSynthFlags(playCmd)

	backgroundCmd := &cobra.Command{
		Use:   "background [output.png]",
		Short: "generate a grayscale background image",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBackground,
	}
	backgroundCmd.Flags().IntVar(&width, "width", 100, "image width")
	backgroundCmd.Flags().IntVar(&height, "height", 100, "image height")
	backgroundCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	rootCmd.AddCommand(demoCmd, renderCmd, playCmd, backgroundCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&colormap, "colormap", "", "colormap: hot, plasma, inferno, viridis")
	cmd.Flags().Float64Var(&alpha, "alpha", -1, "overlay alpha in [0,1]")
	cmd.Flags().StringVar(&threshold, "threshold", "", "activity threshold: number, 'auto' or 'none'")
	cmd.Flags().IntVar(&interval, "interval", 0, "frame interval in ms")
	cmd.Flags().StringVar(&background, "background", "", "background image path")
	cmd.Flags().BoolVar(&autoBG, "auto-background", false, "probe working directory for background.png")
	cmd.Flags().StringVar(&output, "output", "", "output path (.gif or .mp4)")
	cmd.Flags().StringVar(&title, "title", "", "title burned into each frame")
}

func addSynthFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 64, "volume width")
	cmd.Flags().IntVar(&height, "height", 64, "volume height")
	cmd.Flags().IntVar(&frames, "frames", 50, "number of time steps")
	cmd.Flags().Float64Var(&noise, "noise", 0.1, "noise level")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
}

// loadConfig merges the config file (if any) with flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if colormap != "" {
		cfg.Colormap = colormap
	}
	if alpha >= 0 {
		cfg.OverlayAlpha = alpha
	}
	if threshold != "" {
		if err := cfg.Threshold.Encode(threshold); err != nil {
			return cfg, err
		}
	}
	if interval > 0 {
		cfg.Interval = interval
	}
	if background != "" {
		cfg.Background = background
	}
	if autoBG {
		cfg.AutoBackground = true
	}
	if output != "" {
		cfg.Output = output
	}
	if title != "" {
		cfg.Title = title
	}
	return cfg, nil
}

func buildAnimator(cfg config.Config) (*hersenen.Animator, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	an, err := hersenen.New(opts...)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Background != "":
		if err := an.LoadBackgroundFile(cfg.Background); err != nil {
			return nil, err
		}
	case cfg.AutoBackground:
		found, err := an.AutoDetectBackground()
		if err != nil {
			return nil, err
		}
		if !found {
			fmt.Fprintln(os.Stderr, "warning: no background.png found, compositing without background")
		}
	}
	return an, nil
}

func composeAndSave(an *hersenen.Animator, cfg config.Config) (*hersenen.Animation, error) {
	anim, err := an.CreateAnimation(hersenen.AnimationOptions{
		Title:      cfg.Title,
		OutputPath: cfg.Output,
	})
	if errors.Is(err, hersenen.ErrCodecUnavailable) {
		// Missing ffmpeg degrades to GIF next to the requested path.
		fallback := strings.TrimSuffix(cfg.Output, ".mp4") + ".gif"
		fmt.Fprintf(os.Stderr, "warning: ffmpeg not found, writing %s instead\n", fallback)
		if err := anim.SaveGIF(fallback); err != nil {
			return nil, err
		}
		return anim, nil
	}
	return anim, err
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = "brain_activity.gif"
	}

	data := synth.ActivityVolume(width, height, frames, synth.DefaultCenters(width, height), noise, seed)
	vol, err := hersenen.NewVolume(data)
	if err != nil {
		return err
	}

	an, err := buildAnimator(cfg)
	if err != nil {
		return err
	}
	if err := an.LoadData(vol); err != nil {
		return err
	}
	anim, err := composeAndSave(an, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("rendered %d frames (%dx%d) to %s\n", len(anim.Frames), width, height, cfg.Output)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = "animation.gif"
	}

	vol, err := loadVolumeCSV(args[0])
	if err != nil {
		return err
	}
	an, err := buildAnimator(cfg)
	if err != nil {
		return err
	}
	if err := an.LoadData(vol); err != nil {
		return err
	}
	anim, err := composeAndSave(an, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("rendered %d frames to %s\n", len(anim.Frames), cfg.Output)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output = "" // playback never writes files

	var vol *hersenen.Volume
	if len(args) == 1 {
		vol, err = loadVolumeCSV(args[0])
	} else {
		data := synth.ActivityVolume(width, height, frames, synth.DefaultCenters(width, height), noise, seed)
		vol, err = hersenen.NewVolume(data)
	}
	if err != nil {
		return err
	}

	an, err := buildAnimator(cfg)
	if err != nil {
		return err
	}
	if err := an.LoadData(vol); err != nil {
		return err
	}
	anim, err := an.CreateAnimation(hersenen.AnimationOptions{Title: cfg.Title})
	if err != nil {
		return err
	}
	return player.Run(anim)
}

func runBackground(cmd *cobra.Command, args []string) error {
	path := "background.png"
	if len(args) == 1 {
		path = args[0]
	}

	plane := synth.LandscapeBackground(width, height, seed)
	frame := hersenen.NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.SetPixel(x, y, hersenen.Gray(plane[y][x]))
		}
	}
	if err := frame.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("wrote %dx%d background to %s\n", width, height, path)
	return nil
}

// loadVolumeCSV reads a volume from a text file: one row of
// comma-separated values per scan line, frames separated by blank lines.
// Every frame must have the same dimensions.
func loadVolumeCSV(path string) (*hersenen.Volume, error) {
	f, err := os.Open(path) //nolint:gosec // input path is user-chosen
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var planes [][][]float64 // [t][y][x]
	var current [][]float64

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				planes = append(planes, current)
				current = nil
			}
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s frame %d row %d: %w", path, len(planes), len(current), err)
			}
			row[i] = v
		}
		current = append(current, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		planes = append(planes, current)
	}
	if len(planes) == 0 {
		return nil, fmt.Errorf("%s: no frames found", path)
	}

	h := len(planes[0])
	w := len(planes[0][0])
	data := make([][][]float64, h)
	for y := range data {
		data[y] = make([][]float64, w)
		for x := range data[y] {
			data[y][x] = make([]float64, len(planes))
		}
	}
	for t, plane := range planes {
		if len(plane) != h {
			return nil, fmt.Errorf("%s: frame %d has %d rows, want %d", path, t, len(plane), h)
		}
		for y, row := range plane {
			if len(row) != w {
				return nil, fmt.Errorf("%s: frame %d row %d has %d columns, want %d", path, t, y, len(row), w)
			}
			for x, v := range row {
				data[y][x][t] = v
			}
		}
	}
	return hersenen.NewVolume(data)
}
