// Command rivdemo shapes an image with rounded corners, an oval clip, or
// a border and writes the result as a PNG.
//
//	rivdemo -in photo.jpg -config view.toml -width 256 -height 256 -out avatar.png
//
// With -watch, the image is rendered again whenever the config changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/rounded"
)

func main() {
	var (
		input   = flag.String("in", "", "input image (png, jpeg, gif, bmp, webp)")
		output  = flag.String("out", "rounded.png", "output file")
		cfgPath = flag.String("config", "", "TOML attribute file")
		width   = flag.Int("width", 256, "output width")
		height  = flag.Int("height", 256, "output height")
		maxSide = flag.Int("max", 4096, "downscale inputs larger than this before shaping")
		watch   = flag.Bool("watch", false, "render again when the config file changes")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		rounded.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := decodeFile(*input, *maxSide)
	if err != nil {
		log.Fatalf("Failed to decode: %v", err)
	}

	job := renderJob{
		img:     img,
		key:     *input,
		cfgPath: *cfgPath,
		output:  *output,
		width:   *width,
		height:  *height,
	}
	if err := job.run(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if !*watch {
		return
	}
	if *cfgPath == "" {
		log.Fatal("-watch requires -config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchConfig(ctx, job); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// decodeFile decodes the image at path, scaling it down so neither side
// exceeds maxSide.
func decodeFile(path string, maxSide int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := img.Bounds()
	rounded.Logger().Debug("rivdemo: decoded", "path", path, "format", format, "size", b.Size())
	if maxSide <= 0 || (b.Dx() <= maxSide && b.Dy() <= maxSide) {
		return img, nil
	}

	s := float64(maxSide) / float64(max(b.Dx(), b.Dy()))
	w := max(int(float64(b.Dx())*s), 1)
	h := max(int(float64(b.Dy())*s), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

type renderJob struct {
	img           image.Image
	key           string
	cfgPath       string
	output        string
	width, height int
}

func (j renderJob) run() error {
	cfg, err := loadConfig(j.cfgPath)
	if err != nil {
		return err
	}
	cf, err := colorFilter(cfg.Filters)
	if err != nil {
		return err
	}
	view, err := rounded.NewImageViewFromAttributes(cfg.View)
	if err != nil {
		return err
	}
	if cfg.Background != nil {
		view.SetBackgroundColor(*cfg.Background)
	}
	view.SetColorFilter(cf)
	view.SetImageBitmap(j.img)
	view.SetBounds(rounded.NewRect(0, 0, float64(j.width), float64(j.height)))

	dst := image.NewRGBA(image.Rect(0, 0, j.width, j.height))
	view.Draw(rounded.NewRasterCanvas(dst))

	if err := writePNG(j.output, dst); err != nil {
		return err
	}

	t, err := cfg.transformation()
	if err != nil {
		return err
	}
	fmt.Println(rounded.MemoKey(filepath.Base(j.key), t))
	log.Printf("Saved %s (%dx%d)\n", j.output, j.width, j.height)
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// watchConfig renders again on every write to the config file until ctx
// is done. The directory is watched so editors that replace the file on
// save are still seen.
func watchConfig(ctx context.Context, job renderJob) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(job.cfgPath)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Printf("Watching %s\n", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := job.run(); err != nil {
				log.Printf("Render failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				return err
			}
		}
	}
}
