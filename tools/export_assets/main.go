// Command export_assets writes the prototype layout and the generated
// placeholder sprites to disk so they can be edited by hand.
package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/1siamBot/iso-tactics/engine/logger"
	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/1siamBot/iso-tactics/engine/render"
	"github.com/1siamBot/iso-tactics/engine/systems"
	"github.com/spf13/pflag"
)

// savePNG encodes img to dst
func savePNG(dst string, img image.Image) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}

func main() {
	outDir := pflag.StringP("out", "o", "assets", "output directory")
	scale := pflag.IntP("scale", "s", maplib.DefaultScaleFactor, "sprite upscale factor")
	check := pflag.String("check", "", "validate a layout file and exit")
	pflag.Parse()

	logger.Init("info", "text")

	if *check != "" {
		l, err := maplib.LoadJSON(*check)
		if err != nil {
			logger.Log.WithError(err).Fatal("invalid layout")
		}
		logger.Log.WithField("layout", l.Name).Info("layout ok")
		return
	}

	spritesDir := filepath.Join(*outDir, "sprites")
	if err := os.MkdirAll(spritesDir, 0755); err != nil {
		logger.Log.WithError(err).Fatal("create output directory")
	}

	layoutPath := filepath.Join(*outDir, "layout.json")
	if err := maplib.DefaultLayout().SaveJSON(layoutPath); err != nil {
		logger.Log.WithError(err).Fatal("write layout")
	}
	logger.Log.WithField("path", layoutPath).Info("layout written")

	sprites := map[string]image.Image{
		"cursor_hover.png":    render.CursorPixels(systems.CursorHover),
		"cursor_selected.png": render.CursorPixels(systems.CursorSelected),
		"unit.png":            render.UnitPixels(),
	}
	for name, img := range sprites {
		dst := filepath.Join(spritesDir, name)
		if err := savePNG(dst, render.Upscale(img, *scale)); err != nil {
			logger.Log.WithError(err).WithField("path", dst).Fatal("write sprite")
		}
		logger.Log.WithField("path", dst).Debug("sprite written")
	}
	logger.Log.WithField("count", len(sprites)).Info("sprites written")
}
