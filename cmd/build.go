package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/yetobasi/homepage/internal/config"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/logging"
	"github.com/yetobasi/homepage/internal/web"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the page as static HTML",
	Long: `build renders index.html with the initial page state and copies the
script, stylesheet and images next to it. The exported page has no server
behind it, so the carousel and navigation stay on their initial state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = buildOut
		}
		log := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		return build(cfg, log)
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "", "output directory (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func build(cfg *config.Config, log *slog.Logger) error {
	out := cfg.OutputDir
	if out == "" {
		return fmt.Errorf("no output directory")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := web.New(web.Options{
		Site:             content.Load(),
		AutoplayInterval: cfg.AutoplayInterval,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	if err := srv.RenderIndex(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	if err := copyTree(web.StaticAssets(), filepath.Join(out, "static")); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	if fi, err := os.Stat(cfg.ImagesDir); err == nil && fi.IsDir() {
		if err := copyTree(os.DirFS(cfg.ImagesDir), filepath.Join(out, "images")); err != nil {
			return fmt.Errorf("copying images: %w", err)
		}
	} else {
		log.Warn("images directory not found, skipping copy", "dir", cfg.ImagesDir)
	}

	log.Info("site built", "out", out)
	return nil
}

// copyTree copies every file of fsys under dst, replacing existing files.
func copyTree(fsys fs.FS, dst string) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(fsys, path, target)
	})
}

func copyFile(fsys fs.FS, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
