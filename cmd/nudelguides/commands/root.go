package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"nudelguides/lib/configutil"
	"nudelguides/lib/restyutil"
	"nudelguides/lib/scrapers/nudel"
	"nudelguides/lib/serviceutil"
	"nudelguides/lib/telemetry"
	"nudelguides/services/gallery"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	outputDir *string
	deploy    *bool
	dumpHttp  *string
	verbose   *bool
)

func init() {
	outputDir = rootCmd.Flags().StringP("output", "o", ".", "The directory to write pdfs, thumbnails and the gallery to.")
	deploy = rootCmd.Flags().Bool("deploy", false, "Also assemble a hosting-ready bundle under <output>/site.")
	dumpHttp = rootCmd.Flags().String("dump-http", "", "Dump raw HTTP exchanges to a directory for debugging.")
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Log at debug level.")
}

// optional config.json5, every field has a default
type Config struct {
	GuidePage  string   `json:"guide_page"`
	LevelPages []string `json:"level_pages"`
	UserAgent  string   `json:"user_agent"`
}

var rootCmd = &cobra.Command{
	Use:   "nudelguides [--deploy] [-o <dir>]",
	Short: "Downloads the nudel.shop step-by-step guides and renders a static gallery over them.",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.Context())
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func run(ctx context.Context) {
	initSlog(*verbose)

	t, err := telemetry.SetupFromEnv(ctx, "nudelguides")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if len(cfg.LevelPages) == 0 {
		cfg.LevelPages = nudel.DefaultLevelPages
	}

	client, err := nudel.NewClient(nudel.ClientOptions{
		GuidePage: cfg.GuidePage,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	if *dumpHttp != "" {
		client.SetInstrumentOutput(restyutil.NewFilesystemOutput(*dumpHttp))
	}

	slog.Info("fetching guide page", "url", client.GuidePage.String())
	doc, err := client.FetchGuidePage(ctx)
	if err != nil {
		serviceutil.Fatal("failed to fetch guide page", err)
	}

	guides := nudel.ExtractGuides(ctx, doc, client.GuidePage)
	if len(guides) == 0 {
		slog.Warn("no pdf links found on the page, they may be rendered by javascript")
		return
	}
	slog.Info("found guides", "count", len(guides))

	videos := client.FetchLevelVideos(ctx, cfg.LevelPages)
	guides = gallery.AttachVideos(guides, videos)

	pdfDir := filepath.Join(*outputDir, "pdfs")
	thumbDir := filepath.Join(*outputDir, "thumbnails")
	svc, err := gallery.NewService(client.Http, pdfDir, thumbDir)
	if err != nil {
		serviceutil.Fatal("failed to create output directories", err)
	}

	t1 := time.Now()
	kept, results := svc.DownloadAll(ctx, guides)
	slog.Info("download time", "seconds", time.Since(t1).Seconds())

	html, err := gallery.Render(kept, "pdfs", "thumbnails")
	if err != nil {
		serviceutil.Fatal("failed to render gallery", err)
	}
	galleryPath := filepath.Join(*outputDir, "gallery.html")
	err = os.WriteFile(galleryPath, []byte(html), 0644)
	if err != nil {
		serviceutil.Fatal("failed to write gallery", err)
	}
	slog.Info("wrote gallery", "path", galleryPath)

	if *deploy {
		site := filepath.Join(*outputDir, "site")
		err = gallery.Bundle(site, html, pdfDir, thumbDir)
		if err != nil {
			serviceutil.Fatal("failed to assemble deploy bundle", err)
		}
		slog.Info("assembled deploy bundle", "dir", site)
	}

	fmt.Println(gallery.Summarize(results).Render())
}
