// Command i18nrender renders a page marked with data-i18n attributes in one
// language and writes the result to stdout.
//
//	i18nrender -dir static/i18n -locale "$LANG" static/index.html
//	i18nrender -dir static/i18n -lang he -db data/orderbot.db static/index.html
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mixelka/orderbot/internal/database"
	"github.com/mixelka/orderbot/internal/i18n"
	"github.com/mixelka/orderbot/internal/logging"
)

func main() {
	dir := flag.String("dir", "./static/i18n", "directory with <lang>.json or <lang>.yaml tables")
	baseURL := flag.String("url", "", "load tables over HTTP from this base URL instead of -dir")
	lang := flag.String("lang", "", "switch to this language after detection")
	locale := flag.String("locale", os.Getenv("LANG"), "locale or Accept-Language value used for detection")
	dbPath := flag.String("db", "", "SQLite database holding the saved language (in-memory when empty)")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.Options{Level: *logLevel})

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: i18nrender [flags] page.html")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()

	var store i18n.PreferenceStore = i18n.NewMemoryStore()
	if *dbPath != "" {
		db, err := database.New(*dbPath)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		store = db
	}

	var fetcher i18n.Fetcher = i18n.FSFetcher{FS: os.DirFS(*dir)}
	if *baseURL != "" {
		fetcher = i18n.NewHTTPFetcher(*baseURL)
	}

	resolver := i18n.New(i18n.Options{
		Fetcher: fetcher,
		Store:   store,
		Logger:  logger,
	})

	// POSIX locales look like uk_UA.UTF-8
	detectFrom := strings.ReplaceAll(strings.SplitN(*locale, ".", 2)[0], "_", "-")
	if err := resolver.Init(ctx, detectFrom); err != nil {
		logger.Error("failed to load translations", "error", err)
		os.Exit(1)
	}

	if *lang != "" {
		if err := resolver.Switch(ctx, *lang); err != nil {
			logger.Error("failed to switch language", "language", *lang, "error", err)
			os.Exit(1)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Error("failed to open page", "error", err)
		os.Exit(1)
	}
	page, err := i18n.NewPage(f)
	f.Close()
	if err != nil {
		logger.Error("failed to parse page", "error", err)
		os.Exit(1)
	}

	resolver.Attach(page)

	out, err := page.HTML()
	if err != nil {
		logger.Error("failed to render page", "error", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
