package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"crawler-dashboard/pkg/cli"
	"crawler-dashboard/pkg/cli/logger"
	"crawler-dashboard/pkg/config"
	"crawler-dashboard/pkg/urllist"

	"github.com/akamensky/argparse"
)

func main() {
	parser := argparse.NewParser("crawler-dashboard", "dashboard for the URL crawl service")

	listMode := parser.Flag("", "list", &argparse.Options{Help: "List URLs"})
	search := parser.String("", "search", &argparse.Options{Help: "Only list URLs whose url or title contains this text"})
	status := parser.String("", "status", &argparse.Options{Help: "Only list URLs with this status (queued, running, done, error, stopped)"})
	login := parser.Selector("", "login", []string{"any", "yes", "no"}, &argparse.Options{
		Help:    "Filter by detected login form",
		Default: "any",
	})
	sortBy := parser.Selector("", "sort", sortKeyNames(), &argparse.Options{Help: "Sort by column"})
	desc := parser.Flag("", "desc", &argparse.Options{Help: "Sort descending"})
	page := parser.Int("", "page", &argparse.Options{Help: "Page to show", Default: 1})

	addURL := parser.String("", "add", &argparse.Options{Help: "Submit a URL for crawling"})
	refreshIDs := parser.StringList("", "refresh", &argparse.Options{Help: "Re-crawl URLs by id (repeatable)"})
	stopID := parser.String("", "stop", &argparse.Options{Help: "Stop the crawl of a URL by id"})
	deleteIDs := parser.StringList("", "delete", &argparse.Options{Help: "Delete URLs by id (repeatable)"})
	showID := parser.String("", "show", &argparse.Options{Help: "Show details and broken links of a URL by id"})

	// Config commands
	configShow := parser.Flag("", "config-show", &argparse.Options{Help: "Show current configuration"})
	configSet := parser.String("", "config-set", &argparse.Options{Help: "Set a config value (format: section.key=value)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	if _, err := logger.Init("tmp"); err != nil {
		log.Printf("warning: file logging disabled: %v", err)
	}
	defer logger.CloseLog()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := cli.NewApp(cfg)
	ctx := context.Background()

	// Handle config commands first (don't need the API)
	if *configShow {
		exitOnError(app.ShowConfig())
		return
	}
	if *configSet != "" {
		exitOnError(app.SetConfig(*configSet))
		fmt.Println("Configuration updated successfully")
		return
	}

	switch {
	case *listMode:
		exitOnError(app.ListURLs(ctx, cli.ListOptions{
			Search: *search,
			Status: *status,
			Login:  *login,
			Sort:   *sortBy,
			Desc:   *desc,
			Page:   *page,
		}))
	case *addURL != "":
		exitOnError(app.AddURL(ctx, *addURL))
	case len(*refreshIDs) > 0:
		exitOnError(app.RefreshURLs(ctx, parseIDs(*refreshIDs)))
	case *stopID != "":
		exitOnError(app.StopURL(ctx, parseID(*stopID)))
	case len(*deleteIDs) > 0:
		exitOnError(app.DeleteURLs(ctx, parseIDs(*deleteIDs)))
	case *showID != "":
		exitOnError(app.ShowURL(ctx, parseID(*showID)))
	default:
		// Interactive TUI mode
		exitOnError(app.Run())
	}
}

func sortKeyNames() []string {
	names := make([]string, 0, len(urllist.SortKeys)+1)
	names = append(names, string(urllist.SortByID))
	for _, k := range urllist.SortKeys {
		names = append(names, string(k))
	}
	return names
}

// parseIDs accepts ids given as repeated flags or comma separated
func parseIDs(values []string) []int64 {
	var ids []int64
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				ids = append(ids, parseID(part))
			}
		}
	}
	return ids
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid id %q\n", s)
		os.Exit(2)
	}
	return id
}

func exitOnError(err error) {
	if err != nil {
		logger.LogError(err, "command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.CloseLog()
		os.Exit(1)
	}
}
