package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DavidGamba/go-getoptions"
	"github.com/hrboard/notice-console/internal/api"
	"github.com/hrboard/notice-console/internal/config"
	"github.com/hrboard/notice-console/internal/form"
	"github.com/hrboard/notice-console/internal/list"
	"github.com/hrboard/notice-console/internal/model"
	"github.com/hrboard/notice-console/internal/view"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// commandLineOptionValues represents the values of the command-line options
// that were passed when the console was invoked.
type commandLineOptionValues struct {
	Page       int
	Target     string
	Status     string
	Search     string
	Date       string
	Title      string
	Types      []string
	Body       string
	Department string
	Employee   string
	Draft      bool
	Attach     []string
}

func parseCommandLine() (*commandLineOptionValues, []string) {
	optionValues := &commandLineOptionValues{}
	opt := getoptions.New()

	opt.Bool("help", false, opt.Alias("h", "?"))
	opt.IntVar(&optionValues.Page, "page", 1,
		opt.Description("page of the notice list to show"))
	opt.StringVar(&optionValues.Target, "target", "",
		opt.Description("filter or target kind: individual or department"))
	opt.StringVar(&optionValues.Status, "status", "",
		opt.Description("status filter: publish, unpublished or draft"))
	opt.StringVar(&optionValues.Search, "search", "",
		opt.Description("free-text search: employee ID or name"))
	opt.StringVar(&optionValues.Date, "date", "",
		opt.Description("published date (YYYY-MM-DD)"))
	opt.StringVar(&optionValues.Title, "title", "",
		opt.Description("notice title"))
	opt.StringSliceVar(&optionValues.Types, "type", 1, 99,
		opt.Description("notice type tag, repeatable"))
	opt.StringVar(&optionValues.Body, "body", "",
		opt.Description("notice body"))
	opt.StringVar(&optionValues.Department, "department", "",
		opt.Description("target department ID"))
	opt.StringVar(&optionValues.Employee, "employee", "",
		opt.Description("target employee ID"))
	opt.BoolVar(&optionValues.Draft, "draft", false,
		opt.Description("save as draft instead of publishing"))
	opt.StringSliceVar(&optionValues.Attach, "attach", 1, 99,
		opt.Description("file to attach, repeatable"))

	remaining, err := opt.Parse(os.Args[1:])
	if opt.Called("help") {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Fprint(os.Stderr, opt.Help(getoptions.HelpSynopsis))
		os.Exit(1)
	}

	return optionValues, remaining
}

func main() {
	ctx := context.Background()

	optionValues, args := parseCommandLine()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: app [options] <list|view|create|delete> [id]")
		os.Exit(1)
	}

	if err := loadEnv(); err != nil {
		log.Fatalf("failed to load environment variables: %s", err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to initialize config: %s", err.Error())
	}

	logger, err := newLogger(cfg.LogPath)
	if err != nil {
		log.Fatalf("failed to create zap logger: %s", err.Error())
	}

	client := api.New(cfg.APIBaseURL, cfg.Timeout)
	clock := clockwork.NewRealClock()

	switch args[0] {
	case "list":
		err = runList(ctx, logger, client, clock, optionValues)
	case "view":
		err = runView(ctx, client, cfg.FileBaseURL, args[1:])
	case "create":
		err = runCreate(ctx, logger, client, clock, optionValues)
	case "delete":
		err = runDelete(ctx, client, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func runList(ctx context.Context, logger *zap.Logger, client *api.Client, clock clockwork.Clock, optionValues *commandLineOptionValues) error {
	controller := list.New(logger, client, clock)
	defer controller.Close()

	controller.SetFilters(optionValues.Target, optionValues.Status, optionValues.Search, optionValues.Date)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}
	if optionValues.Page > 1 {
		if err := controller.SetPage(ctx, optionValues.Page); err != nil {
			return err
		}
	}

	fmt.Printf("Active Notices: %d | Draft Notices: %02d\n\n", controller.ActiveCount(), controller.DraftCount())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tNOTICE TYPE\tTARGET\tPUBLISHED ON\tSTATUS")
	for _, row := range view.Rows(controller.Notices(), clock.Now()) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.Title, row.Types, row.Target, row.PublishedOn, row.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d of %d\n", controller.Page(), controller.TotalPages())
	return nil
}

func runView(ctx context.Context, client *api.Client, fileBaseURL string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: app view <id>")
	}

	notice, err := client.GetNotice(ctx, args[0])
	if err != nil {
		return err
	}

	detail := view.Project(notice, fileBaseURL, time.Now())
	fmt.Printf("Status:         %s\n", detail.Status)
	fmt.Printf("Title:          %s\n", detail.Title)
	fmt.Printf("Published Date: %s\n", detail.PublishedDate)
	fmt.Printf("Notice Type:    %s\n", strings.Join(detail.Types, ", "))
	fmt.Printf("Target:         %s\n", detail.Target)
	fmt.Printf("\n%s\n", detail.Body)
	if len(detail.Attachments) > 0 {
		fmt.Println("\nAttachments:")
		for _, url := range detail.Attachments {
			fmt.Printf("  %s\n", url)
		}
	}
	return nil
}

func runCreate(ctx context.Context, logger *zap.Logger, client *api.Client, clock clockwork.Clock, optionValues *commandLineOptionValues) error {
	f := form.New(logger, client, clock)
	if err := f.LoadReferenceData(ctx); err != nil {
		return err
	}

	f.SetTitle(optionValues.Title)
	f.SetBody(optionValues.Body)
	f.SetPublishedDate(optionValues.Date)
	for _, tag := range optionValues.Types {
		f.ToggleType(tag)
	}

	switch optionValues.Target {
	case "individual":
		f.SetTarget(form.TargetIndividual)
		f.SelectEmployee(optionValues.Employee)
	case "department":
		f.SetTarget(form.TargetDepartment)
		f.SetDepartment(optionValues.Department)
	}

	for _, path := range optionValues.Attach {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		f.AddAttachments(form.FileInput{Name: filepath.Base(path), Content: file})
	}

	status := model.StatusPublished
	if optionValues.Draft {
		status = model.StatusDraft
	}
	if err := f.Submit(ctx, status); err != nil {
		return err
	}

	if optionValues.Draft {
		fmt.Println("Notice saved as draft!")
	} else {
		fmt.Println("Notice published successfully!")
	}
	return nil
}

func runDelete(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: app delete <id>")
	}
	if err := client.DeleteNotice(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Notice deleted")
	return nil
}

func loadEnv() error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{
		path,
	}
	return cfg.Build()
}
