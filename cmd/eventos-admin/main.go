// Command eventos-admin is the administrative CLI for academic events:
// role-aware listing, registration and editing with client-side validation,
// deletion with confirmation, and chart-ready reports.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/escolarhq/eventos-admin/internal/adapters/api"
	"github.com/escolarhq/eventos-admin/internal/app"
	"github.com/escolarhq/eventos-admin/internal/config"
	"github.com/escolarhq/eventos-admin/internal/domain/model"
	"github.com/escolarhq/eventos-admin/internal/domain/report"
	"github.com/escolarhq/eventos-admin/pkg/logger"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := api.NewClient(cfg.APIBaseURL,
		api.WithToken(cfg.SessionToken),
		api.WithTimeout(time.Duration(cfg.RequestTimeoutMS)*time.Millisecond),
	)
	session := app.Session{Role: cfg.Role, UserName: cfg.UserName, UserID: cfg.UserID}

	if len(os.Args) < 2 {
		showHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "list":
		err = runList(ctx, client, session, os.Args[2:])
	case "show":
		err = runShow(ctx, client, os.Args[2:])
	case "create":
		err = runCreate(ctx, client, os.Args[2:])
	case "update":
		err = runUpdate(ctx, client, os.Args[2:])
	case "delete":
		err = runDelete(ctx, client, session, os.Args[2:])
	case "responsables":
		err = runResponsables(ctx, client)
	case "report":
		err = runReport(ctx, client)
	case "help", "-help", "--help":
		showHelp()
	default:
		os.Stderr.WriteString("unknown command: " + os.Args[1] + "\n")
		showHelp()
		os.Exit(2)
	}
	if err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// promptConfirm asks the user on stdin before edits and deletes. The -yes
// flag on the relevant subcommands bypasses it.
func promptConfirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "s" || answer == "si" || answer == "sí"
}

func confirmFor(assumeYes bool) app.ConfirmFunc {
	if assumeYes {
		return func(context.Context, string) bool { return true }
	}
	return promptConfirm
}

func runList(ctx context.Context, client *api.Client, session app.Session, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query := fs.String("q", "", "Case-insensitive search over event name and type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing := app.NewListingController(client, session)
	if _, err := listing.Refresh(ctx); err != nil {
		return err
	}
	events := listing.Search(*query)

	fmt.Printf("%-4s  %-30s  %-12s  %-10s  %-13s  %s\n", "ID", "NOMBRE", "TIPO", "FECHA", "HORARIO", "LUGAR")
	for _, e := range events {
		fmt.Printf("%-4d  %-30s  %-12s  %-10s  %5s-%5s  %s\n",
			e.ID, e.Name, e.Type, e.Date, e.StartTime, e.EndTime, e.Venue)
	}
	fmt.Printf("%d evento(s)\n", len(events))
	return nil
}

func runShow(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.Int("id", 0, "Event identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := app.NewFormController(client)
	e, err := form.Load(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(e)
}

func runCreate(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	path := fs.String("f", "", "JSON file with the event record")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := readEvent(*path)
	if err != nil {
		return err
	}

	form := app.NewFormController(client)
	errs, err := form.Create(ctx, e)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		printValidationErrors(errs)
		os.Exit(1)
	}
	fmt.Println("Evento registrado exitosamente")
	return nil
}

func runUpdate(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := fs.String("f", "", "JSON file with the full event record")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := readEvent(*path)
	if err != nil {
		return err
	}

	form := app.NewFormController(client, app.WithFormConfirm(confirmFor(*yes)))
	errs, updated, err := form.Update(ctx, e)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		printValidationErrors(errs)
		os.Exit(1)
	}
	if !updated {
		fmt.Println("Edición cancelada")
		return nil
	}
	fmt.Println("Evento actualizado exitosamente")
	return nil
}

func runDelete(ctx context.Context, client *api.Client, session app.Session, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int("id", 0, "Event identifier")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing := app.NewListingController(client, session, app.WithListingConfirm(confirmFor(*yes)))
	deleted, err := listing.Delete(ctx, *id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Println("Eliminación cancelada")
		return nil
	}
	fmt.Println("Evento eliminado")
	return nil
}

func runResponsables(ctx context.Context, client *api.Client) error {
	form := app.NewFormController(client)
	people, err := form.Responsables(ctx)
	if err != nil {
		return err
	}
	for _, r := range people {
		fmt.Printf("%-4d  %-35s  %s\n", r.ID, r.Name, r.Tipo)
	}
	return nil
}

func runReport(ctx context.Context, client *api.Client) error {
	rc := app.NewReportController(client)

	byType, byMonth, err := rc.EventCharts(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Eventos por tipo:")
	printDataset(byType)
	fmt.Println("Eventos por mes:")
	printDataset(byMonth)

	users, err := rc.UserChart(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Usuarios registrados:")
	printDataset(users)
	return nil
}

func readEvent(path string) (model.Event, error) {
	if path == "" {
		return model.Event{}, fmt.Errorf("missing -f flag with the event JSON file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Event{}, err
	}
	e := model.NewEvent()
	if err := json.Unmarshal(data, &e); err != nil {
		return model.Event{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return e, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printValidationErrors(errs map[string]string) {
	fmt.Fprintln(os.Stderr, "El evento no es válido:")
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
}

func printDataset(d report.Dataset) {
	for i, label := range d.Labels {
		fmt.Printf("  %-40s %d\n", label, d.Data[i])
	}
}

func showHelp() {
	os.Stdout.WriteString(`eventos-admin - academic events administration

Usage:
  eventos-admin <command> [options]

Commands:
  list          List events visible to the configured role (-q to search)
  show          Show one event (-id)
  create        Register an event from a JSON file (-f)
  update        Update an event from a JSON file (-f, -yes to skip prompt)
  delete        Delete an event (-id, -yes to skip prompt); administrators only
  responsables  List responsible-party candidates (teachers and admins)
  report        Print chart datasets (events by type/month, user totals)
  help          Show this help message

Configuration (env, prefix EVENTOS_; optional YAML file via EVENTOS_CONFIG):
  EVENTOS_API_BASE_URL    Base URL of the external API
  EVENTOS_SESSION_TOKEN   Bearer token attached when present
  EVENTOS_ROLE            administrador | maestro | alumno
  EVENTOS_LOG_LEVEL       debug | info | warn | error
`)
}
