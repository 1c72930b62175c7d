package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/goliatone/go-signupform/internal/config"
	"github.com/goliatone/go-signupform/internal/contract"
	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/client"
	"github.com/goliatone/go-signupform/pkg/i18n"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/signup"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	baseURL := flag.String("base-url", "", "account API base URL (overrides config and "+config.EnvBaseURL+")")
	locale := flag.String("locale", "", "message locale, e.g. pt-BR or en")
	appName := flag.String("app", "", "application name shown after sign-up")
	catalogDir := flag.String("catalog", "", "directory with extra YAML message catalogs")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFormat := flag.String("log-format", "", "text or json")
	name := flag.String("name", "", "prefill the name field")
	email := flag.String("email", "", "prefill the e-mail field")
	checkAnswers := flag.Bool("check-answers", false, "validate each answer as it is typed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	override(&cfg.BaseURL, *baseURL)
	override(&cfg.Locale, *locale)
	override(&cfg.AppName, *appName)
	override(&cfg.CatalogDir, *catalogDir)
	override(&cfg.Log.Level, *logLevel)
	override(&cfg.Log.Format, *logFormat)

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	catalog := i18n.DefaultCatalog()
	if cfg.CatalogDir != "" {
		extra, err := i18n.LoadFS(os.DirFS(cfg.CatalogDir), cfg.Locale)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		catalog.Merge(extra)
	}

	clientOpts := []client.Option{
		client.WithLogger(logger),
		client.WithOperationID(cfg.OperationID),
	}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	if cfg.Contract != "" {
		loader := contract.NewLoader(&http.Client{}, cfg.Timeout)
		document, err := loader.Load(ctx, cfg.Contract)
		if err != nil {
			log.Fatalf("Failed to read contract: %v", err)
		}
		clientOpts = append(clientOpts, client.WithContract(document))
	}
	accounts, err := client.New(ctx, cfg.BaseURL, clientOpts...)
	if err != nil {
		log.Fatalf("Failed to create account client: %v", err)
	}

	prefill := map[string]string{}
	if *name != "" {
		prefill[signup.FieldName] = *name
	}
	if *email != "" {
		prefill[signup.FieldEmail] = *email
	}
	session, err := tui.New(signup.Form(),
		tui.WithTranslator(catalog),
		tui.WithLocale(cfg.Locale),
		tui.WithLogger(logger),
		tui.WithPrefill(prefill),
		tui.WithPromptValidation(*checkAnswers),
	)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	submitter, err := signup.NewSubmitter(accounts,
		signup.WithNotifier(session),
		signup.WithNavigator(session),
		signup.WithErrorSink(session),
		signup.WithTranslator(catalog),
		signup.WithLocale(cfg.Locale),
		signup.WithAppName(cfg.AppName),
		signup.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create submitter: %v", err)
	}

	if err := session.Run(ctx, submitter); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "sign-up: %v\n", err)
		os.Exit(1)
	}
}

func override(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}
