package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formgen-gst/components/gstin"
	"github.com/goliatone/go-formgen-gst/components/gstin/formgenwiring"
	"github.com/goliatone/go-formgen-gst/pkg/bootconfig"
	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/model"
	"github.com/goliatone/go-formgen-gst/pkg/notify"
	"github.com/goliatone/go-formgen-gst/pkg/render"
	"github.com/goliatone/go-formgen-gst/pkg/renderers/tui"
	"github.com/goliatone/go-formgen-gst/pkg/renderers/vanilla"
)

func main() {
	configPath := flag.String("config", "", "boot configuration YAML (embedded defaults if empty)")
	envFile := flag.String("env-file", "", "dotenv file consulted for deployment flags")
	translations := flag.String("translations", "", "translation catalog YAML (locale -> key -> message)")
	locale := flag.String("locale", "", "locale used for messages")
	doctype := flag.String("party-type", "", "print the party type for a doctype")
	party := flag.String("gstin-query", "", "print the GSTIN query for a party")
	partyKind := flag.String("party-kind", "Company", "party type used with -gstin-query")
	apiStatus := flag.Bool("api-status", false, "print API availability for the boot GST settings")
	states := flag.String("states", "", "print state options for a country")
	interactive := flag.Bool("interactive", false, "prompt for country and state")
	renderHTML := flag.Bool("render", false, "render the decorated address form as HTML")
	company := flag.String("company", "", "company prefilled in the form rendered with -render")
	serve := flag.String("serve", "", "serve the GSTIN options endpoint on this address")
	directory := flag.String("directory", "", "GSTIN directory YAML used with -serve")
	basePath := flag.String("base-path", "", "base path for the GSTIN endpoint")
	flag.Parse()

	ctx := context.Background()
	logger := log.New(os.Stderr, "gst-fields: ", log.LstdFlags)

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load boot configuration: %v", err)
	}

	fns := []gst.OptionFn{
		gst.WithLocale(*locale),
		gst.WithNotifier(notify.LogNotifier{Logger: logger}),
	}
	if *translations != "" {
		catalog, err := loadTranslations(*translations)
		if err != nil {
			log.Fatalf("Failed to load translations: %v", err)
		}
		fns = append(fns, gst.WithTranslator(catalog))
	}
	helpers := gst.New(cfg, fns...)

	switch {
	case *serve != "":
		if err := runServer(*serve, *basePath, *directory, logger); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	case *doctype != "":
		fmt.Println(helpers.PartyType(*doctype))
	case isFlagSet("gstin-query"):
		kind, err := gst.ParsePartyType(*partyKind)
		if err != nil {
			log.Fatalf("Invalid -party-kind: %v", err)
		}
		spec, ok := helpers.GSTINQuery(*party, kind)
		if !ok {
			os.Exit(1)
		}
		printJSON(map[string]any{
			"query":    spec,
			"endpoint": gstin.Endpoint(*basePath, spec),
		})
	case *apiStatus:
		printJSON(map[string]bool{
			"can_enable_api": helpers.CanEnableAPI(cfg.GSTSettings),
			"is_api_enabled": helpers.IsAPIEnabled(nil),
		})
	case isFlagSet("states"):
		form := addressForm(*states)
		if err := helpers.SetStateOptions(form); err != nil {
			log.Fatalf("Failed to set state options: %v", err)
		}
		state, _ := form.Lookup(gst.FieldState)
		for _, value := range state.OptionValues() {
			fmt.Println(value)
		}
	case *interactive:
		form := addressForm("")
		err := helpers.SetupTooltips(form, map[string]string{
			gst.FieldState: "State determines the place of supply for GST",
		})
		if err != nil {
			log.Fatalf("Failed to set up tooltips: %v", err)
		}
		if err := tui.FillAddress(ctx, tui.NewSurveyDriver(os.Stdout), helpers, form); err != nil {
			log.Fatalf("Address prompt failed: %v", err)
		}
		printJSON(form)
	case *renderHTML:
		if err := renderForm(ctx, helpers, *basePath, *company); err != nil {
			log.Fatalf("Failed to render form: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func loadConfig(path, envFile string) (bootconfig.Config, error) {
	var (
		cfg bootconfig.Config
		err error
	)
	if strings.TrimSpace(path) == "" {
		cfg, err = bootconfig.Default()
	} else {
		cfg, err = bootconfig.LoadFile(path)
	}
	if err != nil {
		return bootconfig.Config{}, err
	}
	lookup := os.LookupEnv
	if envFile != "" {
		if lookup, err = bootconfig.DotenvLookup(envFile); err != nil {
			return bootconfig.Config{}, err
		}
	}
	if err := bootconfig.ApplyEnv(&cfg, lookup); err != nil {
		return bootconfig.Config{}, err
	}
	return cfg, nil
}

func loadTranslations(path string) (render.MapTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog render.MapTranslator
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

func runServer(addr, basePath, directoryPath string, logger *log.Logger) error {
	var dir gstin.Directory = gstin.NewMemoryDirectory()
	if directoryPath != "" {
		f, err := os.Open(directoryPath)
		if err != nil {
			return err
		}
		loaded, err := gstin.LoadDirectory(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		dir = loaded
	}

	reg := prometheus.NewRegistry()
	mux := http.NewServeMux()
	pattern, err := gstin.New(
		gstin.WithDirectory(dir),
		gstin.WithMetrics(gstin.NewMetrics(reg)),
	).RegisterRoutes(mux, basePath)
	if err != nil {
		return err
	}
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Printf("serving GSTIN options on %s%s", addr, pattern)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderForm decorates the address form the way a browser client would see
// it and writes the markup to stdout.
func renderForm(ctx context.Context, helpers *gst.Helpers, basePath, party string) error {
	form := addressForm(gst.CountryIndia)
	form.Fields = append(form.Fields,
		model.Field{Name: "company", Label: "Company", Type: model.FieldTypeLink, Value: party},
		model.Field{Name: "company_gstin", Label: "Company GSTIN", Type: model.FieldTypeLink},
	)

	err := model.Apply(form,
		formgenwiring.StateOptionsDecorator(helpers),
		formgenwiring.TooltipsDecorator(helpers, map[string]string{
			gst.FieldState:  "State determines the place of supply for GST",
			"company_gstin": "GSTIN registered for the selected company",
		}),
		formgenwiring.GSTINDecorator(helpers, basePath, []formgenwiring.Binding{
			{Field: "company_gstin", PartyField: "company", PartyType: gst.PartyCompany},
		}),
	)
	if err != nil {
		return err
	}

	r, err := vanilla.New()
	if err != nil {
		return err
	}
	out, err := r.Render(ctx, *form)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func addressForm(country string) *model.FormModel {
	return &model.FormModel{
		OperationID: "address",
		Doctype:     "Address",
		Fields: []model.Field{
			{Name: gst.FieldCountry, Label: "Country", Type: model.FieldTypeLink, Value: country},
			{Name: gst.FieldState, Label: "State", Type: model.FieldTypeSelect},
		},
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
