// Command validate runs the pre-flight checks over an optimization request
// stored as JSON or YAML and prints the findings the way the API formats them.
//
//	validate -input route.yaml
//	validate -input - -format json -radius 30 < route.json
//
// Exit status is 0 when the request is valid, 1 when it has errors and 2 when
// it cannot be read.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/collection-routing/internal/config"
	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/pkg/logger"
	"github.com/collection-routing/internal/validation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "request file, or - for stdin")
	format := fs.String("format", "", "json or yaml (default: from file extension)")
	radius := fs.Float64("radius", 0, "max distance in km from the start point (default: MAX_RADIUS_KM)")
	noDefaults := fs.Bool("no-defaults", false, "do not fill blank time windows and service times")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *input == "" {
		fmt.Fprintln(stderr, "validate: -input is required")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "validate: load config: %v\n", err)
		return 2
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "validate: init logger: %v\n", err)
		return 2
	}
	defer log.Sync()

	req, err := loadRequest(*input, *format, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "validate: %v\n", err)
		return 2
	}
	if !*noDefaults {
		applyDefaults(&req, cfg.Validation)
	}

	maxRadius := cfg.Validation.MaxRadiusKm
	if *radius > 0 {
		maxRadius = *radius
	}
	res := validation.New(maxRadius).Validate(req)

	log.Debug("Request validated",
		zap.String("input", *input),
		zap.Int("points", len(req.Points)),
		zap.Int("vehicles", len(req.Vehicles)),
		zap.Bool("is_valid", res.IsValid))

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "validate: %v\n", err)
			return 2
		}
	} else {
		printReport(stdout, res)
	}

	if !res.IsValid {
		return 1
	}
	return 0
}

func printReport(w io.Writer, res domain.ValidationResult) {
	if res.IsValid {
		fmt.Fprintln(w, "Solicitação válida.")
	}
	if out := validation.FormatIssues(res.ErrorIssues, false); out != "" {
		fmt.Fprintln(w, out)
	}
	if out := validation.FormatIssues(res.WarningIssues, true); out != "" {
		if !res.IsValid {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, out)
	}
}

// loadRequest decodes path ("-" for r) as JSON or YAML.
func loadRequest(path, format string, r io.Reader) (domain.OptimizationRequest, error) {
	var req domain.OptimizationRequest

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read %s: %w", path, err)
	}

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &req)
	case "json", "":
		err = json.Unmarshal(data, &req)
	default:
		return req, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return req, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}

func applyDefaults(req *domain.OptimizationRequest, cfg config.ValidationConfig) {
	for i := range req.Points {
		p := &req.Points[i]
		if p.TimeWindowStart == "" {
			p.TimeWindowStart = cfg.DefaultTimeWindowStart
		}
		if p.TimeWindowEnd == "" {
			p.TimeWindowEnd = cfg.DefaultTimeWindowEnd
		}
		if p.ServiceTime == 0 {
			p.ServiceTime = cfg.DefaultServiceTime
		}
	}
}
