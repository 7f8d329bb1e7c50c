package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

var K = koanf.New(".")

// LoadConfig layers configuration sources, lowest precedence first: config
// file (if any), SYSPROBE_* environment variables, then command-line flags.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) {
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			logrus.Fatalf("unsupported config file format: %v", err)
		}
		if err := K.Load(file.Provider(configFile), parser); err != nil {
			logrus.Warnf("error loading config file: %v", err)
		}
	}

	// SYSPROBE_REPORT_SECTIONS becomes report.sections, and so on.
	K.Load(env.Provider("SYSPROBE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "SYSPROBE_")), "_", ".", -1)
	}), nil)

	K.Load(posflag.Provider(flagSet, ".", K), nil)
}

// ReportSections returns the report sections configured under
// "report.sections" (file: a list; env: comma-separated), expanded to
// canonical keys. A nil result means nothing was configured and the caller
// should fall back to its own default.
func ReportSections() report.Config {
	var keys []string
	for _, raw := range K.Strings("report.sections") {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			keys = append(keys, report.Expand(s)...)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return report.Enable(keys...)
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
