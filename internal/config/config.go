package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
)

// Config holds the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Evaluate EvaluateConfig `yaml:"evaluate" mapstructure:"evaluate"`
	AHP      AHPConfig      `yaml:"ahp" mapstructure:"ahp"`
	Decision DecisionConfig `yaml:"decision" mapstructure:"decision"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Workbook WorkbookConfig `yaml:"workbook" mapstructure:"workbook"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// EvaluateConfig configures batch evaluation.
type EvaluateConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// AHPConfig configures weight derivation.
type AHPConfig struct {
	Method    string  `yaml:"method" mapstructure:"method"`
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// DecisionConfig configures decision matrix normalization.
type DecisionConfig struct {
	Normalization string `yaml:"normalization" mapstructure:"normalization"`
}

// ReportConfig configures rendered output.
type ReportConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"`
	Format string `yaml:"format" mapstructure:"format"`
}

// WorkbookConfig names the sheets read from an xlsx workbook.
type WorkbookConfig struct {
	CriteriaSheet string `yaml:"criteria_sheet" mapstructure:"criteria_sheet"`
	AHPSheet      string `yaml:"ahp_sheet" mapstructure:"ahp_sheet"`
	WeightsSheet  string `yaml:"weights_sheet" mapstructure:"weights_sheet"`
	DatasetSheet  string `yaml:"dataset_sheet" mapstructure:"dataset_sheet"`
}

// Load reads configuration from file and environment. An empty path searches
// the working directory for spk.yaml; a missing file is not an error there.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("spk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("SPK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("evaluate.concurrency", 4)
	v.SetDefault("ahp.method", ahp.GeometricMean.String())
	v.SetDefault("ahp.threshold", ahp.DefaultThreshold)
	v.SetDefault("decision.normalization", decision.Vector.String())
	v.SetDefault("report.locale", "en")
	v.SetDefault("report.format", "table")
	v.SetDefault("workbook.criteria_sheet", "Criteria")
	v.SetDefault("workbook.ahp_sheet", "AHP")
	v.SetDefault("workbook.weights_sheet", "Weights")
	v.SetDefault("workbook.dataset_sheet", "Dataset")

	// Read config file (optional when searched for)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the engines or renderers do not understand.
func (c *Config) Validate() error {
	if _, err := ahp.ParseMethod(c.AHP.Method); err != nil {
		return eris.Wrap(err, "config: ahp.method")
	}
	if t := c.AHP.Threshold; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return eris.Errorf("config: ahp.threshold must be finite and >= 0, got %g", t)
	}
	if _, err := decision.ParsePolicy(c.Decision.Normalization); err != nil {
		return eris.Wrap(err, "config: decision.normalization")
	}
	switch c.Report.Format {
	case "table", "json", "csv":
	default:
		return eris.Errorf("config: report.format must be table, json or csv, got %q", c.Report.Format)
	}
	if c.Evaluate.Concurrency < 1 {
		return eris.Errorf("config: evaluate.concurrency must be >= 1, got %d", c.Evaluate.Concurrency)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return eris.Errorf("config: server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// Method returns the parsed ahp.method.
func (c *Config) Method() ahp.Method {
	m, _ := ahp.ParseMethod(c.AHP.Method)
	return m
}

// Policy returns the parsed decision.normalization.
func (c *Config) Policy() decision.Policy {
	p, _ := decision.ParsePolicy(c.Decision.Normalization)
	return p
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
