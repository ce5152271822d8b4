package analysis

import (
	"path/filepath"
	"time"

	"github.com/AirHelp/geostat/source/configmap"
	"github.com/AirHelp/geostat/source/file"
	"github.com/AirHelp/geostat/source/redis"
	"github.com/AirHelp/geostat/source/sqs"
	"github.com/AirHelp/geostat/source/web"
)

const (
	defaultPrecision = 3
	defaultTimeout   = 30 * time.Second
)

type Config struct {
	Precision int           `yaml:"precision"`
	Timeout   time.Duration `yaml:"timeout"`
	Labels    []string      `yaml:"labels"`

	File      *file.Config      `yaml:"file"`
	Redis     *redis.Config     `yaml:"redis"`
	Web       *web.Config       `yaml:"web"`
	Sqs       *sqs.Config       `yaml:"sqs"`
	ConfigMap *configmap.Config `yaml:"configmap"`
}

func NewAnalysisConfigWithDefaults() Config {
	return Config{
		Precision: defaultPrecision,
		Timeout:   defaultTimeout,
	}
}

func (c Config) sourceCount() int {
	count := 0

	for _, configured := range []bool{c.File != nil, c.Redis != nil, c.Web != nil, c.Sqs != nil, c.ConfigMap != nil} {
		if configured {
			count++
		}
	}

	return count
}

// resolvePaths makes a relative data file path relative to baseDir.
func (c *Config) resolvePaths(baseDir string) {
	if c.File == nil || baseDir == "" || c.File.Path == "" || filepath.IsAbs(c.File.Path) {
		return
	}

	c.File.Path = filepath.Join(baseDir, c.File.Path)
}
