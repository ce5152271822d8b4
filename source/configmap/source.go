package configmap

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	corev1 "k8s.io/api/core/v1"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

type Config struct {
	Name string   `yaml:"name"`
	Keys []string `yaml:"keys"`
}

type K8SClient interface {
	GetConfigMap(context.Context, string) (*corev1.ConfigMap, error)
}

// Source treats every data key of a ConfigMap as one sample. Keys come in the
// configured order, or sorted when none are configured.
type Source struct {
	name       string
	keys       []string
	k8sService K8SClient
}

var (
	ErrNoNameSpecified = errors.New("no config map name provided")
	ErrMissingKey      = errors.New("config map has no such key")
)

func New(config *Config, k8sSvc K8SClient) (*Source, error) {
	if config.Name == "" {
		return &Source{}, ErrNoNameSpecified
	}

	return &Source{
		name:       config.Name,
		keys:       config.Keys,
		k8sService: k8sSvc,
	}, nil
}

func (s *Source) Kind() string {
	return "configmap"
}

func (s *Source) Load(ctx context.Context) (*stat.NamedSamples, error) {
	cm, err := s.k8sService.GetConfigMap(ctx, s.name)
	if err != nil {
		return nil, err
	}

	keys := s.keys

	if len(keys) == 0 {
		for key := range cm.Data {
			keys = append(keys, key)
		}

		sort.Strings(keys)
	}

	zap.S().Debugf("reading %d samples from config map %v", len(keys), s.name)

	named := stat.NewNamedSamples()

	for _, key := range keys {
		raw, ok := cm.Data[key]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingKey, key)
		}

		sample, err := helper.ParseFloats(raw)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", key, err)
		}

		named.Add(key, sample)
	}

	return named, nil
}
