package source

import (
	"context"

	"github.com/AirHelp/geostat/stat"
)

//go:generate mockgen -destination=mock/source_mock.go -package sourceMock github.com/AirHelp/geostat/source Source
type Source interface {
	Kind() string
	Load(context.Context) (*stat.NamedSamples, error)
}
