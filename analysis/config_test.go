package analysis

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AirHelp/geostat/source/file"
	"github.com/AirHelp/geostat/source/redis"
	"github.com/AirHelp/geostat/source/web"
)

var _ = Describe("Config", func() {
	Describe("NewAnalysisConfigWithDefaults()", func() {
		It("Sets precision and timeout", func() {
			Expect(NewAnalysisConfigWithDefaults()).To(Equal(Config{
				Precision: 3,
				Timeout:   30 * time.Second,
			}))
		})
	})

	Describe("Config.sourceCount()", func() {
		DescribeTable("Counts configured sources",
			func(c Config, expectation int) { Expect(c.sourceCount()).To(Equal(expectation)) },
			Entry("When none configured", Config{}, 0),
			Entry("When one configured", Config{File: &file.Config{}}, 1),
			Entry("When several configured", Config{File: &file.Config{}, Redis: &redis.Config{}, Web: &web.Config{}}, 3),
		)
	})

	Describe("Config.resolvePaths()", func() {
		DescribeTable("Resolves relative data paths",
			func(path, baseDir, expectation string) {
				c := Config{File: &file.Config{Path: path}}
				c.resolvePaths(baseDir)
				Expect(c.File.Path).To(Equal(expectation))
			},
			Entry("When relative", "samples.yaml", "/etc/geostat", "/etc/geostat/samples.yaml"),
			Entry("When absolute", "/data/samples.yaml", "/etc/geostat", "/data/samples.yaml"),
			Entry("When no base dir", "samples.yaml", "", "samples.yaml"),
		)

		It("Ignores configs without file source", func() {
			c := Config{}
			c.resolvePaths("/etc/geostat")
			Expect(c.File).To(BeNil())
		})
	})
})
