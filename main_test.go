package main

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AirHelp/geostat/config"
	"github.com/AirHelp/geostat/testdata"
)

var _ = Describe("Main", func() {
	Describe("versionString()", func() {
		It("Prefixes embedded version", func() {
			Expect(versionString()).To(HavePrefix("Geostat version: "))
		})
	})

	Describe("analyzerInput()", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.NewWithDefaults()
		})

		It("Returns error without config and data", func() {
			_, err := analyzerInput(cfg)

			Expect(err).To(MatchError("either --config or --data is required"))
		})

		It("Returns error with both config and data", func() {
			cfg.ConfigPath = "analysis.yaml"
			cfg.DataPath = "samples.csv"

			_, err := analyzerInput(cfg)

			Expect(err).To(HaveOccurred())
		})

		It("Reads config file and uses its directory as base", func() {
			cfg.ConfigPath = testdata.FixturePath("analysis-config.yaml")

			input, err := analyzerInput(cfg)

			Expect(err).ToNot(HaveOccurred())
			Expect(input.RawYamlConfig).To(Equal(testdata.LoadFixture("analysis-config.yaml")))
			Expect(input.BaseDir).To(Equal(filepath.Dir(cfg.ConfigPath)))
			Expect(input.Config).To(BeNil())
		})

		It("Builds file source config from data path", func() {
			cfg.DataPath = "samples.csv"
			cfg.Precision = 1

			input, err := analyzerInput(cfg)

			Expect(err).ToNot(HaveOccurred())
			Expect(input.Config).ToNot(BeNil())
			Expect(input.Config.File.Path).To(Equal("samples.csv"))
			Expect(input.Config.Precision).To(Equal(1))
		})
	})

	Describe("run()", func() {
		It("Analyses data file", func() {
			cfg := config.NewWithDefaults()
			cfg.DataPath = testdata.FixturePath("samples.csv")

			Expect(run(cfg)).To(Succeed())
		})
	})
})
