package redis

import (
	"context"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	ctx := context.Background()

	Describe("New", func() {
		var config Config

		AfterEach(func() {
			config = Config{}
		})

		Context("When hosts list empty", func() {
			It("Returns error", func() {
				config.ListKeys = []string{"depth", "temperature"}

				src, err := New(ctx, &config)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("hosts list cannot be empty")))
			})
		})

		Context("When list keys empty", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}

				src, err := New(ctx, &config)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("list keys cannot be empty")))
			})
		})

		Context("When host is not reachable", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}
				config.ListKeys = []string{"depth"}

				src, err := New(ctx, &config)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("dial tcp"))
			})
		})

		Context("When all good", func() {
			var server *miniredis.Miniredis

			BeforeEach(func() {
				var err error
				server, err = miniredis.Run()

				if err != nil {
					Fail("miniredis failed to start")
				}

				config = Config{
					Hosts:    []string{server.Addr()},
					ListKeys: []string{"depth"},
				}
			})

			AfterEach(func() {
				server.Close()
			})

			It("Properly setup redis source", func() {
				src, err := New(ctx, &config)

				Expect(err).ToNot(HaveOccurred())
				Expect(src.listKeys).To(Equal(config.ListKeys))

				pingRes, err := src.client.Ping(ctx).Result()
				Expect(err).ToNot(HaveOccurred())
				Expect(pingRes).To(Equal("PONG"))

				Expect(src.Close()).To(Succeed())
			})
		})
	})

	Describe("Source receiver", func() {
		var (
			listKeys = []string{"depth", "temperature", "empty"}
			src      Source
			server   *miniredis.Miniredis
		)

		BeforeEach(func() {
			var err error
			server, err = miniredis.Run()

			if err != nil {
				Fail("miniredis failed to start")
			}

			src = Source{
				listKeys: listKeys,
				client: redis.NewRing(&redis.RingOptions{
					Addrs: map[string]string{
						"h1": server.Addr(),
					},
				}),
			}
		})

		AfterEach(func() {
			_ = src.Close()
			server.Close()
			src = Source{}
		})

		Describe("Kind()", func() {
			It("Return redis string", func() {
				Expect(src.Kind()).To(Equal("redis"))
			})
		})

		Describe("Load()", func() {
			It("Returns one sample per list key in configured order", func() {
				for _, keyValue := range [][]string{
					{"temperature", "25.5"},
					{"depth", "1"},
					{"temperature", "24"},
					{"depth", "2"},
					{"depth", "3.5"},
				} {
					if _, err := server.Push(keyValue[0], keyValue[1]); err != nil {
						Fail("can't push entity to Redis")
					}
				}

				named, err := src.Load(ctx)

				Expect(err).ToNot(HaveOccurred())
				Expect(named.Labels()).To(Equal(listKeys))

				depth, _ := named.Get("depth")
				Expect(depth).To(Equal([]float64{1, 2, 3.5}))

				temperature, _ := named.Get("temperature")
				Expect(temperature).To(Equal([]float64{25.5, 24}))

				empty, _ := named.Get("empty")
				Expect(empty).To(BeEmpty())
			})

			It("Returns error when list holds non numeric value", func() {
				if _, err := server.Push("depth", "1", "deep"); err != nil {
					Fail("can't push entity to Redis")
				}

				_, err := src.Load(ctx)

				Expect(err).To(MatchError("depth[1]: value is not a number: deep"))
			})

			It("Returns error when list holds NaN", func() {
				if _, err := server.Push("depth", "1", "NaN", "3"); err != nil {
					Fail("can't push entity to Redis")
				}

				_, err := src.Load(ctx)

				Expect(err).To(MatchError("depth[1]: value is not a number: NaN"))
			})

			It("Returns error when key holds other type", func() {
				if err := server.Set("depth", "1"); err != nil {
					Fail("can't set entity in Redis")
				}

				_, err := src.Load(ctx)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("WRONGTYPE"))
			})
		})
	})
})
