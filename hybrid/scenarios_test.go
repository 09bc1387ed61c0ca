// SPDX-License-Identifier: MIT

package hybrid_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/config"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/hybrid"
)

var _ = Describe("Optimizer", func() {
	var (
		ctx context.Context
		opt *hybrid.Optimizer
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		opt, err = hybrid.New(config.Default())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with three reciprocal pairs and groups of three", func() {
		It("keeps two of the pairs together", func() {
			sol, err := opt.Run(ctx, bestFriends())
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Partition.Validate(6)).To(Succeed())

			for _, size := range sol.Partition.Sizes() {
				Expect(size).To(BeNumerically(">=", 2))
				Expect(size).To(BeNumerically("<=", 4))
			}

			paired := 0
			for _, pair := range [][2]string{{"A", "B"}, {"C", "D"}, {"E", "F"}} {
				if together(sol, pair[0], pair[1]) {
					paired++
				}
			}
			Expect(paired).To(Equal(2))
			Expect(sol.Score.Satisfaction).To(BeNumerically("~", 1.0/3, 1e-9))
		})
	})

	Context("with uniform affinity", func() {
		It("reaches the same satisfaction whatever the seed", func() {
			ballots := uniform("A", "B", "C", "D", "E", "F")
			var ratios []float64
			for seed := int64(1); seed <= 4; seed++ {
				cfg := config.Default()
				cfg.Seed = seed
				o, err := hybrid.New(cfg)
				Expect(err).NotTo(HaveOccurred())

				sol, err := o.Run(ctx, ballots)
				Expect(err).NotTo(HaveOccurred())
				Expect(sol.Partition.Sizes()).To(ConsistOf(3, 3))
				ratios = append(ratios, sol.Score.Satisfaction)
			}
			for _, r := range ratios {
				Expect(r).To(BeNumerically("~", ratios[0], 1e-9))
			}
			Expect(ratios[0]).To(BeNumerically("~", 0.2, 1e-9))
		})
	})

	Context("with a participant who never voted", func() {
		It("places that participant in exactly one group", func() {
			ballots := []affinity.Ballot{
				vote("Ana", "Bob", 50, "Ghost", 50),
				vote("Bob", "Ana", 100),
				vote("Cleo", "Dan", 60, "Ghost", 40),
				vote("Dan", "Cleo", 100),
				vote("Eve", "Fay", 100),
				vote("Fay", "Eve", 100),
				vote("Ghost"),
			}
			sol, err := opt.Run(ctx, ballots)
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Partition.Validate(7)).To(Succeed())
			Expect(sol.Partition.Spread()).To(BeNumerically("<=", 1))

			seen := 0
			for _, g := range sol.Groups() {
				for _, name := range g {
					if name == "Ghost" {
						seen++
					}
				}
			}
			Expect(seen).To(Equal(1))
			Expect(sol.Affinity.Warnings).To(ContainElement(HaveField("Participant", "Ghost")))
		})
	})

	Context("with a single participant", func() {
		It("returns one singleton group", func() {
			sol, err := opt.Run(ctx, []affinity.Ballot{vote("Solo")})
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Groups()).To(Equal([][]string{{"Solo"}}))
			Expect(sol.Strategy).To(Equal(hybrid.StrategyTrivial))
			Expect(sol.Score.Satisfaction).To(BeZero())
		})
	})

	Context("with no participants", func() {
		It("fails with ErrNoParticipants", func() {
			_, err := opt.Run(ctx, nil)
			Expect(err).To(MatchError(hybrid.ErrNoParticipants))

			cfg := config.Default()
			cfg.Exclusions = []string{"A", "B"}
			o, err := hybrid.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			_, err = o.Run(ctx, []affinity.Ballot{vote("A"), vote("B")})
			Expect(err).To(MatchError(hybrid.ErrNoParticipants))
		})
	})
})
