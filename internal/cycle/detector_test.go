package cycle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/moonsim/internal/cycle"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
)

// detect runs x0 until every axis has recurred or limit ticks pass.
func detect(x0 dynamo.State, limit int64) *cycle.Detector {
	moons := physics.NewMoons()
	d := cycle.NewDetector(x0)
	x := x0.Clone()
	for step := int64(1); step <= limit && !d.Done(); step++ {
		moons.Step(x)
		d.Observe(x, step)
	}
	return d
}

var _ = Describe("Detector", func() {
	sample := func() dynamo.State {
		return dynamo.State{
			dynamo.NewBody(-1, 0, 2),
			dynamo.NewBody(2, -10, -7),
			dynamo.NewBody(4, -8, 8),
			dynamo.NewBody(3, 5, -1),
		}
	}

	It("starts with every axis searching", func() {
		d := cycle.NewDetector(sample())
		Expect(d.Done()).To(BeFalse())
		for _, a := range dynamo.Axes {
			Expect(d.Record(a)).To(Equal(cycle.Record{}))
		}
		_, err := d.Period()
		Expect(err).To(MatchError(cycle.ErrIncomplete))
	})

	It("keeps its own copy of the snapshot", func() {
		x := sample()
		d := cycle.NewDetector(x)
		x[0].Pos[dynamo.X] = 1000

		Expect(d.Initial()).To(Equal(sample()))
		Expect(d.Observe(sample(), 1)).To(ConsistOf(dynamo.X, dynamo.Y, dynamo.Z))
	})

	It("records each axis exactly once", func() {
		d := cycle.NewDetector(sample())
		Expect(d.Observe(sample(), 3)).To(HaveLen(3))
		Expect(d.Observe(sample(), 9)).To(BeEmpty())
		Expect(d.Periods()).To(Equal([3]int64{3, 3, 3}))
	})

	It("finds the per-axis periods of the sample system", func() {
		d := detect(sample(), 1000)
		Expect(d.Done()).To(BeTrue())
		Expect(d.Periods()).To(Equal([3]int64{18, 28, 44}))

		period, err := d.Period()
		Expect(err).NotTo(HaveOccurred())
		Expect(period).To(Equal(int64(2772)))
	})

	It("finds the period of the canonical system", func() {
		d := detect(dynamo.State{
			dynamo.NewBody(1, -4, 3),
			dynamo.NewBody(-14, 9, -4),
			dynamo.NewBody(-4, -6, 7),
			dynamo.NewBody(6, -9, -11),
		}, 1_000_000)
		Expect(d.Done()).To(BeTrue())
		Expect(d.Periods()).To(Equal([3]int64{161428, 231614, 116328}))

		period, err := d.Period()
		Expect(err).NotTo(HaveOccurred())
		Expect(period).To(Equal(int64(543673227860472)))
	})

	Context("against the full-history search", func() {
		DescribeTable("agrees on small systems",
			func(x0 dynamo.State) {
				rec, err := cycle.NaivePeriod(physics.NewMoons(), x0, 100_000)
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.FirstSeen).To(BeZero(), "first repeat must be the initial state")

				d := detect(x0, 100_000)
				Expect(d.Done()).To(BeTrue())
				period, err := d.Period()
				Expect(err).NotTo(HaveOccurred())
				Expect(period).To(Equal(rec.Period))
			},
			Entry("two bodies on one axis", dynamo.State{
				dynamo.NewBody(0, 0, 0),
				dynamo.NewBody(3, 0, 0),
			}),
			Entry("three bodies on one axis", dynamo.State{
				dynamo.NewBody(-2, 0, 0),
				dynamo.NewBody(5, 0, 0),
				dynamo.NewBody(1, 0, 0),
			}),
			Entry("two bodies on two axes", dynamo.State{
				dynamo.NewBody(0, 4, 0),
				dynamo.NewBody(3, -1, 0),
			}),
			Entry("sample system", sample()),
		)

		It("gives still axes a period of one", func() {
			d := detect(dynamo.State{
				dynamo.NewBody(0, 0, 0),
				dynamo.NewBody(3, 0, 0),
			}, 100_000)
			Expect(d.Record(dynamo.Y)).To(Equal(cycle.Record{Found: true, Step: 1}))
			Expect(d.Record(dynamo.Z)).To(Equal(cycle.Record{Found: true, Step: 1}))
		})
	})

	It("bounds the full-history search", func() {
		_, err := cycle.NaivePeriod(physics.NewMoons(), sample(), 10)
		Expect(err).To(MatchError(dynamo.ErrNoRecurrence))

		_, err = cycle.NaivePeriod(physics.NewMoons(), nil, 10)
		Expect(err).To(MatchError(dynamo.ErrEmptySystem))
	})
})
