package scenario

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kubev2v/concrete-planner/internal/estimation/calculators"
	"github.com/kubev2v/concrete-planner/pkg/geometry"
	"github.com/kubev2v/concrete-planner/pkg/units"
)

const expectedReferenceVolume = 121990302720000.0

var _ = Describe("Solver", func() {
	var solver *Solver

	BeforeEach(func() {
		solver = NewSolver(zap.NewNop())
	})

	Describe("Solve", func() {
		It("estimates the reference scenario", func() {
			volume, err := solver.Solve(DefaultConfig())
			Expect(err).To(BeNil())
			Expect(volume).To(Equal(expectedReferenceVolume))
			Expect(int64(volume)).To(Equal(int64(121990302720000)))
		})

		It("returns the recovered excavation volume", func() {
			cfg := Config{
				ExcavationLength: units.MilesToFeet(5525),
				ExcavationWidth:  units.MilesToFeet(1),
				ExcavationDepth:  units.MilesToFeet(0.5),
			}
			excavation := geometry.NewPrism(cfg.ExcavationLength, cfg.ExcavationWidth, cfg.ExcavationDepth)

			volume, err := solver.Solve(cfg)
			Expect(err).To(BeNil())
			Expect(volume).To(Equal(excavation.Volume() * 0.3))
		})

		DescribeTable("ignores the structure parameters",
			func(cfg Config) {
				cfg.ExcavationLength = units.MilesToFeet(5525)
				cfg.ExcavationWidth = units.MilesToFeet(1)
				cfg.ExcavationDepth = units.MilesToFeet(0.5)

				volume, err := solver.Solve(cfg)
				Expect(err).To(BeNil())
				Expect(volume).To(Equal(expectedReferenceVolume))
			},
			Entry("all zero", Config{}),
			Entry("tiny structure", Config{StructureLength: 1, StructureWidth: 2, StructureHeight: 3, WallThickness: 0.1}),
			Entry("negative structure", Config{StructureLength: -100, StructureWidth: -5, StructureHeight: -7, WallThickness: -1}),
			Entry("degenerate walls", Config{StructureLength: 10, StructureWidth: 10, StructureHeight: 10, WallThickness: 1000}),
			Entry("different recovery rate", Config{MaterialRecoveryRate: 0.9}),
		)

		It("returns zero without an excavation", func() {
			volume, err := solver.Solve(Config{})
			Expect(err).To(BeNil())
			Expect(volume).To(BeZero())
		})

		It("lets negative excavation dimensions propagate", func() {
			volume, err := solver.Solve(Config{ExcavationLength: -10, ExcavationWidth: 10, ExcavationDepth: 10})
			Expect(err).To(BeNil())
			Expect(volume).To(Equal(-1000 * 0.3))
		})

		It("does not mutate the caller's config", func() {
			cfg := Config{StructureLength: 1, WallThickness: 2, ExcavationDepth: 3}
			_, err := solver.Solve(cfg)
			Expect(err).To(BeNil())
			Expect(cfg).To(Equal(Config{StructureLength: 1, WallThickness: 2, ExcavationDepth: 3}))
		})

		It("computes the wall volume from the fixed assumptions and logs it", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			solver = NewSolver(zap.New(core))

			_, err := solver.Solve(Config{StructureLength: 4, StructureWidth: 4, StructureHeight: 1, WallThickness: 1})
			Expect(err).To(BeNil())

			entries := logs.FilterMessage("wall volume computed").All()
			Expect(entries).To(HaveLen(1))
			side := units.Convert(AssumedStructureSideMiles, units.FeetPerMile)
			expected := calculators.WallVolume(side, side, AssumedStructureHeight, AssumedWallThickness)
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("cubic_feet", expected))
		})
	})

	Describe("NewSolver", func() {
		It("registers the wall and excavation calculators in order", func() {
			Expect(solver.engine.Calculators()).To(Equal([]string{"Wall Volume", "Excavation Recovery"}))
		})

		It("accepts a nil logger", func() {
			Expect(func() { NewSolver(nil) }).NotTo(Panic())
		})
	})
})

var _ = Describe("DefaultConfig", func() {
	It("describes the reference scenario in feet", func() {
		cfg := DefaultConfig()
		Expect(cfg.StructureLength).To(Equal(10179840.0))
		Expect(cfg.StructureWidth).To(Equal(10179840.0))
		Expect(cfg.StructureHeight).To(Equal(700.0))
		Expect(cfg.WallThickness).To(Equal(300.0))
		Expect(cfg.MaterialRecoveryRate).To(Equal(0.3))
		Expect(cfg.ExcavationLength).To(Equal(29172000.0))
		Expect(cfg.ExcavationWidth).To(Equal(5280.0))
		Expect(cfg.ExcavationDepth).To(Equal(2640.0))
	})
})
