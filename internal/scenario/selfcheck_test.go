package scenario

import (
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/concrete-planner/pkg/geometry"
)

var _ = Describe("SelfCheck", func() {
	It("passes with the current wall footprint formula", func() {
		Expect(SelfCheck()).To(Succeed())
	})

	It("reports a mismatch as ErrSelfCheckFailed", func() {
		err := checkWallFootprint(geometry.NewRectangle(4, 4), 1, 13)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, ErrSelfCheckFailed)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("expected 13, got 12"))
	})
})
