package layout_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ptable/internal/layout"
)

func indices(cells []layout.Cell) []int {
	var out []int
	for _, c := range cells {
		if c.IsElement() {
			out = append(out, c.Index)
		}
	}
	return out
}

var _ = Describe("Expand", func() {
	It("lays out a single row of two elements", func() {
		g, err := layout.Expand([]layout.Row{{Front: 1, Back: 1}}, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows).To(HaveLen(1))
		Expect(g.Rows[0]).To(Equal([]layout.Cell{
			{Kind: layout.Element, Index: 0},
			{Kind: layout.Element, Index: 1},
		}))
	})

	It("emits front, series, padding and back in order", func() {
		g, err := layout.Expand([]layout.Row{{Front: 3, Back: 15, Series: 14}}, 32)
		Expect(err).NotTo(HaveOccurred())

		row := g.Rows[0]
		Expect(row).To(HaveLen(32))
		Expect(g.Columns()).To(Equal(18))
		Expect(g.SeriesLength()).To(Equal(14))

		for i := 0; i < 3; i++ {
			Expect(row[i]).To(Equal(layout.Cell{Kind: layout.Element, Index: i}))
		}
		for i := 3; i < 17; i++ {
			Expect(row[i]).To(Equal(layout.Cell{Kind: layout.Element, Index: i, Series: true}))
		}
		for i := 17; i < 32; i++ {
			Expect(row[i]).To(Equal(layout.Cell{Kind: layout.Element, Index: i}))
		}
	})

	It("pads short rows to the widest span", func() {
		rows := []layout.Row{{Front: 1, Back: 1}, {Front: 3, Back: 15, Series: 14}}
		g, err := layout.Expand(rows, layout.Demand(rows))
		Expect(err).NotTo(HaveOccurred())

		first := g.Rows[0]
		Expect(first).To(HaveLen(g.Width()))
		Expect(first[0]).To(Equal(layout.Cell{Kind: layout.Element, Index: 0}))
		for i := 1; i < 15; i++ {
			Expect(first[i]).To(Equal(layout.Cell{Kind: layout.Blank, Series: true}))
		}
		for i := 15; i < 31; i++ {
			Expect(first[i]).To(Equal(layout.Cell{Kind: layout.Blank}))
		}
		Expect(first[31]).To(Equal(layout.Cell{Kind: layout.Element, Index: 1}))
	})

	It("assigns indices strictly in emission order", func() {
		g, err := layout.Expand(layout.Standard, 119)
		Expect(err).NotTo(HaveOccurred())

		got := indices(g.Elements())
		Expect(got).To(HaveLen(118))
		for i, idx := range got {
			Expect(idx).To(Equal(i))
		}
		for _, row := range g.Rows {
			Expect(row).To(HaveLen(g.Width()))
		}
	})

	It("places cerium and thorium at the start of the series block", func() {
		g, err := layout.Expand(layout.Standard, 118)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows[5][2]).To(Equal(layout.Cell{Kind: layout.Element, Index: 56}))
		Expect(g.Rows[5][3]).To(Equal(layout.Cell{Kind: layout.Element, Index: 57, Series: true}))
		Expect(g.Rows[6][3]).To(Equal(layout.Cell{Kind: layout.Element, Index: 89, Series: true}))
		Expect(g.Rows[5][17]).To(Equal(layout.Cell{Kind: layout.Element, Index: 71}))
	})

	It("rejects layouts that overrun the dataset", func() {
		_, err := layout.Expand(layout.Expanded, 119)
		Expect(err).To(MatchError(layout.ErrOverrun))

		var oe *layout.OverrunError
		Expect(errors.As(err, &oe)).To(BeTrue())
		Expect(oe.Row).To(Equal(7))
		Expect(oe.Demanded).To(Equal(120))
		Expect(oe.Available).To(Equal(119))
	})

	It("accepts an empty layout", func() {
		g, err := layout.Expand(nil, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows).To(BeEmpty())
	})
})

var _ = Describe("Grid", func() {
	It("drops series cells from visible rows when hidden", func() {
		g, err := layout.Expand(layout.Standard, 118)
		Expect(err).NotTo(HaveOccurred())

		for r := range g.Rows {
			Expect(g.Visible(r, true)).To(HaveLen(18))
			Expect(g.Visible(r, false)).To(HaveLen(32))
		}
		Expect(indices(g.Visible(5, true))).NotTo(ContainElement(57))
	})
})

var _ = Describe("Presets", func() {
	DescribeTable("demand",
		func(name string, want int) {
			rows, ok := layout.Preset(name)
			Expect(ok).To(BeTrue())
			Expect(layout.Demand(rows)).To(Equal(want))
		},
		Entry("standard", "standard", 118),
		Entry("expanded", "expanded", 120),
	)

	It("returns copies", func() {
		rows, _ := layout.Preset("standard")
		rows[0].Front = 99
		Expect(layout.Standard[0].Front).To(Equal(1))
	})

	It("misses unknown names", func() {
		_, ok := layout.Preset("nope")
		Expect(ok).To(BeFalse())
	})
})
