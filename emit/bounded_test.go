package emit_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/instyaml/core"
	"github.com/sarchlab/instyaml/emit"
	"github.com/sarchlab/instyaml/isa"
)

var _ = Describe("RenderBounded", func() {
	It("should fit lw in the reference buffers", func() {
		out, err := emit.RenderBounded(isa.LW(), emit.ReferenceLimits)

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(emit.Render(isa.LW())))
	})

	It("should behave like Render without limits", func() {
		out, err := emit.RenderBounded(isa.LW(), emit.Limits{})

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(emit.Render(isa.LW())))
	})

	It("should report output truncation", func() {
		full := emit.Render(isa.LW())

		out, err := emit.RenderBounded(isa.LW(), emit.Limits{Output: 100})

		Expect(errors.Is(err, emit.ErrTruncated)).To(BeTrue())
		var te *emit.TruncatedError
		Expect(errors.As(err, &te)).To(BeTrue())
		Expect(te.Key).To(Equal("description"))
		Expect(te.Capacity).To(Equal(100))
		Expect(te.Needed).To(Equal(len(full)))
		Expect(te.Staging).To(BeFalse())

		Expect(len(out)).To(BeNumerically("<=", 100))
		Expect(full).To(HavePrefix(out))
		Expect(out).To(HaveSuffix("description: |\n"))
	})

	It("should report staging truncation", func() {
		rec := core.NewBuilder().
			WithName("big").
			WithDescription(strings.Repeat("word ", 300) + "\n").
			Build()

		out, err := emit.RenderBounded(rec, emit.ReferenceLimits)

		var te *emit.TruncatedError
		Expect(errors.As(err, &te)).To(BeTrue())
		Expect(te.Staging).To(BeTrue())
		Expect(te.Key).To(Equal("description"))
		Expect(te.Capacity).To(Equal(emit.ReferenceLimits.Staging))
		Expect(out).To(HaveSuffix("long_name: \n"))
		Expect(err.Error()).To(ContainSubstring("staging"))
	})

	It("should accept a block that only loses its terminal newline", func() {
		value := strings.Repeat("a", emit.ReferenceLimits.Staging) + "\n"
		rec := core.NewBuilder().WithName("edge").WithSail(value).Build()

		_, err := emit.RenderBounded(rec, emit.ReferenceLimits)

		Expect(err).NotTo(HaveOccurred())
	})

	Describe("with a layout", func() {
		layout := core.Layout{
			{Key: "name", Kind: core.Scalar, Value: func(r core.Record) string { return r.Name }},
			{Key: "sail()", Kind: core.Block, Value: func(r core.Record) string { return r.Sail }},
		}
		rec := core.NewBuilder().WithName("add").WithSail("one\ntwo\n").Build()

		It("should follow the layout", func() {
			out, err := emit.RenderBoundedLayout(rec, layout, emit.Limits{})

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(emit.RenderLayout(rec, layout)))
		})

		It("should stop at the first line that does not fit", func() {
			out, err := emit.RenderBoundedLayout(rec, layout, emit.Limits{Output: 25})

			var te *emit.TruncatedError
			Expect(errors.As(err, &te)).To(BeTrue())
			Expect(te.Key).To(Equal("sail()"))
			Expect(te.Needed).To(Equal(len("name: add\nsail(): |\n  one\n  two\n")))
			Expect(out).To(Equal("name: add\nsail(): |\n"))
		})

		It("should check staging with the layout's block fields", func() {
			big := core.NewBuilder().WithName("big").WithSail(strings.Repeat("x", 40)).Build()

			out, err := emit.RenderBoundedLayout(big, layout, emit.Limits{Staging: 10})

			var te *emit.TruncatedError
			Expect(errors.As(err, &te)).To(BeTrue())
			Expect(te.Staging).To(BeTrue())
			Expect(te.Key).To(Equal("sail()"))
			Expect(out).To(Equal("name: big\n"))
		})
	})
})
