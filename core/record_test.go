package core_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/instyaml/core"
)

var _ = Describe("Builder", func() {
	It("should preset the schema header", func() {
		rec := core.NewBuilder().Build()

		Expect(rec.Schema).To(Equal("inst_schema.json#"))
		Expect(rec.Kind).To(Equal("instruction"))
		Expect(rec.Name).To(BeEmpty())
	})

	It("should not share state between copies", func() {
		base := core.NewBuilder().WithName("add")
		sub := base.WithName("sub")

		Expect(base.Build().Name).To(Equal("add"))
		Expect(sub.Build().Name).To(Equal("sub"))
	})

	It("should set every field", func() {
		rec := core.NewBuilder().
			WithSchema("s").
			WithKind("k").
			WithName("n").
			WithLongName("ln").
			WithDescription("d").
			WithDefinedBy("db").
			WithAssembly("a").
			WithEncoding("e").
			WithAccess("ac").
			WithOperation("o").
			WithSail("sl").
			Build()

		Expect(rec).To(Equal(core.Record{
			Schema: "s", Kind: "k", Name: "n", LongName: "ln",
			Description: "d", DefinedBy: "db", Assembly: "a",
			Encoding: "e", Access: "ac", Operation: "o", Sail: "sl",
		}))
	})
})

var _ = Describe("Layout", func() {
	It("should list the instruction keys in order", func() {
		Expect(core.DefaultLayout().Keys()).To(Equal([]string{
			"$schema", "kind", "name", "long_name", "description",
			"definedBy", "assembly", "encoding", "access",
			"operation()", "sail()",
		}))
	})

	It("should mark the multi-line fields as blocks", func() {
		var blocks []string
		for _, f := range core.DefaultLayout() {
			if f.Kind == core.Block {
				blocks = append(blocks, f.Key)
			}
		}

		Expect(blocks).To(Equal([]string{"description", "operation()", "sail()"}))
	})

	It("should return a fresh layout every time", func() {
		l := core.DefaultLayout()
		l[0].Key = "changed"

		Expect(core.DefaultLayout()[0].Key).To(Equal("$schema"))
	})

	It("should name field kinds", func() {
		Expect(core.Scalar.String()).To(Equal("scalar"))
		Expect(core.Block.String()).To(Equal("block"))
		Expect(core.FieldKind(7).String()).To(Equal("FieldKind(7)"))
	})
})

var _ = Describe("Record", func() {
	It("should get values by key", func() {
		rec := core.NewBuilder().WithName("lw").WithSail("x\n").Build()

		v, ok := rec.Get("name")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("lw"))

		v, ok = rec.Get("sail()")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("x\n"))

		_, ok = rec.Get("missing")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("SplitLines", func() {
	DescribeTable("splitting",
		func(value string, lines []string) {
			Expect(core.SplitLines(value)).To(Equal(lines))
		},
		Entry("empty", "", nil),
		Entry("single line", "a", []string{"a"}),
		Entry("terminal newline dropped", "a\nb\n", []string{"a", "b"}),
		Entry("interior empty line kept", "a\n\nb", []string{"a", "", "b"}),
		Entry("only one terminal newline dropped", "a\n\n", []string{"a", ""}),
		Entry("lone newline", "\n", []string{""}),
		Entry("carriage return kept", "a\r\nb", []string{"a\r", "b"}),
	)
})

var _ = Describe("RecordTable", func() {
	It("should list every field", func() {
		rec := core.NewBuilder().
			WithName("lw").
			WithDescription("one\ntwo\n").
			Build()

		out := core.RecordTable(rec, core.DefaultLayout())

		Expect(strings.ToLower(out)).To(ContainSubstring("instruction lw"))
		for _, key := range core.DefaultLayout().Keys() {
			Expect(out).To(ContainSubstring(key))
		}
		Expect(out).To(ContainSubstring("block"))
		Expect(strings.ToLower(out)).To(ContainSubstring("total"))
	})
})
