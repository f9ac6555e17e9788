package translate_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gccasm/lexer"
	"github.com/sarchlab/gccasm/token"
	"github.com/sarchlab/gccasm/translate"
)

func tokenize(src string) []token.Token {
	tokens, err := lexer.Tokenize("test.s", src)
	Expect(err).NotTo(HaveOccurred())
	return tokens
}

type pair struct {
	Constraint string
	Expr       string
}

func pairs(operands []translate.Operand) []pair {
	out := make([]pair, 0, len(operands))
	for _, o := range operands {
		out = append(out, pair{o.Constraint, o.ExprString()})
	}
	return out
}

var _ = Describe("Translator", func() {
	var t *translate.Translator

	run := func(src string) *translate.Block {
		b, err := t.Translate(tokenize(src))
		Expect(err).NotTo(HaveOccurred())
		return b
	}

	BeforeEach(func() {
		t = translate.NewBuilder().Build()
	})

	Context("Scenarios", func() {
		It("should translate positional placeholders", func() {
			b := run(`"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)`)

			Expect(b.Template).To(Equal("add $0, $1, $2"))
			Expect(pairs(b.Outputs)).To(Equal([]pair{{"=r", "c"}}))
			Expect(pairs(b.Inputs)).To(Equal([]pair{{"r", "a"}, {"r", "b"}}))
			Expect(b.Clobbers).To(BeEmpty())
			Expect(b.Volatile).To(BeFalse())
		})

		It("should mark a block without outputs volatile", func() {
			b := run(`"nop"`)

			Expect(b.Template).To(Equal("nop"))
			Expect(b.Outputs).To(BeEmpty())
			Expect(b.Inputs).To(BeEmpty())
			Expect(b.Volatile).To(BeTrue())
			Expect(b.Options()).To(Equal([]string{"volatile"}))
		})

		It("should concatenate adjacent template literals", func() {
			joined := run(`"add %0, " "%1, %2" : "=r"(c) : "r"(a), "r"(b)`)
			single := run(`"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)`)

			Expect(joined.Template).To(Equal(single.Template))
		})

		It("should reject clobbers", func() {
			_, err := t.Translate(tokenize(`"nop" : : : "memory"`))
			Expect(err).To(MatchError(translate.ErrUnsupportedClobbers))
		})

		It("should resolve symbolic names", func() {
			b := run(`"add %[c], %[a], %[b]" : [c]"=r"(c) : [a]"r"(a), [b]"r"(b)`)

			Expect(b.Template).To(Equal("add $0, $1, $2"))
			Expect(pairs(b.Outputs)).To(Equal([]pair{{"=r", "c"}}))
			Expect(pairs(b.Inputs)).To(Equal([]pair{{"r", "a"}, {"r", "b"}}))
			Expect(b.Volatile).To(BeFalse())
		})
	})

	Context("Tied operands", func() {
		It("should split a read-write output", func() {
			b := run(`"add %0, %0, %1" : "+r"(x) : "r"(y)`)

			Expect(b.Template).To(Equal("add $0, $0, $1"))
			Expect(pairs(b.Outputs)).To(Equal([]pair{{"=r", "x"}}))
			Expect(pairs(b.Inputs)).To(Equal([]pair{{"r", "y"}, {"0", "x"}}))
			Expect(b.Inputs[1].Synthetic).To(BeTrue())
			Expect(b.Inputs[0].Synthetic).To(BeFalse())
		})

		It("should use the output position and keep declaration order", func() {
			b := run(`"" : "=r"(a), "+r"(b), "+m"(*p) : "r"(d)`)

			Expect(pairs(b.Outputs)).To(Equal([]pair{{"=r", "a"}, {"=r", "b"}, {"=m", "*p"}}))
			Expect(pairs(b.Inputs)).To(Equal([]pair{{"r", "d"}, {"1", "b"}, {"2", "*p"}}))
		})

		It("should only rewrite the leading plus", func() {
			b := run(`"" : "+r+"(a)`)
			Expect(b.Outputs[0].Constraint).To(Equal("=r+"))
		})

		It("should keep symbolic indices of explicit operands", func() {
			b := run(`"mov %[x], %[y]" : [x]"+r"(x) : [y]"r"(y)`)

			Expect(b.Template).To(Equal("mov $0, $1"))
			Expect(pairs(b.Inputs)).To(Equal([]pair{{"r", "y"}, {"0", "x"}}))
		})

		It("should accept placeholders for tied inputs", func() {
			b := run(`"%2" : "+r"(x) : "r"(y)`)
			Expect(b.Template).To(Equal("$2"))
		})
	})

	Context("Escapes", func() {
		It("should turn an escaped percent into a bare percent", func() {
			b := run(`"movl %%eax, %0" : "=r"(c)`)
			Expect(b.Template).To(Equal("movl %eax, $0"))
		})

		It("should escape literal dollars", func() {
			b := run(`"mov $1, %0" : "=r"(c)`)
			Expect(b.Template).To(Equal("mov $$1, $0"))
		})

		It("should rewrite unique ids", func() {
			b := run(`"b unique_label%=\nnop\nunique_label%=:"`)
			Expect(b.Template).To(Equal("b unique_label${:uid}\nnop\nunique_label${:uid}:"))
		})

		It("should use a configured unique id placeholder", func() {
			t = translate.NewBuilder().WithUIDPlaceholder("{uid}").Build()
			b := run(`"1%=:"`)
			Expect(b.Template).To(Equal("1{uid}:"))
		})

		It("should rewrite operand modifiers", func() {
			b := run(`"mov %w0, %x[b]" : "=r"(a) : [b]"r"(b)`)
			Expect(b.Template).To(Equal("mov ${0:w}, ${1:x}"))
		})

		It("should promote other percent signs", func() {
			b := run(`"%eax %"`)
			Expect(b.Template).To(Equal("$eax $"))
		})
	})

	Context("Target construct", func() {
		It("should render the target tokens", func() {
			b := run(`"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)`)
			Expect(token.Format(b.Tokens())).
				To(Equal(`"add $0, $1, $2" : "=r"(c) : "r"(a), "r"(b) : :`))
		})

		It("should render the volatile option", func() {
			b := run(`"nop"`)
			Expect(token.Format(b.Tokens())).To(Equal(`"nop" : : : : "volatile"`))
		})
	})

	It("should be deterministic", func() {
		src := `"add %[c], %[a], %0 $ %%" : [c]"+r"(c) : [a]"r"(a)`
		first := run(src)
		second := run(src)

		Expect(second).To(Equal(first))
		Expect(token.Format(second.Tokens())).To(Equal(token.Format(first.Tokens())))
	})

	It("should strip an invocation wrapper from source", func() {
		b, err := t.TranslateSource("x.rs", `gcc_asm!("add %0, %1" : "=r"(c) : "r"(a));`)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Template).To(Equal("add $0, $1"))
	})

	It("should report lexer errors from source", func() {
		_, err := t.TranslateSource("x.rs", `"add" : "=r"(c`)
		var lexErr *lexer.Error
		Expect(err).To(BeAssignableToTypeOf(lexErr))
	})

	It("should trace every pass", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: translate.LevelTrace}))
		t = translate.NewBuilder().WithLogger(logger).Build()

		run(`"nop"`)

		Expect(buf.String()).To(ContainSubstring("msg=split"))
		Expect(buf.String()).To(ContainSubstring("msg=rewrite"))
	})

	DescribeTable("errors",
		func(src string, kind error, name string) {
			_, err := t.Translate(tokenize(src))
			Expect(err).To(MatchError(kind))

			var syntaxErr *translate.SyntaxError
			Expect(err).To(BeAssignableToTypeOf(syntaxErr))
			Expect(err.(*translate.SyntaxError).KindName()).To(Equal(name))
		},
		Entry("empty construct", ``, translate.ErrMissingTemplate, "MissingTemplate"),
		Entry("empty template section", `: "=r"(c)`, translate.ErrMissingTemplate, "MissingTemplate"),
		Entry("fifth section", `"a" : : : : "x"`, translate.ErrTrailingTokens, "TrailingTokens"),
		Entry("clobbers", `"a" : : : "memory"`, translate.ErrUnsupportedClobbers, "UnsupportedClobbers"),
		Entry("trailing comma", `"a" : "=r"(c),`, translate.ErrEmptyOperand, "EmptyOperand"),
		Entry("leading comma", `"a" : , "=r"(c)`, translate.ErrEmptyOperand, "EmptyOperand"),
		Entry("empty name", `"a" : [] "=r"(c)`, translate.ErrBadSymbolicName, "BadSymbolicName"),
		Entry("two names", `"a" : [x y] "=r"(c)`, translate.ErrBadSymbolicName, "BadSymbolicName"),
		Entry("string name", `"a" : ["x"] "=r"(c)`, translate.ErrBadSymbolicName, "BadSymbolicName"),
		Entry("undeclared name", `"%[z]" : [x]"=r"(c)`, translate.ErrBadSymbolicReference, "BadSymbolicReference"),
		Entry("unterminated name", `"%[x" : [x]"=r"(c)`, translate.ErrBadSymbolicReference, "BadSymbolicReference"),
		Entry("identifier in template", `"a" b`, translate.ErrNonLiteralTemplate, "NonLiteralTemplate"),
		Entry("group in template", `"a" (b)`, translate.ErrNonLiteralTemplate, "NonLiteralTemplate"),
		Entry("bare expression", `"a" : "=r" c`, translate.ErrBadOperand, "BadOperand"),
		Entry("missing constraint", `"a" : r(c)`, translate.ErrBadOperand, "BadOperand"),
		Entry("name only", `"a" : [x]`, translate.ErrBadOperand, "BadOperand"),
		Entry("paren first", `"a" : (c)`, translate.ErrBadOperand, "BadOperand"),
		Entry("empty expression", `"a" : "=r"()`, translate.ErrBadOperand, "BadOperand"),
		Entry("duplicate name", `"a" : [x]"=r"(c) : [x]"r"(d)`, translate.ErrDuplicateSymbolicName, "DuplicateSymbolicName"),
		Entry("operand number", `"%3" : "=r"(c)`, translate.ErrBadOperandNumber, "BadOperandNumber"),
	)

	It("should point at the offending comma", func() {
		_, err := t.Translate(tokenize(`"a" : "=r"(c),`))
		syntaxErr := err.(*translate.SyntaxError)

		Expect(syntaxErr.Pos.Line).To(Equal(1))
		Expect(syntaxErr.Pos.Column).To(Equal(14))
		Expect(syntaxErr.Error()).To(HavePrefix("test.s:1:14: empty operand"))
	})

	It("should point at the template literal holding a bad reference", func() {
		_, err := t.Translate(tokenize(`"mov %0, " "%[nope]" : "=r"(c)`))
		syntaxErr := err.(*translate.SyntaxError)

		Expect(syntaxErr.Pos.Column).To(Equal(12))
	})

	Context("Replace rewriter", func() {
		BeforeEach(func() {
			t = translate.NewBuilder().WithRewriter(translate.RewriteReplace).Build()
		})

		DescribeTable("agrees with the scan rewriter",
			func(src string) {
				scanned, err := translate.Translate(tokenize(src))
				Expect(err).NotTo(HaveOccurred())

				replaced := run(src)
				Expect(replaced.Template).To(Equal(scanned.Template))
			},
			Entry("positional", `"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)`),
			Entry("symbolic", `"add %[c], %[a], %[b]" : [c]"=r"(c) : [a]"r"(a), [b]"r"(b)`),
			Entry("escapes", `"movl %%eax, %0; mov $1, $$2" : "=r"(c)`),
			Entry("unique id", `"1%=: b 1%="`),
			Entry("percent runs", `"%%%0 %%%% %%=" : "=r"(c)`),
			Entry("dollar before placeholder", `"$%0" : "=r"(c)`),
			Entry("register names", `"%eax"`),
		)

		It("should reject undeclared names", func() {
			_, err := t.Translate(tokenize(`"%[z]" : [x]"=r"(c)`))
			Expect(err).To(MatchError(translate.ErrBadSymbolicReference))
			Expect(err.Error()).To(ContainSubstring("%[z]"))
		})

		It("should reject the sentinel character", func() {
			_, err := t.Translate(tokenize("\"a\u0080\""))
			Expect(err).To(MatchError(translate.ErrSentinelInTemplate))
		})
	})
})

var _ = Describe("ParseRewriter", func() {
	DescribeTable("names",
		func(name string, want translate.Rewriter) {
			r, err := translate.ParseRewriter(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(Equal(want))
			Expect(r.String()).To(Equal(want.String()))
		},
		Entry("default", "", translate.RewriteScan),
		Entry("scan", "scan", translate.RewriteScan),
		Entry("replace", "Replace", translate.RewriteReplace),
	)

	It("should reject unknown names", func() {
		_, err := translate.ParseRewriter("regex")
		Expect(err).To(HaveOccurred())
	})
})
