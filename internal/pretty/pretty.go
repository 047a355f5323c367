// internal/pretty/pretty.go
package pretty

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"semf/core/binding"
	"semf/internal/output"
)

// Options control the breakdown block.
type Options struct {
	Lang   language.Tag // number formatting locale
	Indent string       // default "  "
	Rule   string       // default "─"
}

// DefaultOptions renders English numbers with a two-space indent.
var DefaultOptions = Options{
	Lang:   language.English,
	Indent: "  ",
	Rule:   "─",
}

func (o Options) indent() string {
	if o.Indent == "" {
		return DefaultOptions.Indent
	}
	return o.Indent
}

func (o Options) lang() language.Tag {
	if o.Lang == language.Und {
		return DefaultOptions.Lang
	}
	return o.Lang
}

func (o Options) rule() string {
	if o.Rule == "" {
		return DefaultOptions.Rule
	}
	return o.Rule
}

// ParityLabel names the pairing class of a nucleus.
func ParityLabel(sign int) string {
	switch sign {
	case 1:
		return "even-even"
	case -1:
		return "odd-odd"
	default:
		return "odd A"
	}
}

// RenderRow returns a multi-line breakdown of one evaluated nuclide,
// terminated by a blank line.
func RenderRow(r output.Row, opt Options) string {
	p := message.NewPrinter(opt.lang())
	in := opt.indent()
	res := r.Result

	var b strings.Builder
	b.WriteString(in)
	b.WriteString(p.Sprintf("%s  (A=%d, Z=%d, N=%d)", r.Nuclide.String(), res.A, res.Z, res.N))
	if r.Preset != "" {
		b.WriteString("  preset ")
		b.WriteString(r.Preset)
	}
	b.WriteByte('\n')

	// Volume adds; every other term is subtracted. An odd-odd pairing term is
	// negative and so adds back.
	res.Terms.Each(func(name string, v float64) {
		sign := "−"
		if name == binding.TermVolume || v < 0 {
			sign = "+"
		}
		b.WriteString(in + in)
		b.WriteString(p.Sprintf("%-10s %s %12.3f MeV", name, sign, math.Abs(v)))
		if name == binding.TermPairing {
			b.WriteString("  (" + ParityLabel(res.PairingSign) + ")")
		}
		b.WriteByte('\n')
	})
	b.WriteString(in + in)
	b.WriteString(strings.Repeat(opt.rule(), 29))
	b.WriteByte('\n')
	b.WriteString(in + in)
	b.WriteString(p.Sprintf("%-10s   %12.3f MeV   B/A %.3f MeV", "B", res.Energy, res.PerNucleon))
	b.WriteByte('\n')
	if r.Sn != nil && r.Sp != nil {
		b.WriteString(in + in)
		b.WriteString(p.Sprintf("S_n %.3f MeV   S_p %.3f MeV", *r.Sn, *r.Sp))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// Renderer binds opt for use as output.TextOptions.Pretty.
func Renderer(opt Options) func(output.Row) string {
	return func(r output.Row) string { return RenderRow(r, opt) }
}
