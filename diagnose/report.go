// Package diagnose renders refinement errors for humans: a single-line
// plain message by default, or a styled multi-line terminal report with the
// violation tree and, when the context carries positional information, a
// source-span annotation.
package diagnose

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	refinement "github.com/nekitdev/refinement-types"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	expectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// Plain renders the error as its default single-line message.
func Plain(err *refinement.Error) string {
	return err.Error()
}

// Report renders a multi-line styled report: a header with the context
// label, the failed requirement (with the full violation tree for composite
// failures), the rejected value, and a span-annotated source excerpt when
// the context carries one.
func Report(err *refinement.Error) string {
	var b strings.Builder

	header := headerStyle.Render("refinement failed")
	if label := err.Context.Label; label != "" {
		header += " " + labelStyle.Render("["+label+"]")
	}
	b.WriteString(header)
	b.WriteByte('\n')

	b.WriteString(sectionStyle.Render("  expected: "))
	b.WriteString(expectedStyle.Render(err.Violation.Expected))
	b.WriteByte('\n')

	if !err.Violation.Leaf() {
		for _, line := range strings.Split(Tree(err.Violation), "\n")[1:] {
			b.WriteString("  ")
			b.WriteString(branchStyle.Render(line))
			b.WriteByte('\n')
		}
	}

	b.WriteString(sectionStyle.Render("       got: "))
	b.WriteString(valueStyle.Render(err.Value))

	if span := renderSpan(err.Context); span != "" {
		b.WriteByte('\n')
		b.WriteString(span)
	}

	return b.String()
}

// Tree renders a violation and its branches as an indented tree, one
// requirement per line.
func Tree(v *refinement.Violation) string {
	var b strings.Builder
	b.WriteString(v.Expected)
	writeBranches(&b, v.Children, "")
	return b.String()
}

func writeBranches(b *strings.Builder, children []*refinement.Violation, prefix string) {
	for i, child := range children {
		connector, nested := "├─ ", "│  "
		if i == len(children)-1 {
			connector, nested = "└─ ", "   "
		}
		b.WriteByte('\n')
		b.WriteString(prefix + connector + child.Expected)
		writeBranches(b, child.Children, prefix+nested)
	}
}

// renderSpan underlines the offending region of the source text. Returns ""
// when the context carries no usable positional information.
func renderSpan(ctx refinement.Context) string {
	src := ctx.Source
	if src == "" || ctx.Offset < 0 || ctx.Offset > len(src) {
		return ""
	}

	end := ctx.Offset + ctx.Length
	if end > len(src) {
		end = len(src)
	}
	if end < ctx.Offset {
		end = ctx.Offset
	}

	pad := strings.Repeat(" ", utf8.RuneCountInString(src[:ctx.Offset]))
	width := utf8.RuneCountInString(src[ctx.Offset:end])
	if width == 0 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("  1 │ "))
	b.WriteString(src)
	b.WriteByte('\n')
	b.WriteString(sectionStyle.Render("    · "))
	b.WriteString(pad)
	b.WriteString(caretStyle.Render(strings.Repeat("^", width)))
	return b.String()
}
