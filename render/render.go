package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/typelayout/layout"
)

// Renderer writes layout trees and offset listings as indented text.
type Renderer struct {
	// Writer receives the output.
	Writer io.Writer

	// Indent is one level of indentation. Defaults to three spaces.
	Indent string

	// Color enables ANSI styling. Callers typically seed this from
	// DetectColor.
	Color bool
}

// New returns a renderer writing plain text to w.
func New(w io.Writer) *Renderer {
	return &Renderer{Writer: w, Indent: "   "}
}

// RenderTree prints the full layout of tree. displayName is the user's
// original query; when it differs from the resolved type name the header
// shows both. recursive controls whether the hole/padding totals are
// printed, matching the mode the tree was computed in.
func (r *Renderer) RenderTree(tree *layout.Tree, displayName string, recursive bool) error {
	holes, padding, err := r.renderTree(tree, displayName, 0)
	if err != nil {
		return err
	}

	if recursive && holes > 0 {
		if err := r.line(0, r.paint(totalPadStyle, fmt.Sprintf("Total hole size: %d", holes))); err != nil {
			return err
		}
	}
	if recursive && padding > 0 {
		if err := r.line(0, r.paint(totalPadStyle, fmt.Sprintf("Total padding size: %d", padding))); err != nil {
			return err
		}
	}
	return r.line(0, r.paint(totalSizeStyle, fmt.Sprintf("Total size: %d", tree.TotalSize)))
}

// RenderOffsets prints the offsets view: one `name => offset` line per
// field.
func (r *Renderer) RenderOffsets(displayName, typeName string, offsets []layout.FieldOffset) error {
	if displayName != typeName {
		displayName += " (" + typeName + ")"
	}
	if err := r.line(0, displayName+" {"); err != nil {
		return err
	}
	for _, fo := range offsets {
		if err := r.line(1, fmt.Sprintf("%s => %d", fo.Name, fo.Offset)); err != nil {
			return err
		}
	}
	return r.line(0, "}")
}

// renderTree prints one brace block and returns the hole and trailing
// padding byte counts accumulated beneath it.
func (r *Renderer) renderTree(tree *layout.Tree, displayName string, indent int) (holes, padding uint32, err error) {
	if displayName != tree.TypeName {
		displayName += " (" + tree.TypeName + ")"
	}
	if err = r.line(indent, displayName+r.brace(indent, " {")); err != nil {
		return 0, 0, err
	}

	last := len(tree.Segments) - 1
	for i, seg := range tree.Segments {
		switch s := seg.(type) {
		case layout.Field:
			if s.Child != nil {
				label := fmt.Sprintf("%s => %d - %d", s.Name, s.Start, s.End)
				h, p, cerr := r.renderTree(s.Child, label, indent+1)
				if cerr != nil {
					return 0, 0, cerr
				}
				holes += h
				padding += p
			} else if err = r.line(indent+1, fmt.Sprintf("%s => %d - %d", s.Name, s.Start, s.End)); err != nil {
				return 0, 0, err
			}

		case layout.VariantGroup:
			label := fmt.Sprintf("%s => %d - %d", s.TagName, s.Start, s.End)
			h, p, cerr := r.renderTree(s.Child, label, indent+1)
			if cerr != nil {
				return 0, 0, cerr
			}
			holes += h
			padding += p

		case layout.Padding:
			trailing := i == last && s.End == tree.TotalSize
			marker := "Hole"
			if trailing {
				marker = "Padding"
			}
			if err = r.blank(); err != nil {
				return 0, 0, err
			}
			if err = r.line(indent+1, r.paint(gapStyle, fmt.Sprintf("--- %s: %d bytes ---", marker, s.Width()))); err != nil {
				return 0, 0, err
			}
			if err = r.blank(); err != nil {
				return 0, 0, err
			}
			if trailing {
				padding += s.Width()
			} else {
				holes += s.Width()
			}
		}
	}

	if err = r.line(indent, r.brace(indent, "}")); err != nil {
		return 0, 0, err
	}

	// The empty-base case: a one-byte fieldless block whose byte overlaps
	// real data elsewhere. Not counted toward the totals.
	if tree.TotalSize == 1 && len(tree.Segments) == 1 && holes == 0 && padding == 1 {
		return 0, 0, nil
	}
	return holes, padding, nil
}

func (r *Renderer) indentOf(level int) string {
	unit := r.Indent
	if unit == "" {
		unit = "   "
	}
	return strings.Repeat(unit, level)
}

func (r *Renderer) line(indent int, text string) error {
	_, err := fmt.Fprintf(r.Writer, "%s%s\n", r.indentOf(indent), text)
	return err
}

func (r *Renderer) blank() error {
	_, err := fmt.Fprintln(r.Writer)
	return err
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) brace(depth int, s string) string {
	if !r.Color {
		return s
	}
	style := nestingStyles[depth%len(nestingStyles)]
	if style == nil {
		return s
	}
	return style.Render(s)
}
