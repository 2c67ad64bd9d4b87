package structure

import "strings"

// SpanFlags is the attribute bitmask carried by a TextSpan.
type SpanFlags uint32

const (
	SpanFixedWidth SpanFlags = 1 << iota
	SpanSerifFont
	SpanItalic
	SpanBold
	SpanLink
	SpanColor
	SpanFont
)

// TextSpan is a maximal run of text sharing identical rendering attributes.
// FontName is meaningful only when SpanFont is set, LinkTarget only when
// SpanLink is set, and Color only when SpanColor is set.
type TextSpan struct {
	Text       string
	FontName   string
	LinkTarget string
	Flags      SpanFlags
	Color      RGB
}

func (s TextSpan) IsFixedWidth() bool { return s.Flags&SpanFixedWidth != 0 }
func (s TextSpan) IsSerifFont() bool  { return s.Flags&SpanSerifFont != 0 }
func (s TextSpan) IsItalic() bool     { return s.Flags&SpanItalic != 0 }
func (s TextSpan) IsBold() bool       { return s.Flags&SpanBold != 0 }
func (s TextSpan) IsLink() bool       { return s.Flags&SpanLink != 0 }
func (s TextSpan) HasColor() bool     { return s.Flags&SpanColor != 0 }

// spanBuilder folds a marked-content operation sequence into spans.
type spanBuilder struct {
	text  strings.Builder
	font  strings.Builder
	link  strings.Builder
	flags SpanFlags
	color RGB
	spans []TextSpan
}

func (b *spanBuilder) process(op MCOp) {
	if op.Type == OpChar {
		b.text.WriteRune(op.Rune)
		return
	}

	flags := b.flags

	switch op.Type {
	case OpStyle:
		// The operation fully determines the three style bits; they
		// are not merged with the previous state.
		if op.Style&StyleBold != 0 {
			flags |= SpanBold
		} else {
			flags &^= SpanBold
		}
		if op.Style&StyleFixed != 0 {
			flags |= SpanFixedWidth
		} else {
			flags &^= SpanFixedWidth
		}
		if op.Style&StyleItalic != 0 {
			flags |= SpanItalic
		} else {
			flags &^= SpanItalic
		}

	case OpColor:
		// A zero pixel is indistinguishable from "no color", which
		// conflates black with absence. Preserved as observed
		// behavior; see the Segment doc comment.
		if op.Color.Pixel() != 0 {
			flags |= SpanColor
		} else {
			flags &^= SpanColor
		}

	case OpFont:
		if op.Font != "" {
			flags |= SpanFont
		} else {
			flags &^= SpanFont
		}
	}

	// Text accumulated so far belongs to the run that ended with this
	// operation, so it flushes under the attributes in force before it.
	if flags != b.flags {
		b.flush()
	}
	b.flags = flags

	switch op.Type {
	case OpColor:
		if op.Color.Pixel() != 0 {
			b.color = op.Color
		}
	case OpFont:
		if op.Font != "" {
			b.font.WriteString(op.Font)
		}
	}
}

// flush emits a span for the accumulated text, if any. When no text has
// accumulated, the current attributes carry over to the next span; the
// link buffer is cleared either way.
func (b *spanBuilder) flush() {
	if b.text.Len() > 0 {
		span := TextSpan{
			Text:  b.text.String(),
			Flags: b.flags,
			Color: b.color,
		}
		b.text.Reset()

		if b.font.Len() > 0 {
			span.FontName = b.font.String()
			b.font.Reset()
		}
		if b.link.Len() > 0 {
			span.LinkTarget = b.link.String()
		}

		b.spans = append(b.spans, span)
	}

	b.link.Reset()
}

// Segment converts the ordered marked-content operations of one content
// node into an ordered sequence of text spans, each a maximal run of text
// with identical rendering attributes. Character operations accumulate;
// any style, color, or font operation that changes the attribute bitmask
// closes the current run. Attribute changes arriving before any text do
// not produce empty spans.
//
// A color operation whose value is exactly zero is treated as "no color",
// so pure black cannot be distinguished from the absence of a color
// operation. This quirk is deliberate: changing it would alter observable
// output for existing documents.
func Segment(ops []MCOp) []TextSpan {
	var b spanBuilder
	for _, op := range ops {
		b.process(op)
	}
	b.flush()
	return b.spans
}
