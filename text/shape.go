// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"bytes"
	"math"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// shaper shapes and line wraps text in a single face.
type shaper struct {
	face *font.Face
	ppem fixed.Int26_6
	lang language.Language

	hb            shaping.HarfbuzzShaper
	wrapper       shaping.LineWrapper
	bidiParagraph bidi.Paragraph

	splitScratch []shaping.Input
	outScratch   []shaping.Output
}

func newShaper(src []byte, ppem fixed.Int26_6) (*shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &shaper{
		face: face,
		ppem: ppem,
		lang: language.NewLanguage("en"),
	}, nil
}

// wrap shapes every paragraph of s and breaks it at line break
// opportunities into lines no wider than maxWidth. Words are never
// broken. A negative maxWidth disables wrapping.
func (s *shaper) wrap(str string, maxWidth fixed.Int26_6) block {
	limit := math.MaxInt32
	if maxWidth >= 0 {
		limit = maxWidth.Floor()
	}
	wc := shaping.WrapConfig{
		BreakPolicy: shaping.Never,
	}
	var b block
	for _, para := range strings.Split(str, "\n") {
		runes := []rune(para)
		if len(runes) == 0 {
			b.lines++
			continue
		}
		lines, _ := s.wrapper.WrapParagraph(wc, limit, runes, shaping.NewSliceIterator(s.shape(runes)))
		for _, l := range lines {
			var adv fixed.Int26_6
			for _, run := range l {
				adv += run.Advance
			}
			b.width = max(b.width, adv)
		}
		b.lines += len(lines)
	}
	return b
}

// shape splits txt into runs of uniform direction and script and shapes
// them. The result is valid until the next call.
func (s *shaper) shape(txt []rune) []shaping.Output {
	input := shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.ppem,
		Language:  s.lang,
	}
	inputs := splitByScript(s.splitBidi(input), s.splitScratch[:0])
	s.splitScratch = inputs
	s.outScratch = s.outScratch[:0]
	for _, in := range inputs {
		s.outScratch = append(s.outScratch, s.hb.Shape(in))
	}
	return s.outScratch
}

// splitBidi divides input into runs of a single text direction.
func (s *shaper) splitBidi(input shaping.Input) []shaping.Input {
	if input.RunStart == input.RunEnd {
		return []shaping.Input{input}
	}
	s.bidiParagraph.SetString(string(input.Text), bidi.DefaultDirection(bidi.LeftToRight))
	out, err := s.bidiParagraph.Order()
	if err != nil {
		return []shaping.Input{input}
	}
	var split []shaping.Input
	for i := 0; i < out.NumRuns(); i++ {
		run := out.Run(i)
		cur := input
		_, end := run.Pos()
		cur.RunEnd = end + 1
		if run.Direction() == bidi.RightToLeft {
			cur.Direction = di.DirectionRTL
		} else {
			cur.Direction = di.DirectionLTR
		}
		split = append(split, cur)
		input.RunStart = cur.RunEnd
	}
	return split
}

// splitByScript divides the inputs on script boundaries. Common runes
// such as spaces and punctuation join the run they follow. The result
// is appended to buf.
func splitByScript(inputs []shaping.Input, buf []shaping.Input) []shaping.Input {
	split := buf
	for _, input := range inputs {
		if input.RunStart == input.RunEnd {
			split = append(split, input)
			continue
		}
		first := input.RunStart
		for i := input.RunStart; i < input.RunEnd; i++ {
			if language.LookupScript(input.Text[i]) != language.Common {
				first = i
				break
			}
		}
		cur := input
		cur.Script = language.LookupScript(input.Text[first])
		for i := first + 1; i < input.RunEnd; i++ {
			sc := language.LookupScript(input.Text[i])
			if sc == language.Common || sc == cur.Script {
				continue
			}
			cur.RunEnd = i
			split = append(split, cur)
			cur = input
			cur.RunStart = i
			cur.Script = sc
		}
		cur.RunEnd = input.RunEnd
		split = append(split, cur)
	}
	return split
}
