package louis

import (
	"bufio"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// maxChunk keeps a single request comfortably inside the tool's buffer.
const maxChunk = MaxBufferSize * 9 / 10

// Translate translates s with t, splitting long input into buffer-sized
// chunks at UAX#14 line-break opportunities so state-free boundaries fall
// between words. A single unbreakable fragment of maxChunk bytes (90% of
// the buffer) or more is an error.
func Translate(t Translator, s string) (string, error) {
	if len(s) < maxChunk {
		return t.TranslateString(s)
	}

	tracer().Debugf("chunking %d chars for translation", len(s))

	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))

	var out strings.Builder
	var chunk strings.Builder

	flush := func() error {
		if chunk.Len() == 0 {
			return nil
		}
		braille, err := t.TranslateString(chunk.String())
		if err != nil {
			return err
		}
		out.WriteString(braille)
		chunk.Reset()
		return nil
	}

	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if len(frag) >= maxChunk {
			return "", &Error{Text: frag, Err: errTooLong}
		}
		if chunk.Len()+len(frag) >= maxChunk {
			if err := flush(); err != nil {
				return "", err
			}
		}
		chunk.WriteString(frag)
	}
	if err := flush(); err != nil {
		return "", err
	}

	return out.String(), nil
}
