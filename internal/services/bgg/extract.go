package bgg

import (
	"bytes"
	"encoding/xml"
)

// Block is the raw bytes of one record element, e.g. a single <item>.
// Field lookups only ever see the bytes of their own block, so a value can
// never leak in from a neighbouring record.
//
// Lookups are tag/attribute based and only cover the element shapes the
// BGG XML API2 actually returns: no namespaces, no schema, no mixed content.
// Attribute order, whitespace and self-closing vs paired tags do not matter.
// XML escapes such as &amp; are resolved by the tokenizer; unknown named
// entities are kept literally and left to DecodeEntities.
type Block []byte

// newDecoder returns a lenient tokenizer. BGG output is mostly well formed,
// but stray entities and the odd unescaped ampersand must not abort a batch.
func newDecoder(data []byte) *xml.Decoder {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	return d
}

// SplitBlocks returns every outermost element named tag in document order.
// If the document is truncated or malformed, the blocks that were complete
// before the error are returned.
func SplitBlocks(doc []byte, tag string) []Block {
	var blocks []Block
	d := newDecoder(doc)

	depth := 0
	var start int64
	for {
		offset := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return blocks
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != tag {
				continue
			}
			if depth == 0 {
				start = offset
			}
			depth++
		case xml.EndElement:
			if t.Name.Local != tag || depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				end := d.InputOffset()
				blocks = append(blocks, Block(doc[start:end]))
			}
		}
	}
}

// walk calls fn for each start element in the block until fn returns false.
func (b Block) walk(fn func(d *xml.Decoder, el xml.StartElement) bool) {
	d := newDecoder(b)
	for {
		tok, err := d.Token()
		if err != nil {
			return
		}
		if el, ok := tok.(xml.StartElement); ok {
			if !fn(d, el) {
				return
			}
		}
	}
}

// RootAttr returns an attribute of the block's own root element.
func (b Block) RootAttr(name string) (string, bool) {
	var (
		value string
		found bool
	)
	b.walk(func(_ *xml.Decoder, el xml.StartElement) bool {
		value, found = attr(el, name)
		return false
	})
	return value, found
}

// Text returns the character data of the first element named tag.
// An element that exists but is empty yields "" and true.
func (b Block) Text(tag string) (string, bool) {
	var (
		value string
		found bool
	)
	b.walk(func(d *xml.Decoder, el xml.StartElement) bool {
		if el.Name.Local != tag {
			return true
		}
		found = true
		value = collectText(d)
		return false
	})
	return value, found
}

// Attr returns attr of the first element named tag that carries it.
func (b Block) Attr(tag, attrName string) (string, bool) {
	var (
		value string
		found bool
	)
	b.walk(func(_ *xml.Decoder, el xml.StartElement) bool {
		if el.Name.Local != tag {
			return true
		}
		value, found = attr(el, attrName)
		return !found
	})
	return value, found
}

// AttrWhere returns attr of the first element named tag whose key
// attribute equals want, e.g. the value of <name type="primary">.
func (b Block) AttrWhere(tag, key, want, attrName string) (string, bool) {
	var (
		value string
		found bool
	)
	b.walk(func(_ *xml.Decoder, el xml.StartElement) bool {
		if !matches(el, tag, key, want) {
			return true
		}
		value, found = attr(el, attrName)
		return !found
	})
	return value, found
}

// EachAttr collects attr from every element named tag whose key attribute
// equals want, in document order.
func (b Block) EachAttr(tag, key, want, attrName string) []string {
	var values []string
	b.walk(func(_ *xml.Decoder, el xml.StartElement) bool {
		if matches(el, tag, key, want) {
			if v, ok := attr(el, attrName); ok {
				values = append(values, v)
			}
		}
		return true
	})
	return values
}

func matches(el xml.StartElement, tag, key, want string) bool {
	if el.Name.Local != tag {
		return false
	}
	v, ok := attr(el, key)
	return ok && v == want
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// collectText reads character data up to the end of the current element,
// including text of nested children.
func collectText(d *xml.Decoder) string {
	var buf bytes.Buffer
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return buf.String()
}
