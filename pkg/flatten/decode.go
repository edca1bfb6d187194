package flatten

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// TextDecoder turns raw file bytes into text.
type TextDecoder interface {
	Name() string
	Decode(data []byte) (string, error)
}

// utf8Decoder accepts only well-formed UTF-8.
type utf8Decoder struct{}

func (utf8Decoder) Name() string { return "utf-8" }

func (utf8Decoder) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

// charsetDecoder decodes through a golang.org/x/text encoding.
type charsetDecoder struct {
	name string
	enc  encoding.Encoding
}

func (d charsetDecoder) Name() string { return d.name }

func (d charsetDecoder) Decode(data []byte) (string, error) {
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", d.name, err)
	}
	return string(out), nil
}

// LookupDecoder resolves an encoding name. "utf-8" is strict; Latin-1
// spellings map to ISO-8859-1; anything else is looked up in the IANA
// registry.
func LookupDecoder(name string) (TextDecoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "utf-8", "utf8":
		return utf8Decoder{}, nil
	case "latin-1", "latin1", "l1", "iso-8859-1", "iso8859-1":
		return charsetDecoder{name: "latin-1", enc: charmap.ISO8859_1}, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = key
	}
	return charsetDecoder{name: strings.ToLower(canonical), enc: enc}, nil
}

// DecoderChain is an ordered list of decoders tried until one succeeds.
type DecoderChain []TextDecoder

// NewDecoderChain resolves every name in order.
func NewDecoderChain(names []string) (DecoderChain, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty decoding chain", ErrUnknownEncoding)
	}

	chain := make(DecoderChain, 0, len(names))
	for _, name := range names {
		d, err := LookupDecoder(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, d)
	}
	return chain, nil
}

// Decode returns the text produced by the first decoder that accepts data
// and that decoder's name.
func (c DecoderChain) Decode(data []byte) (string, string, error) {
	for _, d := range c {
		text, err := d.Decode(data)
		if err == nil {
			return text, d.Name(), nil
		}
	}
	return "", "", ErrUndecodable
}

// Names returns the decoder names in chain order.
func (c DecoderChain) Names() []string {
	names := make([]string, 0, len(c))
	for _, d := range c {
		names = append(names, d.Name())
	}
	return names
}
