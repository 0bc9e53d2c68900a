// Package charset re-encodes decoded text for hosts that do not speak UTF-8.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ErrUnsupported is returned for character set names with no known encoder.
var ErrUnsupported = errors.New("charset: unsupported character set")

// aliases maps the ZXing-style names readers report (and hosts tend to
// copy) onto IANA names.
var aliases = map[string]string{
	"cp437":              "IBM437",
	"iso8859_1":          "ISO-8859-1",
	"iso8859_2":          "ISO-8859-2",
	"iso8859_5":          "ISO-8859-5",
	"iso8859_7":          "ISO-8859-7",
	"iso8859_15":         "ISO-8859-15",
	"sjis":               "Shift_JIS",
	"cp1250":             "windows-1250",
	"cp1251":             "windows-1251",
	"cp1252":             "windows-1252",
	"cp1256":             "windows-1256",
	"unicodebigunmarked": "UTF-16BE",
	"unicodebig":         "UTF-16BE",
	"utf8":               "UTF-8",
	"ascii":              "US-ASCII",
	"euc_kr":             "EUC-KR",
}

// IsUTF8 reports whether name refers to UTF-8 (or is empty, which means the
// same).
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Lookup returns the encoding for name. UTF-8 yields a nil encoding.
func Lookup(name string) (encoding.Encoding, error) {
	if IsUTF8(name) {
		return nil, nil
	}
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "shift_jis", "sjis":
		return japanese.ShiftJIS, nil
	case "gb18030", "gb2312", "gbk", "euc_cn":
		return simplifiedchinese.GB18030, nil
	}
	if alias, ok := aliases[key]; ok {
		name = alias
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnsupported)
	}
	return enc, nil
}

// Encode converts UTF-8 text to the named character set.
func Encode(text, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode to %s: %w", name, err)
	}
	return out, nil
}

// Decode converts data in the named character set to UTF-8.
func Decode(data []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(data), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode from %s: %w", name, err)
	}
	return string(out), nil
}
