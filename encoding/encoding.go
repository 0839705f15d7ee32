// Package encoding wraps the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and it's
// rather easier if we just hide all of it behind one lookup keyed by
// the charset names HTML documents actually declare.
package encoding

import (
	"bytes"
	"strings"

	"github.com/lestrrat-go/strcursor"
	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Load resolves a charset name to its encoding. Matching is
// case-insensitive and tolerant of the common alias spellings; names
// nothing recognizes yield nil. Following the WHATWG encoding mappings,
// iso-8859-1 resolves to windows-1252.
func Load(name string) enc.Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf16", "utf-16", "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "sjis", "cp932", "ms932":
		return japanese.ShiftJIS
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5", "big5-hkscs", "cn-big5":
		return traditionalchinese.Big5
	case "euc-kr", "euckr", "cp949", "ks_c_5601-1987":
		return korean.EUCKR
	case "gbk", "gb2312", "gb-2312", "cp936":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "hz-gb2312", "hz-gb-2312":
		return simplifiedchinese.HZGB2312
	case "cp437":
		return charmap.CodePage437
	case "cp866", "ibm866":
		return charmap.CodePage866
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1", "windows-1252", "windows1252", "cp1252":
		return charmap.Windows1252
	case "iso-8859-2", "iso8859-2", "latin2":
		return charmap.ISO8859_2
	case "iso-8859-3", "iso8859-3":
		return charmap.ISO8859_3
	case "iso-8859-4", "iso8859-4":
		return charmap.ISO8859_4
	case "iso-8859-5", "iso8859-5":
		return charmap.ISO8859_5
	case "iso-8859-6", "iso8859-6":
		return charmap.ISO8859_6
	case "iso-8859-7", "iso8859-7":
		return charmap.ISO8859_7
	case "iso-8859-8", "iso8859-8":
		return charmap.ISO8859_8
	case "iso-8859-9", "iso8859-9", "latin5", "windows-1254", "windows1254", "cp1254":
		return charmap.Windows1254
	case "iso-8859-10", "iso8859-10":
		return charmap.ISO8859_10
	case "iso-8859-13", "iso8859-13":
		return charmap.ISO8859_13
	case "iso-8859-14", "iso8859-14":
		return charmap.ISO8859_14
	case "iso-8859-15", "iso8859-15", "latin9":
		return charmap.ISO8859_15
	case "iso-8859-16", "iso8859-16":
		return charmap.ISO8859_16
	case "koi8-r", "koi8r":
		return charmap.KOI8R
	case "koi8-u", "koi8u":
		return charmap.KOI8U
	case "macintosh", "mac-roman":
		return charmap.Macintosh
	case "x-mac-cyrillic", "macintoshcyrillic":
		return charmap.MacintoshCyrillic
	case "windows-1250", "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows-1251", "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows-1253", "windows1253", "cp1253":
		return charmap.Windows1253
	case "windows-1255", "windows1255", "cp1255":
		return charmap.Windows1255
	case "windows-1256", "windows1256", "cp1256":
		return charmap.Windows1256
	case "windows-1257", "windows1257", "cp1257":
		return charmap.Windows1257
	case "windows-1258", "windows1258", "cp1258":
		return charmap.Windows1258
	case "windows-874", "windows874", "tis-620", "cp874":
		return charmap.Windows874
	case "x-user-defined", "xuserdefined":
		return charmap.XUserDefined
	}
	return nil
}

// Decode transcodes b from the named encoding to UTF-8.
func Decode(name string, b []byte) ([]byte, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Errorf(`encoding '%s' not supported`, name)
	}
	decoded, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode %s input`, name)
	}
	return decoded, nil
}

// sniffWindow bounds how far into the input Sniff looks for a meta
// declaration.
const sniffWindow = 1024

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Sniff inspects the head of an HTML input for its declared character
// encoding: a Unicode BOM first, then a scan of the first KiB for a
// <meta charset=...> or <meta http-equiv="Content-Type" ...>
// declaration. Only names Load recognizes are reported; everything
// else, including inputs with no declaration at all, comes back false.
func Sniff(head []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		return "utf-8", true
	case bytes.HasPrefix(head, bomUTF16BE):
		return "utf-16be", true
	case bytes.HasPrefix(head, bomUTF16LE):
		return "utf-16le", true
	}

	if len(head) > sniffWindow {
		head = head[:sniffWindow]
	}

	// charset= appears both in the modern <meta charset=...> form and
	// inside the content attribute of the http-equiv form, so one scan
	// through each meta tag covers both.
	cur := strcursor.NewByteCursor(bytes.NewReader(bytes.ToLower(head)))
	for !cur.Done() {
		if !cur.HasPrefixString("<meta") {
			cur.Advance(1)
			continue
		}
		cur.Advance(5)
		for !cur.Done() && byte(cur.Peek()) != '>' {
			if !cur.HasPrefixString("charset") {
				cur.Advance(1)
				continue
			}
			cur.Advance(7)
			if name := sniffCharsetValue(cur); name != "" && Load(name) != nil {
				return name, true
			}
		}
	}
	return "", false
}

func sniffCharsetValue(cur strcursor.Cursor) string {
	skipSniffSpace(cur)
	if cur.Done() || byte(cur.Peek()) != '=' {
		return ""
	}
	cur.Advance(1)
	skipSniffSpace(cur)
	if !cur.Done() {
		if c := byte(cur.Peek()); c == '"' || c == '\'' {
			cur.Advance(1)
		}
	}

	var name []byte
	for !cur.Done() {
		c := byte(cur.Peek())
		if c == '"' || c == '\'' || c == '>' || c == '/' || c == ';' || isSniffSpace(c) {
			break
		}
		name = append(name, c)
		cur.Advance(1)
	}
	return string(name)
}

func skipSniffSpace(cur strcursor.Cursor) {
	for !cur.Done() && isSniffSpace(byte(cur.Peek())) {
		cur.Advance(1)
	}
}

func isSniffSpace(c byte) bool {
	return c == 0x20 || (0x9 <= c && c <= 0xa) || c == 0xd
}
