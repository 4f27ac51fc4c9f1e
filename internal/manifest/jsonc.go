package manifest

import "bytes"

// StripJSONC drops // and /* */ comments and trailing commas so encoding/json can parse the result.
// Comment markers and commas inside string literals are kept.
func StripJSONC(src []byte) []byte {
	return dropTrailingCommas(dropComments(src))
}

func dropComments(src []byte) []byte {
	out := make([]byte, 0, len(src))

	for i := 0; i < len(src); i++ {
		ch := src[i]

		if ch == '"' {
			end := stringEnd(src, i)
			out = append(out, src[i:end]...)
			i = end - 1
			continue
		}

		if ch == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				nl := bytes.IndexByte(src[i:], '\n')
				if nl < 0 {
					return out
				}
				i += nl - 1 // keep the newline
				continue
			case '*':
				closing := bytes.Index(src[i+2:], []byte("*/"))
				if closing < 0 {
					return out
				}
				i += closing + 3
				continue
			}
		}

		out = append(out, ch)
	}

	return out
}

func dropTrailingCommas(src []byte) []byte {
	out := make([]byte, 0, len(src))

	for i := 0; i < len(src); i++ {
		ch := src[i]

		if ch == '"' {
			end := stringEnd(src, i)
			out = append(out, src[i:end]...)
			i = end - 1
			continue
		}

		if ch == ',' {
			rest := bytes.TrimLeft(src[i+1:], " \t\r\n")
			if len(rest) > 0 && (rest[0] == '}' || rest[0] == ']') {
				continue
			}
		}

		out = append(out, ch)
	}

	return out
}

// stringEnd returns the index just past the string literal that opens at start.
func stringEnd(src []byte, start int) int {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(src)
}
