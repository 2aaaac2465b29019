package charset

import (
	"fmt"
	"strconv"
	"strings"
)

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}

func rangesString(ranges []Range) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, rg := range ranges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if rg.Lo == rg.Hi {
			sb.WriteString(quoteRune(rg.Lo))
		} else {
			fmt.Fprintf(&sb, "%s-%s", quoteRune(rg.Lo), quoteRune(rg.Hi))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func runesString(runes []rune) string {
	ranges := make([]Range, len(runes))
	for i, r := range runes {
		ranges[i] = Range{Lo: r, Hi: r}
	}
	return rangesString(ranges)
}
