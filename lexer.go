package morte

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// The scanner splits on whitespace first and then peels the
// punctuation tokens off the resulting words. The ASCII spellings "\"
// and "->" are folded into their canonical forms before splitting, so
// they tokenize exactly like "λ" and "→"; "forall" and "BOX" are mapped
// to "∀" and "□" after splitting. Lines may carry "--" comments.

var punct = []string{"(", ")", "λ", "∀", "→", ":", "@"}

func scan(src string) ([]string, error) {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if j := strings.Index(line, "--"); j >= 0 {
			lines[i] = line[:j]
		}
	}
	src = strings.Join(lines, "\n")
	src = strings.ReplaceAll(src, "->", "→")
	src = strings.ReplaceAll(src, "\\", "λ")

	res := strings.Fields(src)
	sep := func(c string) {
		res = lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range punct {
		sep(c)
	}
	res = lo.Map(res, func(s string, _ int) string {
		switch s {
		case "forall":
			return "∀"
		case "BOX":
			return "□"
		}
		return s
	})
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func validateToken(s string) error {
	switch s {
	case "(", ")", "λ", "∀", "→", ":", "@", "*", "□":
		return nil
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\''
	}) >= 0 {
		return fmt.Errorf("unexpected token %q", s)
	}
	return nil
}
