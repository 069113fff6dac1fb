package vector

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollateStrings returns a locale-aware string comparison for CompareFunc
// and slices.SortFunc. The returned function is not safe for concurrent use.
func CollateStrings(tag language.Tag, opts ...collate.Option) func(a, b string) int {
	return collate.New(tag, opts...).CompareString
}
