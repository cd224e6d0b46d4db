package generator

import (
	"regexp"
	"strings"
)

var (
	docTagReplacer = strings.NewReplacer(
		"@{", "",
		"\\ingroup", "",
		"@see", "See",
		"\\see", "See",
		"\\note", "NOTE:",
		"\\warning", "WARNING:",
		"\\param", "@param",
		"\\return", "@return",
	)
	epydocParamRe = regexp.MustCompile(`(@param\s+\S+)(.+)`)
)

// EpydocComment rewrites a Doxygen documentation block into epydoc
// syntax: free text first, then the parameter tag lines, then the return
// line. Parameters tagged [OUT] never appear as arguments; their names
// fold into the return description instead. With fixFirst the leading
// parameter line is dropped, since it describes the implicit self
// reference of a wrapped method.
func EpydocComment(comment string, fixFirst bool) string {
	lines := strings.Split(strings.TrimSpace(docTagReplacer.Replace(comment)), "\n")

	var doc, params, ret, outParams []string
	for _, l := range lines {
		hasParam := strings.Contains(l, "@param")
		hasReturn := strings.Contains(l, "@return")
		if !hasParam && !hasReturn {
			doc = append(doc, l)
		}
		if hasReturn {
			ret = append(ret, strings.ReplaceAll(l, "@return", "@return:"))
		}
		if hasParam {
			if strings.Contains(l, "[OUT]") {
				if m := epydocParamRe.FindStringSubmatch(l); m != nil {
					outParams = append(outParams, strings.TrimSpace(strings.TrimPrefix(m[1], "@param")))
				}
			} else {
				params = append(params, epydocParamRe.ReplaceAllString(l, "$1:$2"))
			}
		}
	}

	if len(outParams) > 0 {
		// Output-only parameters are returned, not supplied.
		ret = []string{"@return " + strings.Join(outParams, ", ")}
	}
	if fixFirst && len(params) > 0 {
		params = params[1:]
	}

	all := append(append(doc, params...), ret...)
	return strings.Join(all, "\n")
}
