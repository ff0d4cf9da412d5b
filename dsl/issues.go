package dsl

import (
	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
)

// issuesFrom converts a child evaluation error into Issues without moving its
// path. Errors that are not already Issues come from converters with no
// explicit fallible contract; they are wrapped under the conversion code so
// nothing escapes unpathed.
func issuesFrom(err error) godto.Issues {
	if iss, ok := godto.AsIssues(err); ok {
		return iss
	}
	return godto.Issues{godto.Issue{
		Code:    godto.CodeConversion,
		Message: i18n.T(godto.CodeConversion, nil),
		Cause:   err,
	}}
}

// issuesAt converts a child evaluation error into Issues rebased under the
// enclosing key or index.
func issuesAt(seg any, err error) godto.Issues {
	return godto.PrefixIssues(issuesFrom(err), seg)
}
