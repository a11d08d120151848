package shell

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/enact/pkg/errors"
)

// Escaping policy: one conservative, well-tested strategy per dialect.
// Values that cannot be represented safely are rejected with
// UNRENDERABLE_VALUE before any output is produced, never emitted broken.

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validVarName(name string) error {
	if !varNameRe.MatchString(name) {
		return errors.Newf(errors.ErrUnrenderableValue, "invalid variable name: %q", name)
	}
	return nil
}

// escapePosix escapes for a single-quoted POSIX string: close the quote,
// emit a double-quoted single quote, reopen. Newlines are fine inside
// single quotes.
func escapePosix(value string) (string, error) {
	return strings.ReplaceAll(value, "'", `'"'"'`), nil
}

// escapeCsh escapes for a double-quoted csh string. csh has no multi-line
// quoting, so embedded newlines are unrenderable. History expansion makes
// `!` live even inside double quotes.
func escapeCsh(value string) (string, error) {
	if strings.ContainsAny(value, "\n\r") {
		return "", errors.New(errors.ErrUnrenderableValue,
			"csh cannot represent values containing newlines")
	}
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"$", `\$`,
		"`", "\\`",
		"!", `\!`,
	)
	return replacer.Replace(value), nil
}

// escapeFish escapes for a double-quoted fish string.
func escapeFish(value string) (string, error) {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"$", `\$`,
	)
	return replacer.Replace(value), nil
}

// escapeXonsh escapes for a single-quoted Python string literal.
func escapeXonsh(value string) (string, error) {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return replacer.Replace(value), nil
}

// escapeCmdExe escapes for @SET "K=V" in a batch file. Double quotes and
// newlines have no safe spelling in that form; percent signs double.
func escapeCmdExe(value string) (string, error) {
	if strings.ContainsAny(value, "\"\n\r") {
		return "", errors.New(errors.ErrUnrenderableValue,
			"cmd.exe cannot represent values containing double quotes or newlines")
	}
	return strings.ReplaceAll(value, "%", "%%"), nil
}

// escapePowerShell escapes for a double-quoted PowerShell string using
// backtick escapes.
func escapePowerShell(value string) (string, error) {
	replacer := strings.NewReplacer(
		"`", "``",
		`"`, "`\"",
		"$", "`$",
	)
	return replacer.Replace(value), nil
}

// escapeElvish produces a complete single-quoted Elvish string token;
// the elvish templates take the value as a bare token.
func escapeElvish(value string) (string, error) {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'", nil
}

// validScriptPath vets a hook script path for direct substitution into the
// double-quoted run-script templates. extra carries the characters that
// stay live inside one dialect's quoting beyond the shared reject set.
func validScriptPath(path, extra string) error {
	if strings.ContainsAny(path, "\"\n\r$`"+extra) {
		return errors.Newf(errors.ErrUnrenderableValue,
			"hook script path cannot be quoted safely: %q", path)
	}
	return nil
}
