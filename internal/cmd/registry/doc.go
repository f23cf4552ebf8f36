// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package registry

import (
	"reflect"
	"strings"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/iancoleman/strcase"
)

// NameOf derives a command name from the handler's type: the type name is
// kebab-cased and lower-cased, and a leading "cmd-" is dropped. A handler of
// type CmdListNodes is named "list-nodes".
func NameOf(h base.Handler) string {
	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := strcase.ToKebab(t.Name())
	name = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	return strings.TrimPrefix(name, "cmd-")
}

// ParseDoc splits command documentation into a synopsis and a body. The
// synopsis is the first paragraph with its line breaks removed. The body is
// the rest, with common indentation removed and paragraphs kept.
func ParseDoc(doc string) (synopsis, body string) {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	i := 0
	for ; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
	}
	synopsis = strings.Join(strings.Fields(strings.Join(lines[:i], " ")), " ")
	body = strings.Join(dedent(lines[i:]), "\n")
	return synopsis, strings.Trim(body, "\n")
}

// dedent removes the indentation shared by every non-blank line, and trims
// trailing whitespace.
func dedent(lines []string) []string {
	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if n := len(line) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if len(line) >= indent && indent > 0 {
			line = line[indent:]
		}
		out[i] = line
	}
	return out
}
