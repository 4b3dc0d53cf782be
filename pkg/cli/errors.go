// Package cli implements the commands of the propverify tool: it runs and
// replays declared properties, manages recorded cases and renders the results.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/config"
	"github.com/nomagicln/propverify/pkg/declare"
)

// PropertyNotFoundError indicates a property name that no loaded file declares.
type PropertyNotFoundError struct {
	Name  string
	Known []string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property '%s' not found", e.Name)
}

// ExpectationError reports properties whose exploration did not end as declared.
type ExpectationError struct {
	Properties []string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%d propert%s did not meet %s expectation: %s",
		len(e.Properties), plural(len(e.Properties), "y", "ies"),
		plural(len(e.Properties), "its", "their"), strings.Join(e.Properties, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ErrorFormatter provides user-friendly error messages.
type ErrorFormatter struct{}

// NewErrorFormatter creates a new error formatter.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{}
}

// FormatError formats an error into a user-friendly message.
func (f *ErrorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var notFound *PropertyNotFoundError
	var caseNotFound *casestore.CaseNotFoundError
	var ambiguous *casestore.AmbiguousIDError
	var declErr *declare.DeclarationError
	var pathErr *config.PathValidationError
	var cfgErr *config.ValidationError
	var unmet *ExpectationError

	switch {
	case errors.As(err, &notFound):
		return f.formatPropertyNotFoundError(notFound)
	case errors.As(err, &caseNotFound):
		return f.formatCaseNotFoundError(caseNotFound)
	case errors.As(err, &ambiguous):
		return f.formatAmbiguousIDError(ambiguous)
	case errors.As(err, &declErr):
		return f.formatDeclarationError(declErr)
	case errors.As(err, &pathErr):
		return f.formatPathError(pathErr)
	case errors.As(err, &cfgErr):
		return f.formatConfigError(cfgErr)
	case errors.As(err, &unmet):
		return fmt.Sprintf("Error: %s", unmet.Error())
	default:
		return fmt.Sprintf("Error: %s", err.Error())
	}
}

// formatPropertyNotFoundError formats property not found errors with suggestions.
func (f *ErrorFormatter) formatPropertyNotFoundError(err *PropertyNotFoundError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: Property '%s' is not declared in the given files.\n\n", err.Name)

	if suggestions := f.SuggestSimilar(err.Name, err.Known); len(suggestions) > 0 {
		sb.WriteString("Did you mean:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&sb, "  %s\n", s)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("To see all declared properties, use:\n")
	sb.WriteString("  propverify list <paths>")
	return sb.String()
}

func (f *ErrorFormatter) formatCaseNotFoundError(err *casestore.CaseNotFoundError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: No recorded case matches '%s'.\n\n", err.ID)
	sb.WriteString("To see recorded cases, use:\n")
	sb.WriteString("  propverify cases list")
	return sb.String()
}

func (f *ErrorFormatter) formatAmbiguousIDError(err *casestore.AmbiguousIDError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: Case id '%s' is ambiguous.\n\n", err.Prefix)
	sb.WriteString("It matches:\n")
	for _, m := range err.Matches {
		fmt.Fprintf(&sb, "  %s\n", m)
	}
	sb.WriteString("\nUse more characters of the id.")
	return sb.String()
}

// formatDeclarationError formats problems in property files.
func (f *ErrorFormatter) formatDeclarationError(err *declare.DeclarationError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n\n", err.Error())
	sb.WriteString("Possible causes:\n")
	sb.WriteString("  - A strategy node has an unknown kind or field\n")
	sb.WriteString("  - A scalar bound does not fit its type\n")
	sb.WriteString("  - An expression names a value that is not bound\n\n")
	sb.WriteString("Strategy kinds: just, any, bool, char, range, vec, vec_deque, linked_list,\n")
	sb.WriteString("btree_set, btree_map, binary_heap, union, one_of, option, result, tuple,\n")
	sb.WriteString("array, filter")
	return sb.String()
}

func (f *ErrorFormatter) formatPathError(err *config.PathValidationError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n\n", err.Error())
	sb.WriteString("Property paths must be .yaml or .yml files, or directories containing them.")
	return sb.String()
}

func (f *ErrorFormatter) formatConfigError(err *config.ValidationError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n\n", err.Error())
	sb.WriteString("Fix the value in the configuration file, or override it with a flag.\n")
	sb.WriteString("To see where the configuration lives, use:\n")
	sb.WriteString("  propverify config path")
	return sb.String()
}

// SuggestSimilar suggests known names close to name.
func (f *ErrorFormatter) SuggestSimilar(name string, known []string) []string {
	if len(known) == 0 {
		return nil
	}

	var suggestions []string
	nameLower := strings.ToLower(name)

	for _, candidate := range known {
		candidateLower := strings.ToLower(candidate)

		// Exact match (case-insensitive)
		if nameLower == candidateLower {
			return []string{candidate}
		}

		if strings.HasPrefix(candidateLower, nameLower) || strings.Contains(candidateLower, nameLower) {
			suggestions = append(suggestions, candidate)
			continue
		}

		if f.levenshteinDistance(nameLower, candidateLower) <= 2 {
			suggestions = append(suggestions, candidate)
		}
	}

	return suggestions
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func (f *ErrorFormatter) levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}
