package services

import (
	"regexp"
	"strings"

	"github.com/bffgym/pos-be/models"
)

var phoneSuffixRe = regexp.MustCompile(`\(([^)]+)\)$`)

// ResolveMember maps free-text front-desk input to a member. Rules, first
// hit wins:
//  1. exact name match (case-insensitive)
//  2. input is a prefix of a member's name (case-insensitive)
//  3. a trailing "(phone)" suffix matched against whitespace-stripped phones
//
// This is a heuristic, not a key lookup: when two members share a name
// prefix the first in list order wins. Returns nil when nothing matches.
func ResolveMember(members []models.Member, input string) *models.Member {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	lower := strings.ToLower(input)

	for i := range members {
		if strings.ToLower(members[i].Name) == lower {
			return &members[i]
		}
	}
	for i := range members {
		if strings.HasPrefix(strings.ToLower(members[i].Name), lower) {
			return &members[i]
		}
	}

	if m := phoneSuffixRe.FindStringSubmatch(input); m != nil {
		phone := stripSpaces(m[1])
		if phone == "" {
			return nil
		}
		for i := range members {
			stored := stripSpaces(members[i].Phone)
			// A partial number from the suggestion list still resolves,
			// e.g. "(0412)" against "0412 000 000".
			if stored != "" && strings.HasPrefix(stored, phone) {
				return &members[i]
			}
		}
	}
	return nil
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
