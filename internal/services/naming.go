package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kenshaw/snaker"

	"dbforge/internal/models"
)

// DeriveDomains converts each snake_case table name into an UpperCamelCase
// domain name by capitalizing every segment: "user_profile;t_order;user_id"
// becomes "UserProfile;TOrder;UserId".
func DeriveDomains(tables string) string {
	return deriveWith(tables, upperCamel)
}

// DeriveGoDomains is DeriveDomains with Go initialisms applied, so "user_id"
// becomes "UserID" and "t_url" becomes "TURL".
func DeriveGoDomains(tables string) string {
	return deriveWith(tables, func(name string) string {
		return snaker.SnakeToCamel(strings.ToLower(name))
	})
}

func deriveWith(tables string, convert func(string) string) string {
	names := models.ParseNameList(tables)
	domains := make(models.NameList, 0, len(names))
	for _, name := range names {
		domains = append(domains, convert(name))
	}
	return domains.String()
}

func upperCamel(name string) string {
	var b strings.Builder
	for _, seg := range strings.Split(strings.ToLower(name), "_") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}
