package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NameListSeparator joins table and domain names in their transport form.
const NameListSeparator = ";"

// NameList is an ordered list of table or domain names. It travels as a
// single semicolon-delimited string.
type NameList []string

// ParseNameList splits s on ";" and trims each name. Trailing empty names are
// dropped so "a;b;" yields two entries; a blank string yields an empty list.
func ParseNameList(s string) NameList {
	if strings.TrimSpace(s) == "" {
		return NameList{}
	}
	parts := strings.Split(s, NameListSeparator)
	names := make(NameList, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}
	return names
}

func (n NameList) String() string {
	return strings.Join(n, NameListSeparator)
}

func (n NameList) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON accepts the delimited string form as well as a JSON array.
func (n *NameList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = ParseNameList(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("name list must be a string or an array of strings: %w", err)
	}
	*n = NameList(arr)
	return nil
}

// GeneratorConfig is everything the generator needs for one run. It is also
// the shape of the settings file.
type GeneratorConfig struct {
	ConnectionURL      string   `json:"connectionUrl"`
	Username           string   `json:"username"`
	Password           string   `json:"password,omitempty"`
	TargetProjectPath  string   `json:"targetProjectPath"`
	EntityPackageName  string   `json:"entityPackageName"`
	ServicePackageName string   `json:"servicePackageName"`
	AuthorName         string   `json:"authorName"`
	Tables             NameList `json:"tables"`
	Domains            NameList `json:"domains"`
}

// CredentialAccount is the key under which the password is kept outside the
// settings file.
func (c GeneratorConfig) CredentialAccount() string {
	return c.Username + "@" + c.ConnectionURL
}

// Pairs returns table/domain pairs in order. Callers must have checked that
// both lists have the same length.
func (c GeneratorConfig) Pairs() []TableMapping {
	pairs := make([]TableMapping, 0, len(c.Tables))
	for i, t := range c.Tables {
		pairs = append(pairs, TableMapping{Table: t, Domain: c.Domains[i]})
	}
	return pairs
}

type TableMapping struct {
	Table  string `json:"table"`
	Domain string `json:"domain"`
}
