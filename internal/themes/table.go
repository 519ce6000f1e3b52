package themes

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category names one thematic bucket and the lowercase keyword
// fragments that place a title in it. Matching is plain substring
// search, so fragments like "trans " (trailing space) act as partial
// word guards without a full word-boundary rule.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultTable returns the embedded theme keyword table.
func DefaultTable() []Category {
	return []Category{
		{
			Name: "Gender Identity & Transgender",
			Keywords: []string{
				"transgender", "trans ", "trans-", "gender identity", "nonbinary",
				"non-binary", "genderqueer", "gender queer", "gender creative",
				"cisgender", "assigned male", "assigned female", "gender spectrum",
				"gender fluid", "they/them",
			},
		},
		{
			Name: "LGBTQ+ Content",
			Keywords: []string{
				"gay", "lesbian", "queer", "bisexual", "lgbtq", "same-sex",
				"two moms", "two dads", "two brides", "pride parade", "homosexual",
				"coming out", "drag queen",
			},
		},
		{
			Name: "Sexuality & Sex Education",
			Keywords: []string{
				"sex education", "sex is a", "sexuality", "sexual identity",
				"sexual orientation", "bodies, feelings", "puberty",
				"s.e.x.", "sex, puberty",
			},
		},
		{
			Name: "Abortion & Reproductive Politics",
			Keywords: []string{
				"abortion", "roe v. wade", "reproductive right", "pro-choice",
				"pro-life", "planned parenthood",
			},
		},
		{
			Name: "Critical Race Theory & Racial Activism",
			Keywords: []string{
				"black lives matter", "blm", "critical race", "antiracist",
				"anti-racist", "white fragility", "white privilege",
				"systemic racism", "white supremacy",
			},
		},
	}
}

// LoadTable reads a keyword table from a YAML file. Keywords are
// lowercased on load so the file does not have to be.
func LoadTable(path string) ([]Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme table: %w", err)
	}

	var table []Category
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse theme table: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("theme table %s has no categories", path)
	}

	for i := range table {
		if table[i].Name == "" {
			return nil, fmt.Errorf("theme table %s: category %d has no name", path, i)
		}
		for j, kw := range table[i].Keywords {
			table[i].Keywords[j] = strings.ToLower(kw)
		}
	}

	return table, nil
}
