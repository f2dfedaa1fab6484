package parser

import (
	"regexp"
	"strings"

	"sqlprep/entities"
)

// Parser turns a raw model response into question records. Kept behind an
// interface so a structured-output strategy can replace the markdown scan
// without touching the plan service.
type Parser interface {
	Parse(text string) []entities.Question
}

// blockStart marks the beginning of one numbered question block.
var blockStart = regexp.MustCompile(`\*\*\d+\.\s*Title:\*\*`)

// blockFields captures the four template fields inside a single block. The
// description runs to the end of the block (the next numbered block or end of
// text delimits it).
var blockFields = regexp.MustCompile(`(?s)^\*\*(\d+)\.\s*Title:\*\*\s*(.*?)\s*\*\*Difficulty:\*\*\s*(.*?)\s*\*\*Concepts:\*\*\s*(.*?)\s*\*\*Description:\*\*\s*(.*)$`)

type markdown struct{}

// Markdown returns the parser for the bold "N. Title / Difficulty / Concepts /
// Description" template the prompt asks the model for. The markers and field
// order are fixed; anything else yields zero entries.
func Markdown() Parser { return markdown{} }

func (markdown) Parse(text string) []entities.Question {
	starts := blockStart.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}

	var questions []entities.Question
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		m := blockFields.FindStringSubmatch(text[s[0]:end])
		if m == nil {
			continue
		}
		questions = append(questions, entities.Question{
			Title:       strings.TrimSpace(m[2]),
			Difficulty:  strings.TrimSpace(m[3]),
			Concepts:    splitConcepts(m[4]),
			Description: strings.TrimSpace(m[5]),
			Category:    "Problem Solving",
			Completed:   false,
		})
	}
	return questions
}

func splitConcepts(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Defaults is the fixed fallback list used when the model call fails or its
// response yields no parsable blocks.
func Defaults() []entities.Question {
	return []entities.Question{
		{
			Title:       "Advanced SQL Join Techniques",
			Difficulty:  "Hard",
			Concepts:    []string{"Joins", "Complex Aggregations"},
			Description: "Solve complex data integration problems using advanced join strategies.",
			Category:    "Problem Solving",
			Completed:   false,
		},
		{
			Title:       "Indexing and Performance Optimization",
			Difficulty:  "Medium",
			Concepts:    []string{"Indexes", "Query Optimization"},
			Description: "Improve query performance by analyzing different indexing strategies.",
			Category:    "Performance Tuning",
			Completed:   false,
		},
	}
}
