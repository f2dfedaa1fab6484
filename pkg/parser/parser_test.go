package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoBlockResponse = `Here is your plan:

**1. Title:** Advanced Window Functions
**Difficulty:** Hard
**Concepts:** Window Functions, CTEs, Ranking
**Description:** Compute running totals and rank rows per partition.

**2. Title:** Basic Joins
**Difficulty:** Easy
**Concepts:** Joins
**Description:** Combine two tables with an inner join.`

func TestParseWellFormedBlocks(t *testing.T) {
	qs := Markdown().Parse(twoBlockResponse)
	require.Len(t, qs, 2)

	assert.Equal(t, "Advanced Window Functions", qs[0].Title)
	assert.Equal(t, "Hard", qs[0].Difficulty)
	assert.Equal(t, []string{"Window Functions", "CTEs", "Ranking"}, qs[0].Concepts)
	assert.Equal(t, "Compute running totals and rank rows per partition.", qs[0].Description)
	assert.Equal(t, "Problem Solving", qs[0].Category)
	assert.False(t, qs[0].Completed)

	assert.Equal(t, "Basic Joins", qs[1].Title)
	assert.Equal(t, "Easy", qs[1].Difficulty)
	assert.Equal(t, []string{"Joins"}, qs[1].Concepts)
	assert.Equal(t, "Combine two tables with an inner join.", qs[1].Description)
}

func TestParseSingleLineBlocks(t *testing.T) {
	text := "**1. Title:** A **Difficulty:** Medium **Concepts:** X, Y **Description:** Do the thing. " +
		"**2. Title:** B **Difficulty:** Hard **Concepts:** Z **Description:** Do the other thing."
	qs := Markdown().Parse(text)
	require.Len(t, qs, 2)
	assert.Equal(t, "A", qs[0].Title)
	assert.Equal(t, "Do the thing.", qs[0].Description)
	assert.Equal(t, "B", qs[1].Title)
	assert.Equal(t, "Do the other thing.", qs[1].Description)
}

func TestParsePreservesOrder(t *testing.T) {
	text := "**3. Title:** Third **Difficulty:** Easy **Concepts:** C **Description:** d3\n" +
		"**1. Title:** First **Difficulty:** Easy **Concepts:** C **Description:** d1\n"
	qs := Markdown().Parse(text)
	require.Len(t, qs, 2)
	// Order of appearance in the text, not numbering.
	assert.Equal(t, "Third", qs[0].Title)
	assert.Equal(t, "First", qs[1].Title)
}

func TestParseNoMatches(t *testing.T) {
	assert.Empty(t, Markdown().Parse(""))
	assert.Empty(t, Markdown().Parse("The model answered in free prose instead."))
	// Different heading style does not match the fixed template.
	assert.Empty(t, Markdown().Parse("1. Title: No emphasis markers\nDifficulty: Easy"))
}

func TestParseSkipsMalformedBlock(t *testing.T) {
	text := "**1. Title:** Missing fields here\n" +
		"**2. Title:** Complete **Difficulty:** Medium **Concepts:** SQL **Description:** ok"
	qs := Markdown().Parse(text)
	require.Len(t, qs, 1)
	assert.Equal(t, "Complete", qs[0].Title)
}

func TestParseDoesNotValidateDifficulty(t *testing.T) {
	text := "**1. Title:** T **Difficulty:** Impossible **Concepts:** SQL **Description:** d"
	qs := Markdown().Parse(text)
	require.Len(t, qs, 1)
	assert.Equal(t, "Impossible", qs[0].Difficulty)
}

func TestDefaults(t *testing.T) {
	qs := Defaults()
	require.Len(t, qs, 2)

	assert.Equal(t, "Advanced SQL Join Techniques", qs[0].Title)
	assert.Equal(t, "Hard", qs[0].Difficulty)
	assert.Equal(t, []string{"Joins", "Complex Aggregations"}, qs[0].Concepts)
	assert.Equal(t, "Problem Solving", qs[0].Category)

	assert.Equal(t, "Indexing and Performance Optimization", qs[1].Title)
	assert.Equal(t, "Medium", qs[1].Difficulty)
	assert.Equal(t, []string{"Indexes", "Query Optimization"}, qs[1].Concepts)
	assert.Equal(t, "Performance Tuning", qs[1].Category)

	for _, q := range qs {
		assert.False(t, q.Completed)
		assert.NotEmpty(t, q.Description)
	}
}
