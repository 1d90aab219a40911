package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/campaignrefs/pkg/text"
)

func ExampleRegexReplacer_ReplaceText() {
	replacer := text.NewRegexReplacer()

	rules := []text.ReplacementRule{
		{
			Pattern:     `Strong Yes - Will vote for Tanveer`,
			Replacement: `Strong Yes - Will vote for {candidateName}`,
		},
		{
			Pattern:     `Leaning No - Not into Tanveer`,
			Replacement: `Leaning No - Not into {candidateName}`,
		},
	}

	content := strings.NewReader(`label="Strong Yes - Will vote for Tanveer" / label="Leaning No - Not into Tanveer"`)

	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: label="Strong Yes - Will vote for {candidateName}" / label="Leaning No - Not into {candidateName}"
	// Changes: 2
	// Was Modified: true
}

func ExampleRegexReplacer_ValidateRules() {
	replacer := text.NewRegexReplacer()

	rules := []text.ReplacementRule{
		{Pattern: `foo`, Replacement: "bar", FileFilterGlob: "**/*.cs"},
		{Pattern: `baz(`, Replacement: "qux"},
	}

	err := replacer.ValidateRules(rules)
	fmt.Println(err != nil)

	// Output:
	// true
}
