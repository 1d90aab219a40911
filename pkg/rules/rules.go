// Package rules holds the static replacement tables and the fixed set of files they target.
//
// Patterns are regular expressions matched against raw source text, so punctuation that is
// also a regex metacharacter stays escaped exactly as written here. Replacements are inserted
// verbatim: the interpolation syntax they carry ({_campaignSettings.CampaignName},
// {candidateName}, ...) belongs to the rewritten C# and TSX code and is never evaluated here.
package rules

import (
	"github.com/walteh/campaignrefs/pkg/text"
)

const (
	// BackendGlob selects the C# sources of the API project.
	BackendGlob = "**/*.cs"

	// FrontendGlob selects the React sources of the UI project.
	FrontendGlob = "**/*.{ts,tsx}"

	// VoterModelGlob selects the voter model holding the support-level enum.
	VoterModelGlob = "**/Models/Voter.cs"
)

// Project-relative paths of the files the migration rewrites.
const (
	EmailServiceFile = "HooverCanvassingApi/Services/EmailService.cs"
	VoterModelFile   = "HooverCanvassingApi/Models/Voter.cs"
)

var backendFiles = []string{
	"HooverCanvassingApi/Controllers/AdminController.cs",
	"HooverCanvassingApi/Controllers/OptInController.cs",
	"HooverCanvassingApi/Controllers/VolunteerResourcesController.cs",
}

var frontendFiles = []string{
	"src/components/CompleteRegistration.tsx",
	"src/components/ContactModal.tsx",
	"src/components/OptInForm.tsx",
}

// environmentVariables are the frontend settings an operator still has to provide
// after the migration.
var environmentVariables = []string{
	"REACT_APP_CANDIDATE_NAME",
	"REACT_APP_CAMPAIGN_NAME",
	"REACT_APP_CAMPAIGN_TITLE",
	"REACT_APP_CONSENT_TEXT",
}

var backend = []text.ReplacementRule{
	// email subjects
	{Pattern: `"Reset Your Password - Tanveer for Hoover Campaign"`, Replacement: `$"Reset Your Password - {_campaignSettings.CampaignName}"`},
	{Pattern: `"New Voter Contact - Tanveer for Hoover Campaign"`, Replacement: `$"New Voter Contact - {_campaignSettings.CampaignName}"`},
	{Pattern: "\"\U0001F5D1\uFE0F Contact Deleted - Tanveer for Hoover Campaign\"", Replacement: "$\"\U0001F5D1\uFE0F Contact Deleted - {_campaignSettings.CampaignName}\""},
	{Pattern: `"You\'re Invited to Join Tanveer for Hoover Campaign"`, Replacement: `$"You\'re Invited to Join {_campaignSettings.CampaignName}"`},
	{Pattern: `"Welcome to Tanveer for Hoover Campaign Team!"`, Replacement: `$"Welcome to {_campaignSettings.CampaignName} Team!"`},
	{Pattern: `"Registration Update - Tanveer for Hoover Campaign"`, Replacement: `$"Registration Update - {_campaignSettings.CampaignName}"`},

	// html bodies
	{Pattern: `<h1 style=\'color: #673ab7; margin: 0;\'>Tanveer for Hoover Campaign</h1>`, Replacement: `<h1 style=\'color: #673ab7; margin: 0;\'>{_campaignSettings.CampaignName}</h1>`},
	{Pattern: `Tanveer for Hoover Campaign Team`, Replacement: `{_campaignSettings.CampaignName} Team`},
	{Pattern: `The Tanveer for Hoover Campaign Team`, Replacement: `The {_campaignSettings.CampaignName} Team`},
	{Pattern: `Tanveer Patel for Hoover City Council`, Replacement: `{_campaignSettings.CampaignTitle}`},
	{Pattern: `Paid for by Tanveer for Hoover`, Replacement: `{_campaignSettings.PaidForBy}`},

	// opt-in consent
	{
		Pattern:     `"I agree to receive texts and robocalls from Tanveer for Hoover. Message and data rates may apply. Reply STOP to opt out."`,
		Replacement: `_campaignSettings.OptInConsentText`,
	},

	// canvassing script
	{
		Pattern:     `"Hi, my name is \[Your Name\] and I\'m a volunteer for Tanveer Patel\'s campaign for Hoover City Council\\.\\n\\nI\'d like to take just a moment to talk to you about the upcoming election\. Tanveer is running to bring fresh perspectives and innovative solutions to our community\\.\\n\\nAre you planning to vote in the upcoming election\?"`,
		Replacement: `_campaignSettings.DefaultCanvassingScript`,
	},
}

var frontend = []text.ReplacementRule{
	{Pattern: `Welcome to the Tanveer for Hoover Campaign Team!`, Replacement: `Welcome to the {campaignName} Team!`},
	{Pattern: `How does this voter feel about Tanveer\'s candidacy\?`, Replacement: `How does this voter feel about {candidateName}\'s candidacy?`},
	{Pattern: `Strong Yes - Will vote for Tanveer`, Replacement: `Strong Yes - Will vote for {candidateName}`},
	{Pattern: `Leaning Yes - May vote for Tanveer`, Replacement: `Leaning Yes - May vote for {candidateName}`},
	{Pattern: `Leaning No - Not into Tanveer`, Replacement: `Leaning No - Not into {candidateName}`},
	{Pattern: `Strong No - Definitely not voting for Tanveer`, Replacement: `Strong No - Definitely not voting for {candidateName}`},
	{Pattern: `Thank you for joining Tanveer for Hoover\'s campaign updates!`, Replacement: `Thank you for joining {campaignName}\'s campaign updates!`},
	{Pattern: `I agree to receive texts and robocalls from Tanveer for Hoover\.`, Replacement: `I agree to receive texts and robocalls from {campaignName}.`},
}

var voterEnum = []text.ReplacementRule{
	{Pattern: `// Strong yes - will Vote for Tanveer`, Replacement: `// Strong yes - will vote for the candidate`},
	{
		Pattern:     `// Leaning yes - May vote for Tanveer - but hadn\'t heard of her before, or was a little softer enthusiasm`,
		Replacement: `// Leaning yes - May vote for the candidate - but hadn\'t heard of them before, or was a little softer enthusiasm`,
	},
	{Pattern: `// Leaning against - Not into Tanveer`, Replacement: `// Leaning against - Not supportive of the candidate`},
	{Pattern: `// Strong no - Definitely not voting for Tanveer`, Replacement: `// Strong no - Definitely not voting for the candidate`},
}

// Backend returns the rules applied to the API's C# files.
func Backend() []text.ReplacementRule {
	return withGlob(backend, BackendGlob)
}

// Frontend returns the rules applied to the UI's TSX files.
func Frontend() []text.ReplacementRule {
	return withGlob(frontend, FrontendGlob)
}

// VoterEnum returns the rules applied to the support-level enum comments.
func VoterEnum() []text.ReplacementRule {
	return withGlob(voterEnum, VoterModelGlob)
}

// BackendFiles returns the backend files, other than the email service, that take the
// Backend rules.
func BackendFiles() []string {
	return append([]string(nil), backendFiles...)
}

// FrontendFiles returns the frontend files that take the Frontend rules.
func FrontendFiles() []string {
	return append([]string(nil), frontendFiles...)
}

// EnvironmentVariables returns the names listed in the closing note.
func EnvironmentVariables() []string {
	return append([]string(nil), environmentVariables...)
}

// withGlob returns a copy of table with every rule scoped to glob, so callers can never
// mutate the package tables.
func withGlob(table []text.ReplacementRule, glob string) []text.ReplacementRule {
	out := make([]text.ReplacementRule, len(table))
	for i, r := range table {
		r.FileFilterGlob = glob
		out[i] = r
	}
	return out
}
