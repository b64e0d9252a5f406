package analysis

import (
	"fmt"

	"github.com/hcaudit/hcaudit/internal/model"
)

// MaxContentChars caps the article text embedded in the prompt. Longer
// articles are truncated silently; a truncation marker would itself be
// content the collaborator might comment on.
const MaxContentChars = 15000

// auditPromptFormat is the audit framework sent to the analysis
// collaborator. Order of the fmt verbs: declared segment, title, URL,
// section, declared segment again, article text.
const auditPromptFormat = `You are an expert Help Center content auditor for Etsy's support documentation (help.etsy.com). Analyze the following article against Etsy's content standards.

## Audit Framework

### 1. Audience Detection & Mismatch
- Identify if article is for: Buyer, Seller, or Both
- Declared segment from URL: %s
- Flag mismatches (e.g., buyer article with seller-only terms like "Shop Manager", "listing", "order fulfillment")
- Look for inappropriate cross-linking (buyer articles linking to seller tools or vice versa)

### 2. ABT Standard (Actionable, Brief, Targeted)

**Actionable:**
- Are steps complete and followable?
- Does it include BOTH web (Etsy.com) AND app (Etsy App) instructions where applicable?
- Are button names and navigation paths specific?

**Brief:**
- Is language concise?
- Flag: marketing jargon, legalese, unnecessary repetition, filler phrases
- Each sentence should add value

**Targeted:**
- Does title match user intent/search query?
- Is the most important information at the top?
- Is the scope appropriate (not too broad or narrow)?

### 3. Technical Hygiene
- Check for hardcoded language tags in links (e.g., /en-us/ should be removed for dynamic localization)
- Check for outdated UI references
- Verify internal links use relative paths where appropriate

## Article to Analyze

**Title:** %s
**URL:** %s
**Section:** %s
**Declared Audience (from URL segment):** %s

**Content:**
%s

## Response Format

Respond with a JSON object containing:
` + "```json" + `
{
  "overall_score": <0-100>,
  "audience_detected": "<Buyer|Seller|Both>",
  "audience_mismatch": <true|false>,
  "audience_mismatch_reason": "<explanation if mismatch>",
  "has_web_instructions": <true|false>,
  "has_app_instructions": <true|false>,
  "issues": [
    {
      "category": "<actionable|brief|targeted|technical|audience>",
      "severity": "<critical|warning|suggestion>",
      "description": "<what's wrong>",
      "location": "<where in article, if specific>",
      "recommendation": "<how to fix>"
    }
  ],
  "hardcoded_links": ["<list of links with hardcoded language tags>"],
  "member_services_flag": <true|false>,
  "flag_reason": "<why human verification needed, if flagged>",
  "summary": "<2-3 sentence overall assessment>"
}
` + "```" + `

Be thorough but practical. Focus on issues that genuinely impact user experience.`

// BuildPrompt renders the audit prompt for one article. The article
// text is the plain text already extracted from the body markup; it is
// truncated to MaxContentChars.
func BuildPrompt(article *model.Article, text string) string {
	if len(text) > MaxContentChars {
		text = text[:MaxContentChars]
	}

	section := article.SectionName
	if section == "" {
		section = "Unknown"
	}

	audience := article.Audience().String()

	return fmt.Sprintf(auditPromptFormat,
		audience, article.Title, article.URL, section, audience, text)
}
