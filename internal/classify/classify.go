// Package classify decides whether an article is about AI in design at
// all, and if so which topical bucket it belongs to.
//
// Classification is a pure function of the article text. The category
// table is an ordered list, not a map: the first category whose keywords
// match wins, so iteration order is part of the contract and covered by
// tests.
package classify

import "strings"

// Category ids. All and Favorites are pseudo-categories used only for
// filtering; they carry no keywords and are skipped during classification.
const (
	All             = "all"
	AIDesignTools   = "ai-design-tools"
	Visualization   = "visualization"
	Automation      = "automation"
	ArchitectureAI  = "architecture-ai"
	InteriorDesign  = "interior-design-ai"
	IndustryNews    = "industry-news"
	Favorites       = "favorites"
	DefaultCategory = IndustryNews
)

// Category is one fixed topical bucket.
type Category struct {
	ID       string
	Name     string
	Keywords []string
}

// categories is the canonical table. Order matters: earlier entries win
// ties, so the most specific buckets come first.
var categories = []Category{
	{ID: All, Name: "All News"},
	{ID: AIDesignTools, Name: "AI Design Tools", Keywords: []string{
		"midjourney", "stable diffusion", "dall-e", "dalle", "firefly",
		"text-to-image", "image generation", "generative design",
		"ai tool", "design tool", "runway", "prompt",
	}},
	{ID: Visualization, Name: "Visualization", Keywords: []string{
		"render", "visualization", "visualisation", "archviz", "3d model",
		"real-time", "unreal engine", "twinmotion", "lumion", "walkthrough",
	}},
	{ID: Automation, Name: "Automation", Keywords: []string{
		"automation", "automate", "workflow", "parametric", "grasshopper",
		"scripting", "plugin", "bim", "revit", "no-code",
	}},
	{ID: ArchitectureAI, Name: "AI in Architecture", Keywords: []string{
		"architecture", "architect", "building design", "urban", "facade",
		"floor plan", "construction", "masterplan", "zoning",
	}},
	{ID: InteriorDesign, Name: "AI in Interior Design", Keywords: []string{
		"interior", "furniture", "decor", "home design", "staging",
		"renovation", "room", "lighting design",
	}},
	{ID: IndustryNews, Name: "Industry News", Keywords: []string{
		"launch", "funding", "acquisition", "partnership", "startup",
		"report", "study", "survey",
	}},
	{ID: Favorites, Name: "Favorites"},
}

// relevanceKeywords is the gate an article must pass to survive at all.
// Matching is plain substring over the lowercased text; short terms like
// "ai" cast a wide net on purpose, this is a best-effort filter.
var relevanceKeywords = []string{
	"ai", "a.i.", "artificial intelligence", "machine learning",
	"neural", "generative", "midjourney", "stable diffusion", "dall-e",
	"gpt", "chatgpt", "llm", "deep learning", "text-to-image",
	"diffusion model", "copilot",
}

// Categories returns the full table in canonical order, including the
// pseudo-categories.
func Categories() []Category {
	return categories
}

// ByID looks up a category by its id.
func ByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Relevant reports whether the article text passes the AI-relevance gate.
func Relevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range relevanceKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify returns the category id for an article, or ok=false when the
// article fails the relevance gate and must be dropped. Relevant articles
// that match no category's keywords fall back to DefaultCategory.
func Classify(title, description string) (string, bool) {
	if !Relevant(title, description) {
		return "", false
	}

	text := strings.ToLower(title + " " + description)
	for _, c := range categories {
		if c.ID == All || c.ID == Favorites {
			continue
		}
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				return c.ID, true
			}
		}
	}
	return DefaultCategory, true
}
