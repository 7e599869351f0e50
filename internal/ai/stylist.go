// Package ai wraps the Gemini API behind the Stylist service. The model
// is treated as a black box that returns best-effort JSON: hard API
// errors surface as wrapped errors, while malformed or partial JSON
// degrades to empty collections.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nitinog10/odoo-rewear-community-exchange/internal/models"
)

const defaultModel = "gemini-1.5-flash"

// Stylist holds the Gemini client used for categorization, match
// suggestions and outfit recommendations.
type Stylist struct {
	client *genai.Client
	model  string
}

// NewStylist initializes the Gemini client.
func NewStylist(ctx context.Context, apiKey string) (*Stylist, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Stylist{client: client, model: defaultModel}, nil
}

// Close releases the underlying client.
func (s *Stylist) Close() error {
	return s.client.Close()
}

// generateJSON sends one prompt and returns the raw JSON text of the
// response, with any markdown code fences stripped.
func (s *Stylist) generateJSON(ctx context.Context, system, prompt string) ([]byte, error) {
	model := s.client.GenerativeModel(s.model)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return []byte(stripFences(sb.String())), nil
}

// stripFences removes a leading/trailing markdown code fence so the
// payload can be fed to json.Unmarshal directly.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// ItemAnalysis is the categorization result for a listed item.
type ItemAnalysis struct {
	SuggestedCategory string   `json:"suggestedCategory"`
	SuggestedType     string   `json:"suggestedType"`
	SuggestedColor    string   `json:"suggestedColor"`
	SuggestedTags     []string `json:"suggestedTags"`
	Confidence        float64  `json:"confidence"`
}

// AnalyzeItem asks the model to categorize a clothing item from its
// title and description. Missing fields fall back to safe defaults.
func (s *Stylist) AnalyzeItem(ctx context.Context, title, description string) (*ItemAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze this clothing item and suggest categorization:

Title: %s
Description: %s

Categories: Men, Women, Kids, Unisex
Types: Shirt, T-Shirt, Blouse, Dress, Pants, Jeans, Shorts, Skirt, Jacket, Coat, Sweater, Hoodie, Shoes, Boots, Sneakers, Sandals, Accessories, Belt, Bag, Hat, Scarf, Jewelry
Colors: Black, White, Gray, Navy, Blue, Red, Pink, Green, Yellow, Orange, Purple, Brown, Beige, Cream, Multicolor
Tags: Casual, Formal, Business, Vintage, Designer, Sustainable, Handmade, Luxury, Sporty, Bohemian, Minimalist, Trendy

Respond in JSON format:
{
  "suggestedCategory": "Women",
  "suggestedType": "Dress",
  "suggestedColor": "Blue",
  "suggestedTags": ["Casual", "Summer"],
  "confidence": 0.85
}`, title, description)

	raw, err := s.generateJSON(ctx,
		"You are a fashion categorization expert. Analyze clothing items and suggest appropriate categories, types, colors, and tags.",
		prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze item: %w", err)
	}

	analysis := &ItemAnalysis{}
	json.Unmarshal(raw, analysis)
	if analysis.SuggestedCategory == "" {
		analysis.SuggestedCategory = "Unisex"
	}
	if analysis.SuggestedType == "" {
		analysis.SuggestedType = "Shirt"
	}
	if analysis.SuggestedColor == "" {
		analysis.SuggestedColor = "Multicolor"
	}
	if analysis.SuggestedTags == nil {
		analysis.SuggestedTags = []string{}
	}
	if analysis.Confidence == 0 {
		analysis.Confidence = 0.5
	}
	return analysis, nil
}

// MatchAnalysis is the stylist's verdict on which catalog items pair
// well with a base item.
type MatchAnalysis struct {
	Suggestions        []models.SuggestedItem `json:"suggestions"`
	Reasoning          string                 `json:"reasoning"`
	ColorCompatibility string                 `json:"colorCompatibility"`
	StyleNotes         string                 `json:"styleNotes"`
}

// SuggestMatches asks the model to pick the best matching items for a
// base item from the available candidates.
func (s *Stylist) SuggestMatches(ctx context.Context, base *models.Item, candidates []models.Item) (*MatchAnalysis, error) {
	var listing strings.Builder
	for i, item := range candidates {
		fmt.Fprintf(&listing, "%d. ID: %s\n   Title: %s\n   Type: %s\n   Category: %s\n   Color: %s\n   Brand: %s\n\n",
			i+1, item.ID, item.Title, item.Type, item.Category,
			strOrUnknown(item.Color), strOrUnknown(item.Brand))
	}

	prompt := fmt.Sprintf(`Analyze the base item and suggest the best matching items from the available options.

Base Item:
- Title: %s
- Type: %s
- Category: %s
- Color: %s
- Brand: %s

Available Items to Match:
%s
Please analyze color theory, seasonal compatibility, style cohesion, and current fashion trends. Provide suggestions in JSON format:

{
  "suggestions": [
    {
      "itemId": "item_id_here",
      "matchScore": 85,
      "reasoning": "Detailed explanation of why this item matches well"
    }
  ],
  "reasoning": "Overall styling philosophy and approach",
  "colorCompatibility": "Analysis of color harmony and contrast",
  "styleNotes": "Additional styling tips and recommendations"
}

Provide up to 5 best matches with scores above 70.`,
		base.Title, base.Type, base.Category,
		strOrUnknown(base.Color), strOrUnknown(base.Brand), listing.String())

	raw, err := s.generateJSON(ctx,
		"You are a professional fashion stylist with expertise in color theory, seasonal styling, and sustainable fashion. Provide detailed, actionable styling advice in JSON format.",
		prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze outfit compatibility: %w", err)
	}
	return parseMatchAnalysis(raw), nil
}

func parseMatchAnalysis(raw []byte) *MatchAnalysis {
	analysis := &MatchAnalysis{}
	json.Unmarshal(raw, analysis)
	if analysis.Suggestions == nil {
		analysis.Suggestions = []models.SuggestedItem{}
	}
	if analysis.Reasoning == "" {
		analysis.Reasoning = "No analysis available"
	}
	return analysis
}

// OutfitPlan is one outfit combination built from a user's wardrobe.
type OutfitPlan struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Occasion    string   `json:"occasion"`
	Seasonality string   `json:"seasonality"`
}

// StyleReport is the personalized recommendation set for one user.
type StyleReport struct {
	Outfits          []OutfitPlan `json:"outfits"`
	PersonalizedTips []string     `json:"personalizedTips"`
}

// StyleRecommendations asks the model to combine the user's own items
// into complete outfits.
func (s *Stylist) StyleRecommendations(ctx context.Context, user *models.User, items []models.Item) (*StyleReport, error) {
	prefsJSON, _ := json.Marshal(user.StylePreferences)

	var wardrobe strings.Builder
	for i, item := range items {
		fmt.Fprintf(&wardrobe, "%d. %s (%s, %s, %s)\n",
			i+1, item.Title, item.Type, strOrUnknown(item.Color), item.Category)
	}

	prompt := fmt.Sprintf(`You are a personal fashion stylist creating personalized outfit recommendations for a user.

User Profile:
- Style preferences: %s
- Available items: %d

User's Wardrobe:
%s
Create 3-5 complete outfit combinations using the user's existing items. Consider seasonal trends, color coordination and contrast, occasion appropriateness, style cohesion and versatility.

Respond in JSON format:
{
  "outfits": [
    {
      "name": "Casual Weekend",
      "description": "Comfortable yet stylish for relaxed activities",
      "items": ["item_id_1", "item_id_2", "item_id_3"],
      "occasion": "Casual",
      "seasonality": "All seasons"
    }
  ],
  "personalizedTips": [
    "Tip 1 based on user's style",
    "Tip 2 for improving their wardrobe"
  ]
}`, string(prefsJSON), len(items), wardrobe.String())

	raw, err := s.generateJSON(ctx,
		"You are a personal fashion stylist specializing in sustainable fashion and wardrobe optimization. Create practical, wearable outfit combinations.",
		prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate style recommendations: %w", err)
	}
	return parseStyleReport(raw), nil
}

func parseStyleReport(raw []byte) *StyleReport {
	report := &StyleReport{}
	json.Unmarshal(raw, report)
	if report.Outfits == nil {
		report.Outfits = []OutfitPlan{}
	}
	if report.PersonalizedTips == nil {
		report.PersonalizedTips = []string{}
	}
	return report
}

// FashionRecommendations generates outfit recommendations from the
// StyleAI preference form.
func (s *Stylist) FashionRecommendations(ctx context.Context, profile *models.FashionProfile) ([]models.Recommendation, error) {
	prompt := fmt.Sprintf(`Generate 3 detailed fashion recommendations for someone with these preferences:
- Gender: %s
- Body Type: %s
- Skin Tone: %s
- Occasion: %s
- Season: %s
- Color Preferences: %s
- Style Preferences: %s

For each recommendation, provide:
1. A sophisticated, descriptive title for the outfit
2. Specific clothing items with exact details (fabric, cut, style) - 5-7 items per outfit
3. Concise styling tips (2-3 sentences max) with the most important advice for their body type, skin tone and occasion
4. Relevant style tags

Respond with a JSON object containing an array of recommendations with this exact structure:
{
  "recommendations": [
    {
      "title": "Sophisticated Outfit Title",
      "details": ["Specific item with fabric/cut details", "Another specific item"],
      "tips": "Professional styling advice with specific techniques and reasoning",
      "tags": ["occasion", "season", "style", "bodytype"]
    }
  ]
}`,
		profile.Gender, profile.BodyType, profile.SkinTone, profile.Occasion,
		profile.Season,
		valueOr(profile.ColorPreferences, "No specific preference"),
		valueOr(profile.StylePreferences, "Open to suggestions"))

	raw, err := s.generateJSON(ctx,
		"You are a professional fashion stylist and personal shopper. Always respond with valid JSON in the exact format requested.",
		prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fashion recommendations: %w", err)
	}
	return parseRecommendations(raw), nil
}

func parseRecommendations(raw []byte) []models.Recommendation {
	var wrapper struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	json.Unmarshal(raw, &wrapper)
	if wrapper.Recommendations == nil {
		return []models.Recommendation{}
	}
	return wrapper.Recommendations
}

func strOrUnknown(s *string) string {
	if s == nil || *s == "" {
		return "Unknown"
	}
	return *s
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
