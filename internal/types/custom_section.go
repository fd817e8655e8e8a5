package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentKind tags the variant held by a CustomSectionContent.
type ContentKind string

const (
	ContentText         ContentKind = "text"
	ContentList         ContentKind = "list"
	ContentAchievements ContentKind = "achievements"
)

// AchievementItem is one entry of an achievements-style custom section.
type AchievementItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CustomSectionContent is a tagged variant: free text, a list of strings, or a list of
// achievement items. Only the field matching Kind is meaningful.
type CustomSectionContent struct {
	Kind         ContentKind
	Text         string
	Items        []string
	Achievements []AchievementItem
}

// TextContent builds a text variant.
func TextContent(text string) CustomSectionContent {
	return CustomSectionContent{Kind: ContentText, Text: text}
}

// ListContent builds a list variant.
func ListContent(items ...string) CustomSectionContent {
	return CustomSectionContent{Kind: ContentList, Items: items}
}

// AchievementsContent builds an achievements variant.
func AchievementsContent(items ...AchievementItem) CustomSectionContent {
	return CustomSectionContent{Kind: ContentAchievements, Achievements: items}
}

// IsEmpty reports whether the content carries nothing to display.
func (c CustomSectionContent) IsEmpty() bool {
	switch c.Kind {
	case ContentText:
		return c.Text == ""
	case ContentList:
		return len(c.Items) == 0
	case ContentAchievements:
		return len(c.Achievements) == 0
	default:
		return true
	}
}

type taggedContent struct {
	Type         ContentKind       `json:"type"`
	Text         string            `json:"text,omitempty"`
	Items        []string          `json:"items,omitempty"`
	Achievements []AchievementItem `json:"achievements,omitempty"`
}

// MarshalJSON encodes the content as a tagged object.
func (c CustomSectionContent) MarshalJSON() ([]byte, error) {
	out := taggedContent{Type: c.Kind}
	switch c.Kind {
	case ContentText:
		out.Text = c.Text
	case ContentList:
		out.Items = c.Items
	case ContentAchievements:
		out.Achievements = c.Achievements
	case "":
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown custom section content type: %q", c.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the tagged object form, and also a bare string (text) or a
// bare array of strings (list) as written by older editor versions.
func (c *CustomSectionContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = CustomSectionContent{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode text content: %w", err)
		}
		*c = TextContent(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to decode list content: %w", err)
		}
		*c = ListContent(items...)
		return nil
	}

	var tagged taggedContent
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("failed to decode custom section content: %w", err)
	}

	switch tagged.Type {
	case ContentText:
		*c = TextContent(tagged.Text)
	case ContentList:
		*c = ListContent(tagged.Items...)
	case ContentAchievements:
		*c = AchievementsContent(tagged.Achievements...)
	default:
		return fmt.Errorf("unknown custom section content type: %q", tagged.Type)
	}
	return nil
}
