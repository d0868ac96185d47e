package factsheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"presscraft/internal/entity"
)

// CleanJSONResponse strips code fences and any prose around the JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// Parse decodes an LLM answer into a FactSheet. Scalar fields of any JSON
// type are stringified; features and coreMessages become empty lists when
// they are missing or not lists. Only undecodable input is an error.
func Parse(content string) (entity.FactSheet, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(CleanJSONResponse(content)), &raw); err != nil {
		return entity.FactSheet{}, fmt.Errorf("failed to parse fact sheet: %w", err)
	}
	return FromMap(raw), nil
}

// FromMap coerces a loosely typed object into a FactSheet.
func FromMap(raw map[string]interface{}) entity.FactSheet {
	fs := entity.FactSheet{
		BrandName:     stringify(raw["brandName"]),
		ProductName:   stringify(raw["productName"]),
		Definition:    stringify(raw["definition"]),
		Features:      stringList(raw["features"]),
		UsageContext:  stringify(raw["usageContext"]),
		CoreMessages:  stringList(raw["coreMessages"]),
		LaunchDate:    stringify(raw["launchDate"]),
		DiscountPromo: stringify(raw["discountPromo"]),
		Channels:      stringify(raw["channels"]),
		CommentIntent: stringify(raw["commentIntent"]),
	}
	if t := stringify(raw["prType"]); t != "" {
		fs.PrType = entity.ParsePrType(t)
	}
	return fs
}

// Normalize guarantees list fields are non-nil so they encode as [].
func Normalize(fs entity.FactSheet) entity.FactSheet {
	if fs.Features == nil {
		fs.Features = []string{}
	}
	if fs.CoreMessages == nil {
		fs.CoreMessages = []string{}
	}
	return fs
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringify(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
