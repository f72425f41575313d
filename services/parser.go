package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"journey-backend/models"
)

// The model replies in one of two shapes: a JSON object for the
// recommendations flow (Mode A) and a loose section/line outline for the
// full-roadmap flow (Mode B). Both parsers are deliberately forgiving at
// the element level and strict only about overall structure.

var (
	// Greedy: first "{" to last "}", tolerating prose and markdown fences
	// around the JSON.
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	gradeTagPattern   = regexp.MustCompile(`\[Grade (\d+)\]`)
	typeTagPattern    = regexp.MustCompile(`^\[([^\]]+)\]`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
)

// Mode B header keywords, checked in this fixed order; first match wins.
var milestoneSectionKeywords = []struct {
	keyword  string
	category models.MilestoneCategory
}{
	{"academic", models.MilestoneAcademic},
	{"extracurricular", models.MilestoneExtracurricular},
	{"skill", models.MilestoneSkill},
	{"test", models.MilestoneTest},
	{"application", models.MilestoneApplication},
}

type recommendationPayload struct {
	Recommendations []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		GradeLevel  int    `json:"gradeLevel"`
		Category    string `json:"category"`
		DueDate     string `json:"dueDate"`
		Resources   []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Type        string `json:"type"`
		} `json:"resources"`
	} `json:"recommendations"`
}

// ParseRecommendations handles Mode A. An entry with an unrecognized
// category is dropped without failing the batch; a resource with an
// unrecognized type is dropped without failing its recommendation. Only
// structural failures (no JSON object, undecodable top-level shape) fail
// the whole call.
func ParseRecommendations(raw string) ([]models.AIRecommendation, error) {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object found in AI response", models.ErrInvalidResponse)
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return nil, fmt.Errorf("%w: undecodable recommendations payload: %v", models.ErrInvalidResponse, err)
	}

	recs := []models.AIRecommendation{}
	for _, entry := range payload.Recommendations {
		category, ok := models.ParseMilestoneCategory(entry.Category)
		if !ok {
			continue
		}
		rec := models.AIRecommendation{
			Title:       entry.Title,
			Description: entry.Description,
			GradeLevel:  entry.GradeLevel,
			Category:    category,
			Resources:   []models.Resource{},
		}
		if entry.DueDate != "" {
			// A bad due date is non-fatal: the recommendation keeps a
			// nil due date instead of failing.
			if due, err := time.Parse("2006-01-02", entry.DueDate); err == nil {
				rec.DueDate = &due
			}
		}
		for _, res := range entry.Resources {
			resType, ok := models.ParseResourceType(res.Type)
			if !ok {
				continue
			}
			rec.Resources = append(rec.Resources, models.Resource{
				ID:          uuid.NewString(),
				Title:       res.Title,
				Description: res.Description,
				URL:         res.URL,
				Type:        resType,
				GradeLevel:  entry.GradeLevel,
				Category:    models.ResourceCatSkill,
			})
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ParseRoadmapOutline handles Mode B. Lines before the first section
// header are ignored; header matching is line-level keyword containment
// with "resource" checked after the milestone categories.
func ParseRoadmapOutline(raw string, defaultGrade int) ([]models.Milestone, []models.Resource) {
	milestones := []models.Milestone{}
	resources := []models.Resource{}

	var currentCategory models.MilestoneCategory
	haveCategory := false
	inResources := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lowered := strings.ToLower(line)
		if category, ok := matchSectionHeader(lowered); ok {
			currentCategory = category
			haveCategory = true
			inResources = false
			continue
		}
		if strings.Contains(lowered, "resource") {
			inResources = true
			continue
		}

		switch {
		case inResources:
			if res, ok := parseResourceLine(line, defaultGrade); ok {
				resources = append(resources, res)
			}
		case haveCategory:
			milestones = append(milestones, parseMilestoneLine(line, currentCategory, defaultGrade))
		}
	}
	return milestones, resources
}

func matchSectionHeader(lowered string) (models.MilestoneCategory, bool) {
	for _, section := range milestoneSectionKeywords {
		if strings.Contains(lowered, section.keyword) {
			return section.category, true
		}
	}
	return "", false
}

func parseMilestoneLine(line string, category models.MilestoneCategory, defaultGrade int) models.Milestone {
	grade := defaultGrade
	if tag := gradeTagPattern.FindStringSubmatch(line); tag != nil {
		if n, err := strconv.Atoi(tag[1]); err == nil {
			grade = n
		}
		line = gradeTagPattern.ReplaceAllString(line, "")
	}
	title, description := splitTitleLine(stripBullet(line))
	return models.Milestone{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		IsCompleted: false,
		GradeLevel:  grade,
		Category:    category,
	}
}

// parseResourceLine requires a leading [Type] tag resolving against the
// resource type set; anything else drops the line entirely.
func parseResourceLine(line string, defaultGrade int) (models.Resource, bool) {
	line = stripBullet(line)
	tag := typeTagPattern.FindStringSubmatch(line)
	if tag == nil {
		return models.Resource{}, false
	}
	resType, ok := models.ParseResourceType(tag[1])
	if !ok {
		return models.Resource{}, false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, tag[0]))

	title, description := splitTitleLine(line)
	url := ""
	if found := urlPattern.FindString(description); found != "" {
		url = found
		description = strings.TrimSpace(strings.Replace(description, found, "", 1))
	}
	return models.Resource{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		URL:         url,
		Type:        resType,
		GradeLevel:  defaultGrade,
		Category:    models.ResourceCatSkill,
	}, true
}

// splitTitleLine splits on the first colon: title before, description
// after. A line without a colon is all title.
func splitTitleLine(line string) (string, string) {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line), ""
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
}
