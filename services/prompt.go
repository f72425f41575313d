package services

import (
	"fmt"
	"strings"

	"journey-backend/models"
)

// CounselorSystemPrompt frames the assistant for every completion call.
const CounselorSystemPrompt = "You are an experienced high school guidance counselor helping students plan their path toward a career goal."

// RecommendationPrompt asks for next-step recommendations as structured
// JSON (parser Mode A). Completed milestone titles are included so the
// model does not repeat finished work.
func RecommendationPrompt(user models.User, roadmap *models.CareerRoadmap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student profile: grade %d, career goal %q, school %q, location %q.\n",
		user.Grade, user.CareerGoal, user.School, user.Location)
	if len(user.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(user.Interests, ", "))
	}
	if roadmap != nil {
		completed := []string{}
		for _, m := range roadmap.Milestones {
			if m.IsCompleted {
				completed = append(completed, m.Title)
			}
		}
		if len(completed) > 0 {
			fmt.Fprintf(&b, "Already completed: %s.\n", strings.Join(completed, ", "))
		}
	}
	b.WriteString("Suggest 3-5 next milestones for this student. Respond with a single JSON object of the form ")
	b.WriteString(`{"recommendations":[{"title":"...","description":"...","gradeLevel":10,"category":"academic|extracurricular|skill|test|application","dueDate":"YYYY-MM-DD","resources":[{"title":"...","description":"...","url":"...","type":"online|book|video|course|tool"}]}]}`)
	b.WriteString(" and nothing else.")
	return b.String()
}

// RoadmapPrompt asks for a complete roadmap as an outline (parser Mode B):
// category section headers, one item per line, with [Grade N] tags on
// milestones and [Type] tags on resources.
func RoadmapPrompt(user models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a career roadmap for a grade %d student whose goal is %q.\n", user.Grade, user.CareerGoal)
	if len(user.Interests) > 0 {
		fmt.Fprintf(&b, "Their interests are: %s.\n", strings.Join(user.Interests, ", "))
	}
	b.WriteString("Organize the plan under the section headers ACADEMIC, EXTRACURRICULAR, SKILL, TEST, APPLICATION and RESOURCES.\n")
	b.WriteString("Under each milestone section write one milestone per line as: - [Grade N] Title: description.\n")
	b.WriteString("Under RESOURCES write one per line as: - [Online|Book|Video|Course|Tool] Title: description with a URL if available.")
	return b.String()
}
