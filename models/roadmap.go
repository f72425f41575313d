package models

import "time"

// Milestone is one actionable roadmap task.
type Milestone struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	IsCompleted bool              `json:"isCompleted"`
	GradeLevel  int               `json:"gradeLevel"`
	Category    MilestoneCategory `json:"category"`
}

// Resource is an external learning asset referenced by the roadmap.
type Resource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Type        ResourceType     `json:"type"`
	GradeLevel  int              `json:"gradeLevel"`
	Category    ResourceCategory `json:"category"`
}

// CareerRoadmap is the aggregate owning a user's milestones and resources.
// At most one exists per user; the store enforces this by query pattern,
// not by constraint.
type CareerRoadmap struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	CareerGoal  string      `json:"careerGoal"`
	Grade       int         `json:"grade"`
	Milestones  []Milestone `json:"milestones"`
	Resources   []Resource  `json:"resources"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

func (m Milestone) Document() Document {
	doc := Document{
		"id":          m.ID,
		"title":       m.Title,
		"description": m.Description,
		"isCompleted": m.IsCompleted,
		"gradeLevel":  m.GradeLevel,
		"category":    string(m.Category),
	}
	if m.DueDate != nil {
		doc["dueDate"] = *m.DueDate
	}
	return doc
}

func MilestoneFromDocument(doc Document) (Milestone, error) {
	var m Milestone
	var ok bool
	if m.ID, ok = docString(doc, "id"); !ok {
		return Milestone{}, missingField("milestone", "id")
	}
	if m.Title, ok = docString(doc, "title"); !ok {
		return Milestone{}, missingField("milestone", "title")
	}
	if m.Description, ok = docString(doc, "description"); !ok {
		return Milestone{}, missingField("milestone", "description")
	}
	if m.IsCompleted, ok = docBool(doc, "isCompleted"); !ok {
		return Milestone{}, missingField("milestone", "isCompleted")
	}
	if m.GradeLevel, ok = docInt(doc, "gradeLevel"); !ok {
		return Milestone{}, missingField("milestone", "gradeLevel")
	}
	rawCategory, ok := docString(doc, "category")
	if !ok {
		return Milestone{}, missingField("milestone", "category")
	}
	if m.Category, ok = ParseMilestoneCategory(rawCategory); !ok {
		return Milestone{}, missingField("milestone", "category")
	}
	if due, ok := docTime(doc, "dueDate"); ok {
		m.DueDate = &due
	}
	return m, nil
}

func (r Resource) Document() Document {
	return Document{
		"id":          r.ID,
		"title":       r.Title,
		"description": r.Description,
		"url":         r.URL,
		"type":        string(r.Type),
		"gradeLevel":  r.GradeLevel,
		"category":    string(r.Category),
	}
}

func ResourceFromDocument(doc Document) (Resource, error) {
	var r Resource
	var ok bool
	if r.ID, ok = docString(doc, "id"); !ok {
		return Resource{}, missingField("resource", "id")
	}
	if r.Title, ok = docString(doc, "title"); !ok {
		return Resource{}, missingField("resource", "title")
	}
	if r.Description, ok = docString(doc, "description"); !ok {
		return Resource{}, missingField("resource", "description")
	}
	if r.URL, ok = docString(doc, "url"); !ok {
		return Resource{}, missingField("resource", "url")
	}
	rawType, ok := docString(doc, "type")
	if !ok {
		return Resource{}, missingField("resource", "type")
	}
	if r.Type, ok = ParseResourceType(rawType); !ok {
		return Resource{}, missingField("resource", "type")
	}
	if r.GradeLevel, ok = docInt(doc, "gradeLevel"); !ok {
		return Resource{}, missingField("resource", "gradeLevel")
	}
	rawCategory, ok := docString(doc, "category")
	if !ok {
		return Resource{}, missingField("resource", "category")
	}
	if r.Category, ok = ParseResourceCategory(rawCategory); !ok {
		return Resource{}, missingField("resource", "category")
	}
	return r, nil
}

func (r CareerRoadmap) Document() Document {
	milestones := make([]interface{}, len(r.Milestones))
	for i, m := range r.Milestones {
		milestones[i] = m.Document()
	}
	resources := make([]interface{}, len(r.Resources))
	for i, res := range r.Resources {
		resources[i] = res.Document()
	}
	lastUpdated := r.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now().UTC()
	}
	return Document{
		"_id":         r.ID,
		"userId":      r.UserID,
		"careerGoal":  r.CareerGoal,
		"grade":       r.Grade,
		"milestones":  milestones,
		"resources":   resources,
		"lastUpdated": lastUpdated,
	}
}

// RoadmapFromDocument decodes a stored roadmap. Top-level required fields
// fail the whole decode; an undecodable milestone or resource element only
// drops that element.
func RoadmapFromDocument(doc Document) (CareerRoadmap, error) {
	var r CareerRoadmap
	var ok bool
	if r.ID, ok = docString(doc, "_id"); !ok {
		return CareerRoadmap{}, missingField("roadmap", "_id")
	}
	if r.UserID, ok = docString(doc, "userId"); !ok {
		return CareerRoadmap{}, missingField("roadmap", "userId")
	}
	if r.CareerGoal, ok = docString(doc, "careerGoal"); !ok {
		return CareerRoadmap{}, missingField("roadmap", "careerGoal")
	}
	if r.Grade, ok = docInt(doc, "grade"); !ok {
		return CareerRoadmap{}, missingField("roadmap", "grade")
	}
	if r.LastUpdated, ok = docTime(doc, "lastUpdated"); !ok {
		return CareerRoadmap{}, missingField("roadmap", "lastUpdated")
	}
	r.Milestones = []Milestone{}
	if docs, ok := docDocSlice(doc, "milestones"); ok {
		for _, md := range docs {
			m, err := MilestoneFromDocument(md)
			if err != nil {
				continue
			}
			r.Milestones = append(r.Milestones, m)
		}
	}
	r.Resources = []Resource{}
	if docs, ok := docDocSlice(doc, "resources"); ok {
		for _, rd := range docs {
			res, err := ResourceFromDocument(rd)
			if err != nil {
				continue
			}
			r.Resources = append(r.Resources, res)
		}
	}
	return r, nil
}
