package models

import "time"

// User is a student account. ID is stable and equals the auth subject
// identifier the token carries.
type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Grade           int             `json:"grade"`
	CareerGoal      string          `json:"careerGoal"`
	School          string          `json:"school"`
	Location        string          `json:"location"`
	Interests       []string        `json:"interests"`
	Progress        map[string]bool `json:"progress"`
	Recommendations []string        `json:"recommendations"`
	CreatedAt       time.Time       `json:"createdAt"`
	DistrictID      string          `json:"districtId,omitempty"`
	PasswordHash    string          `json:"-"`
}

// Document encodes the user for the store. Optional fields absent in
// memory are omitted, never written as null. CreatedAt defaults to now at
// first write so the store always carries a creation timestamp.
func (u User) Document() Document {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	doc := Document{
		"_id":        u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"grade":      u.Grade,
		"careerGoal": u.CareerGoal,
		"school":     u.School,
		"location":   u.Location,
		"createdAt":  createdAt,
	}
	if u.Interests != nil {
		doc["interests"] = toInterfaceSlice(u.Interests)
	}
	if u.Progress != nil {
		progress := make(map[string]interface{}, len(u.Progress))
		for k, v := range u.Progress {
			progress[k] = v
		}
		doc["progress"] = progress
	}
	if u.Recommendations != nil {
		doc["recommendations"] = toInterfaceSlice(u.Recommendations)
	}
	if u.DistrictID != "" {
		doc["districtId"] = u.DistrictID
	}
	if u.PasswordHash != "" {
		doc["passwordHash"] = u.PasswordHash
	}
	return doc
}

// UserFromDocument decodes a stored user. Every required field must be
// present with its expected shape or the whole decode fails; no partial
// record is ever returned.
func UserFromDocument(doc Document) (User, error) {
	var u User
	var ok bool
	if u.ID, ok = docString(doc, "_id"); !ok {
		return User{}, missingField("user", "_id")
	}
	if u.Name, ok = docString(doc, "name"); !ok {
		return User{}, missingField("user", "name")
	}
	if u.Email, ok = docString(doc, "email"); !ok {
		return User{}, missingField("user", "email")
	}
	if u.Grade, ok = docInt(doc, "grade"); !ok {
		return User{}, missingField("user", "grade")
	}
	if u.CareerGoal, ok = docString(doc, "careerGoal"); !ok {
		return User{}, missingField("user", "careerGoal")
	}
	if u.School, ok = docString(doc, "school"); !ok {
		return User{}, missingField("user", "school")
	}
	if u.Location, ok = docString(doc, "location"); !ok {
		return User{}, missingField("user", "location")
	}
	if u.CreatedAt, ok = docTime(doc, "createdAt"); !ok {
		return User{}, missingField("user", "createdAt")
	}
	if interests, ok := docStringSlice(doc, "interests"); ok {
		u.Interests = interests
	} else {
		u.Interests = []string{}
	}
	if progress, ok := docBoolMap(doc, "progress"); ok {
		u.Progress = progress
	} else {
		u.Progress = map[string]bool{}
	}
	if recs, ok := docStringSlice(doc, "recommendations"); ok {
		u.Recommendations = recs
	} else {
		u.Recommendations = []string{}
	}
	u.DistrictID, _ = docString(doc, "districtId")
	u.PasswordHash, _ = docString(doc, "passwordHash")
	return u, nil
}

func toInterfaceSlice(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
