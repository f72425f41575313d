package models

import "strings"

// MilestoneCategory classifies a roadmap milestone.
type MilestoneCategory string

const (
	MilestoneAcademic        MilestoneCategory = "academic"
	MilestoneExtracurricular MilestoneCategory = "extracurricular"
	MilestoneSkill           MilestoneCategory = "skill"
	MilestoneTest            MilestoneCategory = "test"
	MilestoneApplication     MilestoneCategory = "application"
)

// ResourceCategory classifies a roadmap resource. It overlaps
// MilestoneCategory in spelling but is a distinct set: it has "career" and
// lacks "extracurricular".
type ResourceCategory string

const (
	ResourceCatAcademic    ResourceCategory = "academic"
	ResourceCatSkill       ResourceCategory = "skill"
	ResourceCatTest        ResourceCategory = "test"
	ResourceCatApplication ResourceCategory = "application"
	ResourceCatCareer      ResourceCategory = "career"
)

// ResourceType says what kind of asset a resource points at.
type ResourceType string

const (
	ResourceOnline ResourceType = "online"
	ResourceBook   ResourceType = "book"
	ResourceVideo  ResourceType = "video"
	ResourceCourse ResourceType = "course"
	ResourceTool   ResourceType = "tool"
)

// AdminRole is the access level of an admin account.
type AdminRole string

const (
	RoleDistrictAdmin AdminRole = "district-admin"
	RoleSchoolAdmin   AdminRole = "school-admin"
	RoleSuperAdmin    AdminRole = "super-admin"
)

// ParseMilestoneCategory resolves s case-insensitively against the closed
// category set.
func ParseMilestoneCategory(s string) (MilestoneCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "academic":
		return MilestoneAcademic, true
	case "extracurricular":
		return MilestoneExtracurricular, true
	case "skill":
		return MilestoneSkill, true
	case "test":
		return MilestoneTest, true
	case "application":
		return MilestoneApplication, true
	}
	return "", false
}

func ParseResourceCategory(s string) (ResourceCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "academic":
		return ResourceCatAcademic, true
	case "skill":
		return ResourceCatSkill, true
	case "test":
		return ResourceCatTest, true
	case "application":
		return ResourceCatApplication, true
	case "career":
		return ResourceCatCareer, true
	}
	return "", false
}

func ParseResourceType(s string) (ResourceType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return ResourceOnline, true
	case "book":
		return ResourceBook, true
	case "video":
		return ResourceVideo, true
	case "course":
		return ResourceCourse, true
	case "tool":
		return ResourceTool, true
	}
	return "", false
}

func ParseAdminRole(s string) (AdminRole, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "district-admin":
		return RoleDistrictAdmin, true
	case "school-admin":
		return RoleSchoolAdmin, true
	case "super-admin":
		return RoleSuperAdmin, true
	}
	return "", false
}
