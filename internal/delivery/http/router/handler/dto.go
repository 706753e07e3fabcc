package handler

import (
	"time"

	"portfolio/internal/domain/entity"
)

// userResponse is the public JSON shape of an account. The password hash never leaves the server.
type userResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Title       string    `json:"title,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	LinkedinURL string    `json:"linkedinUrl,omitempty"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Title:       user.Title,
		Bio:         user.Bio,
		Location:    user.Location,
		AvatarURL:   user.AvatarURL,
		GithubURL:   user.GithubURL,
		LinkedinURL: user.LinkedinURL,
		Website:     user.Website,
		Phone:       user.Phone,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}

type ownerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type projectResponse struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	AIDescription string         `json:"aiDescription,omitempty"`
	TechStack     []string       `json:"techStack"`
	GithubURL     string         `json:"githubUrl,omitempty"`
	LiveURL       string         `json:"liveUrl,omitempty"`
	ImageURLs     []string       `json:"imageUrls"`
	Featured      bool           `json:"featured"`
	StartDate     *time.Time     `json:"startDate,omitempty"`
	EndDate       *time.Time     `json:"endDate,omitempty"`
	Status        string         `json:"status"`
	Category      string         `json:"category,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	User          *ownerResponse `json:"user,omitempty"`
}

func toProjectResponse(project *entity.Project) *projectResponse {
	out := &projectResponse{
		ID:            project.ID,
		Title:         project.Title,
		Description:   project.Description,
		AIDescription: project.AIDescription,
		TechStack:     nonNil(project.TechStack),
		GithubURL:     project.GithubURL,
		LiveURL:       project.LiveURL,
		ImageURLs:     nonNil(project.ImageURLs),
		Featured:      project.Featured,
		StartDate:     project.StartDate,
		EndDate:       project.EndDate,
		Status:        string(project.Status),
		Category:      project.Category,
		CreatedAt:     project.CreatedAt,
	}
	if project.Owner != nil {
		out.User = &ownerResponse{FirstName: project.Owner.FirstName, LastName: project.Owner.LastName}
	}

	return out
}

func toProjectResponses(projects []*entity.Project) []*projectResponse {
	out := make([]*projectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, toProjectResponse(project))
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

type skillResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Proficiency     int       `json:"proficiency"`
	YearsExperience int       `json:"yearsExperience"`
	Verified        bool      `json:"verified"`
	Icon            string    `json:"icon,omitempty"`
	Color           string    `json:"color,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toSkillResponse(skill *entity.Skill) *skillResponse {
	return &skillResponse{
		ID:              skill.ID,
		Name:            skill.Name,
		Category:        skill.Category,
		Proficiency:     skill.Proficiency,
		YearsExperience: skill.YearsExperience,
		Verified:        skill.Verified,
		Icon:            skill.Icon,
		Color:           skill.Color,
		Description:     skill.Description,
		CreatedAt:       skill.CreatedAt,
	}
}

func toSkillResponses(skills []*entity.Skill) []*skillResponse {
	out := make([]*skillResponse, 0, len(skills))
	for _, skill := range skills {
		out = append(out, toSkillResponse(skill))
	}

	return out
}

type experienceResponse struct {
	ID           uint       `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	CompanyURL   string     `json:"companyUrl,omitempty"`
	CompanyLogo  string     `json:"companyLogo,omitempty"`
}

func toExperienceResponse(experience *entity.Experience) *experienceResponse {
	return &experienceResponse{
		ID:           experience.ID,
		Company:      experience.Company,
		Position:     experience.Position,
		Description:  experience.Description,
		Location:     experience.Location,
		StartDate:    experience.StartDate,
		EndDate:      experience.EndDate,
		Current:      experience.Current,
		Achievements: nonNil(experience.Achievements),
		Technologies: nonNil(experience.Technologies),
		CompanyURL:   experience.CompanyURL,
		CompanyLogo:  experience.CompanyLogo,
	}
}

func toExperienceResponses(experiences []*entity.Experience) []*experienceResponse {
	out := make([]*experienceResponse, 0, len(experiences))
	for _, experience := range experiences {
		out = append(out, toExperienceResponse(experience))
	}

	return out
}

type educationResponse struct {
	ID           uint       `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	Field        string     `json:"field,omitempty"`
	GPA          *float64   `json:"gpa,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements"`
	Location     string     `json:"location,omitempty"`
}

func toEducationResponses(educations []*entity.Education) []*educationResponse {
	out := make([]*educationResponse, 0, len(educations))
	for _, education := range educations {
		out = append(out, &educationResponse{
			ID:           education.ID,
			Institution:  education.Institution,
			Degree:       education.Degree,
			Field:        education.Field,
			GPA:          education.GPA,
			StartDate:    education.StartDate,
			EndDate:      education.EndDate,
			Current:      education.Current,
			Description:  education.Description,
			Achievements: nonNil(education.Achievements),
			Location:     education.Location,
		})
	}

	return out
}
