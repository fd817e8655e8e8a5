package ats

import (
	"time"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var fixedNow = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fixedPicker always returns the same verb.
type fixedPicker struct{ verb string }

func (p fixedPicker) Pick(_ string, _ []string) string { return p.verb }

// completeResume scores 100 on every dimension.
func completeResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Arjun",
			LastName:  "Mehta",
			Email:     "arjun.mehta@example.com",
			Phone:     "+91 98765 43210",
			Location:  "Bengaluru, India",
			JobTitle:  "Backend Engineer",
			Summary:   "Backend engineer building scalable microservices in Go and Python on AWS for fintech products.",
		},
		Experience: []types.Experience{{
			ID:        "exp-1",
			Company:   "Razorpay",
			Position:  "Software Engineer",
			StartDate: "2019-07",
			Current:   true,
			Description: "• Built payment APIs in Go serving 2M requests per day\n" +
				"• Reduced p99 latency by 35% using Redis caching\n" +
				"• Led migration of 12 services to Kubernetes",
		}},
		Education: []types.Education{{
			Institution: "IIT Bombay",
			Degree:      "B.Tech",
			Field:       "Computer Science",
		}},
		Skills: []types.Skill{
			{Name: "Go"}, {Name: "Python"}, {Name: "Docker"},
			{Name: "Kubernetes"}, {Name: "AWS"}, {Name: "SQL"},
		},
		Projects:       []types.Project{{Name: "Open-source rate limiter"}},
		Certifications: []types.Certification{{Name: "AWS Certified Developer"}},
	}
}

// sparseResume fills four buckets with bullets that carry no digits and no verbs.
func sparseResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
		},
		Experience: []types.Experience{{
			Company:     "Acme Corp",
			Position:    "Associate",
			Description: "Responsible for weekly status reports\nWorked on the customer portal",
		}},
		Education: []types.Education{{
			Institution: "State University",
			Degree:      "B.Tech",
			Field:       "Computer Science",
		}},
		Skills: []types.Skill{{Name: "Go"}, {Name: "SQL"}, {Name: "Docker"}},
	}
}

// midResume is a software resume from IIT Bombay scoring in the low eighties.
func midResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Priya",
			LastName:  "Sharma",
			Email:     "priya@example.com",
		},
		Experience: []types.Experience{{
			Company:     "Infosys",
			Position:    "Developer",
			Description: "Maintained internal dashboards for reporting\nWorked on the python services",
		}},
		Education: []types.Education{{
			Institution: "IIT Bombay",
			Degree:      "B.Tech",
			Field:       "Computer Science",
		}},
		Skills: []types.Skill{{Name: "Python"}, {Name: "Docker"}, {Name: "SQL"}},
	}
}

func suggestionIDs(s []types.Suggestion) []string {
	ids := make([]string, len(s))
	for i, sg := range s {
		ids[i] = sg.ID
	}
	return ids
}

func suggestionTitles(s []types.Suggestion) []string {
	titles := make([]string, len(s))
	for i, sg := range s {
		titles[i] = sg.Title
	}
	return titles
}
