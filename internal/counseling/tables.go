// Package counseling implements skill-gap analysis, learning-path
// generation, and career recommendations against static reference tables.
package counseling

import (
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// LevelRequirement describes the minimum skill profile for a career level.
type LevelRequirement struct {
	MinSkills       int
	KeyAreas        []string
	ExperienceYears int
}

// levelRequirements is the reference table of per-level skill requirements.
// Loaded once at process start and read-only thereafter.
var levelRequirements = map[types.SeniorityLevel]LevelRequirement{
	types.EntryLevel: {
		MinSkills:       5,
		KeyAreas:        []string{taxonomy.ProgrammingLanguages, taxonomy.SoftSkills},
		ExperienceYears: 0,
	},
	types.MidLevel: {
		MinSkills:       10,
		KeyAreas:        []string{taxonomy.ProgrammingLanguages, taxonomy.FrameworksLibraries, taxonomy.Databases},
		ExperienceYears: 2,
	},
	types.SeniorLevel: {
		MinSkills:       15,
		KeyAreas:        []string{taxonomy.ProgrammingLanguages, taxonomy.FrameworksLibraries, taxonomy.Databases, taxonomy.CloudDevops},
		ExperienceYears: 5,
	},
	types.Management: {
		MinSkills:       12,
		KeyAreas:        []string{taxonomy.SoftSkills, taxonomy.ToolsTechnologies},
		ExperienceYears: 7,
	},
	types.Specialist: {
		MinSkills:       20,
		KeyAreas:        []string{taxonomy.ProgrammingLanguages, taxonomy.FrameworksLibraries, taxonomy.CloudDevops, taxonomy.ToolsTechnologies},
		ExperienceYears: 8,
	},
}

// Career domains recognized by the counseling engine.
const (
	DomainSoftwareDevelopment = "software_development"
	DomainDataScience         = "data_science"
	DomainDevopsCloud         = "devops_cloud"
	DomainProductManagement   = "product_management"
	DomainCybersecurity       = "cybersecurity"
)

// domainSkillWeights score how strongly skill counts in each taxonomy
// category indicate a career domain.
var domainSkillWeights = map[string]map[string]float64{
	DomainSoftwareDevelopment: {
		taxonomy.ProgrammingLanguages: 0.4,
		taxonomy.FrameworksLibraries:  0.3,
		taxonomy.Databases:            0.2,
		taxonomy.ToolsTechnologies:    0.1,
	},
	DomainDataScience: {
		taxonomy.ProgrammingLanguages: 0.3,
		taxonomy.FrameworksLibraries:  0.4,
		taxonomy.Databases:            0.2,
		taxonomy.ToolsTechnologies:    0.1,
	},
	DomainDevopsCloud: {
		taxonomy.CloudDevops:          0.5,
		taxonomy.ProgrammingLanguages: 0.2,
		taxonomy.ToolsTechnologies:    0.2,
		taxonomy.Databases:            0.1,
	},
	DomainCybersecurity: {
		taxonomy.CloudDevops:          0.3,
		taxonomy.ToolsTechnologies:    0.4,
		taxonomy.ProgrammingLanguages: 0.2,
		taxonomy.SoftSkills:           0.1,
	},
	DomainProductManagement: {
		taxonomy.SoftSkills:           0.5,
		taxonomy.ToolsTechnologies:    0.3,
		taxonomy.FrameworksLibraries:  0.1,
		taxonomy.ProgrammingLanguages: 0.1,
	},
}

// careerPaths lists representative role titles per domain and level.
var careerPaths = map[string]map[types.SeniorityLevel][]string{
	DomainSoftwareDevelopment: {
		types.EntryLevel:  {"Junior Developer", "Software Engineer I", "Trainee Developer"},
		types.MidLevel:    {"Software Engineer", "Full Stack Developer", "Backend Developer", "Frontend Developer"},
		types.SeniorLevel: {"Senior Software Engineer", "Lead Developer", "Principal Engineer"},
		types.Management:  {"Engineering Manager", "Technical Lead", "VP Engineering"},
		types.Specialist:  {"Software Architect", "System Architect", "Technical Consultant"},
	},
	DomainDataScience: {
		types.EntryLevel:  {"Data Analyst", "Junior Data Scientist", "Business Analyst"},
		types.MidLevel:    {"Data Scientist", "ML Engineer", "Analytics Engineer"},
		types.SeniorLevel: {"Senior Data Scientist", "Lead Data Scientist", "Principal Data Scientist"},
		types.Management:  {"Data Science Manager", "Analytics Manager", "Chief Data Officer"},
		types.Specialist:  {"ML Architect", "Data Science Consultant", "Research Scientist"},
	},
	DomainDevopsCloud: {
		types.EntryLevel:  {"DevOps Engineer", "Cloud Support Engineer", "System Administrator"},
		types.MidLevel:    {"Cloud Engineer", "Site Reliability Engineer", "Infrastructure Engineer"},
		types.SeniorLevel: {"Senior DevOps Engineer", "Lead SRE", "Principal Cloud Architect"},
		types.Management:  {"DevOps Manager", "Infrastructure Manager", "Platform Engineering Manager"},
		types.Specialist:  {"Cloud Architect", "Security Architect", "DevOps Consultant"},
	},
	DomainProductManagement: {
		types.EntryLevel:  {"Associate Product Manager", "Product Analyst", "Business Analyst"},
		types.MidLevel:    {"Product Manager", "Technical Product Manager", "Senior Business Analyst"},
		types.SeniorLevel: {"Senior Product Manager", "Principal Product Manager", "Group Product Manager"},
		types.Management:  {"Director of Product", "VP Product", "Chief Product Officer"},
		types.Specialist:  {"Product Strategy Consultant", "Product Design Lead", "Growth Product Manager"},
	},
	DomainCybersecurity: {
		types.EntryLevel:  {"Security Analyst", "Junior Security Engineer", "SOC Analyst"},
		types.MidLevel:    {"Security Engineer", "Cybersecurity Specialist", "Penetration Tester"},
		types.SeniorLevel: {"Senior Security Engineer", "Lead Security Architect", "Principal Security Engineer"},
		types.Management:  {"Security Manager", "CISO", "Security Director"},
		types.Specialist:  {"Security Consultant", "Ethical Hacker", "Incident Response Specialist"},
	},
}

// industryTrends holds simplified market outlook data per domain.
var industryTrends = map[string]types.IndustryInsight{
	DomainSoftwareDevelopment: {
		GrowthOutlook:  "high",
		SalaryRange:    "$70k-$180k",
		InDemandSkills: []string{"React", "Python", "Kubernetes", "Microservices", "AI/ML"},
		MarketDemand:   "very_high",
	},
	DomainDataScience: {
		GrowthOutlook:  "very_high",
		SalaryRange:    "$85k-$200k",
		InDemandSkills: []string{"Python", "TensorFlow", "PyTorch", "SQL", "Cloud Platforms"},
		MarketDemand:   "high",
	},
	DomainDevopsCloud: {
		GrowthOutlook:  "high",
		SalaryRange:    "$80k-$170k",
		InDemandSkills: []string{"AWS", "Docker", "Kubernetes", "Terraform", "Jenkins"},
		MarketDemand:   "high",
	},
	DomainCybersecurity: {
		GrowthOutlook:  "very_high",
		SalaryRange:    "$75k-$190k",
		InDemandSkills: []string{"Ethical Hacking", "Cloud Security", "Zero Trust", "SIEM"},
		MarketDemand:   "very_high",
	},
}

// recommendedSkills suggests concrete skills per domain, level, and category.
var recommendedSkills = map[string]map[types.SeniorityLevel]types.SkillSet{
	DomainSoftwareDevelopment: {
		types.EntryLevel: {
			taxonomy.ProgrammingLanguages: {"python", "javascript", "sql"},
			taxonomy.SoftSkills:           {"communication", "teamwork", "problem solving"},
			taxonomy.ToolsTechnologies:    {"git", "api", "agile"},
		},
		types.MidLevel: {
			taxonomy.ProgrammingLanguages: {"typescript", "java", "python"},
			taxonomy.FrameworksLibraries:  {"react", "spring", "django"},
			taxonomy.Databases:            {"postgresql", "mongodb", "redis"},
			taxonomy.CloudDevops:          {"docker", "aws", "ci/cd"},
		},
		types.SeniorLevel: {
			taxonomy.ProgrammingLanguages: {"python", "java", "go"},
			taxonomy.FrameworksLibraries:  {"spring", "react", "node.js"},
			taxonomy.Databases:            {"postgresql", "elasticsearch", "redis"},
			taxonomy.CloudDevops:          {"kubernetes", "aws", "terraform", "microservices"},
		},
	},
	DomainDataScience: {
		types.EntryLevel: {
			taxonomy.ProgrammingLanguages: {"python", "sql", "r"},
			taxonomy.FrameworksLibraries:  {"pandas", "tensorflow"},
			taxonomy.SoftSkills:           {"analytical", "communication"},
		},
		types.MidLevel: {
			taxonomy.ProgrammingLanguages: {"python", "sql", "scala"},
			taxonomy.FrameworksLibraries:  {"tensorflow", "pytorch", "pandas"},
			taxonomy.Databases:            {"postgresql", "elasticsearch"},
			taxonomy.CloudDevops:          {"aws", "docker"},
		},
	},
	DomainDevopsCloud: {
		types.MidLevel: {
			taxonomy.CloudDevops:          {"kubernetes", "terraform", "ansible", "ci/cd"},
			taxonomy.ProgrammingLanguages: {"python", "go"},
			taxonomy.ToolsTechnologies:    {"git", "rest"},
		},
	},
}

// learningResources is the static resource lookup per taxonomy category.
var learningResources = map[string][]types.LearningResource{
	taxonomy.ProgrammingLanguages: {
		{Type: "online_course", Platform: "Coursera", Focus: "fundamentals"},
		{Type: "practice", Platform: "LeetCode", Focus: "coding_problems"},
		{Type: "documentation", Platform: "Official Docs", Focus: "syntax_reference"},
	},
	taxonomy.FrameworksLibraries: {
		{Type: "tutorial", Platform: "YouTube", Focus: "hands_on_projects"},
		{Type: "online_course", Platform: "Udemy", Focus: "practical_applications"},
		{Type: "practice", Platform: "GitHub", Focus: "open_source_projects"},
	},
	taxonomy.CloudDevops: {
		{Type: "certification", Platform: "AWS/Azure", Focus: "cloud_fundamentals"},
		{Type: "hands_on", Platform: "Cloud Labs", Focus: "practical_experience"},
		{Type: "book", Platform: "Technical Books", Focus: "best_practices"},
	},
}

// genericResources is the fallback for categories with no dedicated entries.
var genericResources = []types.LearningResource{
	{Type: "online_search", Platform: "Google", Focus: "skill_specific_resources"},
}

// resourcesFor returns the static resource list for a category.
func resourcesFor(category string) []types.LearningResource {
	if resources, ok := learningResources[category]; ok {
		return resources
	}
	return genericResources
}
