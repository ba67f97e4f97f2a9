package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// PostingFetcher turns a job posting URL into a structured job profile. It
// fetches the page (with browser fallback for SPA boards), extracts the
// posting text, and infers the requirements, via the LLM when one is
// configured and rule-based parsing otherwise.
type PostingFetcher struct {
	fetcher      *CachedFetcher
	client       llm.Client // optional; nil means rule-based inference only
	taxonomy     *taxonomy.Taxonomy
	forceBrowser bool
	verbose      bool
}

// PostingOptions tunes how postings are fetched. The zero value is fine for
// most boards.
type PostingOptions struct {
	// ForceBrowser always renders the page with the headless browser
	// instead of relying on the thin-page heuristic. Needed for SPA boards
	// whose plain HTML still looks substantial.
	ForceBrowser bool

	Verbose bool
}

// NewPostingFetcher builds a PostingFetcher. client may be nil.
func NewPostingFetcher(fetcher *CachedFetcher, client llm.Client, tax *taxonomy.Taxonomy, opts PostingOptions) *PostingFetcher {
	return &PostingFetcher{
		fetcher:      fetcher,
		client:       client,
		taxonomy:     tax,
		forceBrowser: opts.ForceBrowser,
		verbose:      opts.Verbose,
	}
}

// FetchJob retrieves a posting URL and returns the inferred job profile.
func (p *PostingFetcher) FetchJob(ctx context.Context, urlStr string) (*types.JobProfile, error) {
	result, err := p.fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	text := result.Text
	if (p.forceBrowser || ShouldUseBrowser(text)) && !result.FromCache {
		html, browserErr := BrowserSimple(ctx, urlStr, p.verbose)
		if browserErr == nil {
			platform := DetectPlatform(urlStr)
			rendered, extractErr := ExtractMainText(html,
				PlatformContentSelectors(platform),
				PlatformNoiseSelectors(platform)...)
			if extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, &Error{URL: urlStr, Message: "posting contains no extractable text"}
	}

	job, err := p.inferJob(ctx, text)
	if err != nil {
		return nil, err
	}
	job.ID = uuid.New()
	return job, nil
}

// postingExtraction mirrors the JSON shape of the JobRequirements schema.
type postingExtraction struct {
	Title            string   `json:"title"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	SeniorityLevel   string   `json:"seniority_level"`
	ExperienceYears  *int     `json:"experience_years"`
	RequiredDegree   string   `json:"required_degree"`
}

// inferJob builds a job profile from posting text. LLM extraction is
// preferred; any failure falls back to rule-based parsing so a fetched
// posting always yields a usable profile.
func (p *PostingFetcher) inferJob(ctx context.Context, text string) (*types.JobProfile, error) {
	if p.client != nil {
		job, err := p.inferWithLLM(ctx, text)
		if err == nil {
			return job, nil
		}
		if p.verbose {
			fmt.Printf("LLM inference failed, falling back to rule-based parsing: %v\n", err)
		}
	}
	return p.inferRuleBased(text), nil
}

func (p *PostingFetcher) inferWithLLM(ctx context.Context, text string) (*types.JobProfile, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobRequirementsSchema(), text)

	raw, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("requirement extraction failed: %w", err)
	}

	var extracted postingExtraction
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse extraction output: %w", err)
	}
	if len(extracted.RequiredSkills) == 0 {
		return nil, fmt.Errorf("extraction returned no required skills")
	}

	return &types.JobProfile{
		Title:                   extracted.Title,
		Description:             text,
		RequiredSkills:          extracted.RequiredSkills,
		SeniorityLevel:          types.SeniorityLevel(extracted.SeniorityLevel),
		ExperienceYearsRequired: extracted.ExperienceYears,
	}, nil
}

func (p *PostingFetcher) inferRuleBased(text string) *types.JobProfile {
	job := &types.JobProfile{
		Description:    text,
		SeniorityLevel: parsing.DetectSeniority("", text),
	}
	if years, ok := parsing.ExtractRequiredYears(text); ok {
		job.ExperienceYearsRequired = &years
	}
	if p.taxonomy != nil {
		extracted := p.taxonomy.ExtractSkills(text)
		for _, category := range extracted.Categories() {
			job.RequiredSkills = append(job.RequiredSkills, extracted[category]...)
		}
	}
	return job
}
