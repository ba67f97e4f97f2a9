package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/similarity"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Ranker scores candidates against jobs. It holds only immutable reference
// state (the taxonomy and the similarity scorer), so one Ranker is safe for
// concurrent use across requests.
type Ranker struct {
	taxonomy *taxonomy.Taxonomy
	scorer   *similarity.Scorer
	workers  int
}

// Options tunes the scoring resources of a Ranker. The zero value picks
// sensible defaults.
type Options struct {
	// Workers caps concurrent candidate scoring. Zero or negative uses one
	// worker per CPU.
	Workers int

	// MaxVocabulary caps the TF-IDF vocabulary size. Zero or negative uses
	// the similarity package default.
	MaxVocabulary int
}

// NewRanker builds a Ranker over the given taxonomy with default options.
func NewRanker(tax *taxonomy.Taxonomy) *Ranker {
	return NewRankerWithOptions(tax, Options{})
}

// NewRankerWithOptions builds a Ranker with explicit resource options.
func NewRankerWithOptions(tax *taxonomy.Taxonomy, opts Options) *Ranker {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	vocab := opts.MaxVocabulary
	if vocab <= 0 {
		vocab = similarity.DefaultMaxVocabulary
	}
	return &Ranker{
		taxonomy: tax,
		scorer:   similarity.NewScorer(vocab),
		workers:  workers,
	}
}

// jobContext is the per-run, immutable view of a job used by every
// candidate worker.
type jobContext struct {
	skills        types.SkillSet
	level         types.SeniorityLevel
	requiredYears *int
	degree        string
	hasDegreeReq  bool
}

// prepare derives the job-side inputs once per matching run.
func (r *Ranker) prepare(job types.JobProfile) jobContext {
	jc := jobContext{
		skills: r.taxonomy.ExtractFromList(job.RequiredSkills),
		level:  job.SeniorityLevel,
	}

	if _, known := seniorityWeights[jc.level]; !known {
		jc.level = parsing.DetectSeniority(job.Title, job.Description)
	}

	if job.ExperienceYearsRequired != nil {
		jc.requiredYears = job.ExperienceYearsRequired
	} else if years, found := parsing.ExtractRequiredYears(job.Description); found {
		jc.requiredYears = &years
	}

	jc.degree, jc.hasDegreeReq = parsing.DetectDegreeRequirement(job.Description)
	return jc
}

// Rank scores every candidate against the job and returns results sorted by
// overall score descending. Candidates tied on score keep their input order,
// so ranking is deterministic. An empty candidate list yields an empty
// result, not an error; the only error returned is context cancellation.
func (r *Ranker) Rank(ctx context.Context, job types.JobProfile, candidates []types.CandidateProfile) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	jc := r.prepare(job)

	// The similarity stage is a batch synchronization point: every document
	// must be vectorized together so document-frequency statistics are
	// shared. It runs once, before the per-candidate workers.
	texts := make([]string, len(candidates))
	for i, candidate := range candidates {
		texts[i] = candidate.ResumeText
	}
	textScores := r.scorer.Scores(job.Description, texts)

	// Per-candidate sub-scores have no cross-candidate dependency.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.scoreCandidate(jc, candidates[i], textScores[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable sort preserves input order on exact score ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	return results, nil
}

// scoreCandidate computes one candidate's sub-scores and composite score.
func (r *Ranker) scoreCandidate(jc jobContext, candidate types.CandidateProfile, textScore float64) types.MatchResult {
	candidateSkills := candidate.Skills
	if candidateSkills.Total() == 0 {
		// No pre-extracted skills supplied; derive them from the resume.
		candidateSkills = r.taxonomy.ExtractSkills(candidate.ResumeText)
	}

	skillScore, breakdown := SkillMatch(candidateSkills, jc.skills, jc.level)
	experienceScore := ExperienceMatch(candidate.ExperienceYears, jc.requiredYears)
	educationScore := EducationMatch(candidate.Education, jc.degree, jc.hasDegreeReq)

	overall := skillScore*skillWeight +
		experienceScore*experienceWeight +
		textScore*textWeight +
		educationScore*educationWeight

	return types.MatchResult{
		CandidateID:  candidate.ID,
		OverallScore: clamp01(overall),
		Subscores: types.Subscores{
			TextSimilarity:  textScore,
			SkillMatch:      skillScore,
			ExperienceMatch: experienceScore,
			EducationMatch:  educationScore,
		},
		SkillBreakdown: breakdown,
		MatchingSkills: MatchingSkills(candidateSkills, jc.skills),
		MissingSkills:  MissingSkills(candidateSkills, jc.skills),
	}
}

// RecommendJobs scores one candidate against many jobs and returns the top
// matches, best first. Each job is its own similarity batch (one job text
// plus the one resume), so scores are comparable across jobs.
func (r *Ranker) RecommendJobs(ctx context.Context, candidate types.CandidateProfile, jobs []types.JobProfile, topN int) ([]types.JobMatch, error) {
	matches := make([]types.JobMatch, 0, len(jobs))

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		jc := r.prepare(job)
		textScore := r.scorer.Scores(job.Description, []string{candidate.ResumeText})[0]
		result := r.scoreCandidate(jc, candidate, textScore)

		matches = append(matches, types.JobMatch{
			JobID:        job.ID,
			Title:        job.Title,
			OverallScore: result.OverallScore,
			Subscores:    result.Subscores,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}
