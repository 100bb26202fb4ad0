package usecase

import (
	"context"
	"fmt"
	"strings"

	"echonote/internal/model"
	"echonote/internal/task"
	"echonote/pkg/datemath"
	"echonote/pkg/gemini"
)

// Extract turns a transcript into normalized task candidates.
// An empty transcript short-circuits with an empty result; the extraction
// service is never called. A malformed model response degrades to zero
// candidates with a warn log rather than failing the request.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return task.ExtractOutput{Candidates: []task.Candidate{}}, nil
	}

	candidates, err := uc.extractCandidates(ctx, input.Transcript)
	if err != nil {
		return task.ExtractOutput{}, err
	}
	return task.ExtractOutput{Candidates: candidates}, nil
}

// extractCandidates runs prompt building, the LLM call, and normalization.
func (uc *implUseCase) extractCandidates(ctx context.Context, transcript string) ([]task.Candidate, error) {
	today := uc.today().Format(datemath.DateFormat)
	prompt := gemini.BuildExtractionPrompt(transcript, today)

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for stable JSON output
			MaxOutputTokens: 2048,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "task.Extract: LLM request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", task.ErrExtraction, err)
	}

	responseText, err := resp.Text()
	if err != nil {
		uc.l.Errorf(ctx, "task.Extract: %v", err)
		return nil, fmt.Errorf("%w: %v", task.ErrExtraction, err)
	}

	candidates, err := parseCandidates(responseText)
	if err != nil {
		// Degradation, not failure: zero candidates, but loudly
		// distinguishable from a transcript with nothing actionable.
		uc.l.Warnf(ctx, "task.Extract: unparseable model response, degrading to zero candidates: %v raw=%q", err, responseText)
		return []task.Candidate{}, nil
	}

	uc.l.Infof(ctx, "task.Extract: candidates=%d", len(candidates))
	return candidates, nil
}
