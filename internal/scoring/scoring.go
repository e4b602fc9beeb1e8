// Package scoring holds the arithmetic behind evaluation records and
// summaries. Nothing here touches the store.
package scoring

import (
	"sort"

	"github.com/fadilmartias/mentor-eval/internal/model"
)

// RecordScore returns the total score and percentage of a single evaluation.
// The total is the unweighted mean of the criterion scores; criterion weights
// are not applied. The percentage is the sum of scores over the sum of max
// scores. Both are 0 for an empty score set.
func RecordScore(scores model.CriteriaScores) (total float64, percentage float64) {
	if len(scores) == 0 {
		return 0, 0
	}

	// fixed order keeps float sums identical across calls
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sum, maxSum float64
	for _, id := range ids {
		sum += scores[id].Score
		maxSum += scores[id].MaxScore
	}

	total = sum / float64(len(scores))
	if maxSum > 0 {
		percentage = sum / maxSum * 100
	}
	return total, percentage
}

// ComputeSummary aggregates evaluations into a summary. Evaluations are
// expected most recent first; contributing ids keep that order. ok is false
// when there is nothing to summarize, in which case no summary must be stored.
func ComputeSummary(evaluations []model.Evaluation) (summary model.EvaluationSummary, ok bool) {
	if len(evaluations) == 0 {
		return model.EvaluationSummary{}, false
	}

	sums := make(map[model.Stage]float64, len(model.Stages))
	for _, e := range evaluations {
		if !e.Stage.Valid() {
			continue
		}

		st := summary.Stage(e.Stage)
		if st == nil {
			st = &model.StageSummary{
				HighestScore:    e.TotalScore,
				LowestScore:     e.TotalScore,
				LastEvaluatedAt: e.EvaluationDate.UTC(),
			}
			summary.SetStage(e.Stage, st)
		}

		st.Count++
		sums[e.Stage] += e.TotalScore
		if e.TotalScore > st.HighestScore {
			st.HighestScore = e.TotalScore
		}
		if e.TotalScore < st.LowestScore {
			st.LowestScore = e.TotalScore
		}
		if e.EvaluationDate.After(st.LastEvaluatedAt) {
			st.LastEvaluatedAt = e.EvaluationDate.UTC()
		}
		st.EvaluationIDs = append(st.EvaluationIDs, e.ID)
	}

	var weighted float64
	for _, stage := range model.Stages {
		st := summary.Stage(stage)
		if st == nil {
			continue
		}
		st.AverageScore = sums[stage] / float64(st.Count)

		// overall is weighted by evaluation count, not by stage
		weighted += st.AverageScore * float64(st.Count)
		summary.TotalEvaluations += st.Count
		if st.LastEvaluatedAt.After(summary.LastEvaluatedAt) {
			summary.LastEvaluatedAt = st.LastEvaluatedAt
		}
	}

	if summary.TotalEvaluations == 0 {
		return model.EvaluationSummary{}, false
	}
	summary.OverallAverage = weighted / float64(summary.TotalEvaluations)
	return summary, true
}
