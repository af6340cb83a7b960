package runner

import (
	"github.com/linkmill/linkmill/internal/models"
	"github.com/linkmill/linkmill/internal/urlhandler"
)

// aggregator merges extracted links across attempts into deduplicated,
// counted records. It is the single writer over the link set: attempts are
// folded sequentially after all workers complete, so no locking is needed
// and first-seen order follows pair iteration order.
type aggregator struct {
	index   map[string]int
	ordered []models.LinkRecord
}

func newAggregator() *aggregator {
	return &aggregator{
		index: make(map[string]int),
	}
}

// fold merges one attempt's links. Failed attempts contribute nothing.
func (a *aggregator) fold(attempt models.Attempt) {
	if attempt.Status != models.AttemptExtracted {
		return
	}

	source := models.LinkSource{
		TargetURL: attempt.Target.URL,
		ToolID:    attempt.Tool.ID,
	}

	for _, link := range attempt.Links {
		key, err := urlhandler.CanonicalKey(link)
		if err != nil {
			continue
		}

		if i, ok := a.index[key]; ok {
			a.ordered[i].SourceCount++
			a.ordered[i].Sources = append(a.ordered[i].Sources, source)
			continue
		}

		a.index[key] = len(a.ordered)
		a.ordered = append(a.ordered, models.LinkRecord{
			URL:         key,
			SourceCount: 1,
			Sources:     []models.LinkSource{source},
		})
	}
}

func (a *aggregator) records() []models.LinkRecord {
	return a.ordered
}
