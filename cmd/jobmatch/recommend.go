package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/filter"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/query"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/request"
)

type recommendFlags struct {
	skills     string
	location   string
	minHourly  float64
	maxHourly  float64
	minBudget  float64
	maxBudget  float64
	limit      int
	forceRefit bool
}

var recFlags recommendFlags

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank postings for a skills and location query",
	Example: `  jobmatch recommend --skills "Go Kubernetes" --location USA --max-budget 60000
  jobmatch recommend --skills writer --min-hourly 15 --refit`,
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recFlags.skills, "skills", "", "free-text skills")
	f.StringVar(&recFlags.location, "location", "", "preferred location")
	f.Float64Var(&recFlags.minHourly, "min-hourly", 0, "minimum hourly_low")
	f.Float64Var(&recFlags.maxHourly, "max-hourly", math.MaxFloat64, "maximum hourly_high (default: unbounded)")
	f.Float64Var(&recFlags.minBudget, "min-budget", 0, "minimum budget")
	f.Float64Var(&recFlags.maxBudget, "max-budget", math.MaxFloat64, "maximum budget (default: unbounded)")
	f.IntVar(&recFlags.limit, "limit", 0, "number of results (default: recommend.limit)")
	f.BoolVar(&recFlags.forceRefit, "refit", false, "reload the corpus and refit before scoring")
	rootCmd.AddCommand(recommendCmd)
}

func (f recommendFlags) request(defaultLimit int) (request.Request, error) {
	bounds, err := filter.NewBounds(f.minHourly, f.maxHourly, f.minBudget, f.maxBudget)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	limit := f.limit
	if limit <= 0 {
		limit = defaultLimit
	}
	req, err := request.New(query.New(f.skills, f.location), bounds, f.forceRefit, limit)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, cfg, _, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := recFlags.request(cfg.Recommend.Limit)
	if err != nil {
		return err
	}

	ctx, usage := domain.NewContextWithModelUsage(ctx)
	items, err := a.recommend.Recommend(ctx, &req)
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, domain.ErrNoMatches):
		fmt.Fprintln(out, renderNotice(domain.UserMessage(err)))
		return nil
	case err != nil:
		return userError(err)
	}

	fmt.Fprintln(out, renderRecommendations(items))
	if usage.Refit {
		fmt.Fprintln(out, renderNotice("model fitted: "+usage.ModelID))
	}
	return nil
}
