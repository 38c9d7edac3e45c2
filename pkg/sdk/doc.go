// Package jobmatch embeds the job recommender in another Go program.
//
// The client owns the whole pipeline: it reads the corpus, fits or loads the
// TF-IDF model, persists the model artifact and ranks postings.
//
//	client, _ := jobmatch.New(ctx,
//	    jobmatch.WithCorpus("data.csv"),
//	    jobmatch.WithSQLite("jobmatch.db"),
//	)
//	defer client.Close()
//
//	recs, err := client.Recommend(ctx, jobmatch.Preferences{
//	    Skills:        "Go Kubernetes",
//	    Location:      "USA",
//	    MaxHourlyRate: jobmatch.Unbounded,
//	    MaxBudget:     jobmatch.Unbounded,
//	})
//	if errors.Is(err, jobmatch.ErrNoMatches) {
//	    // relax the filters
//	}
package jobmatch
