package jobmatch

import (
	"context"

	"github.com/kailas-cloud/jobmatch/internal/domain/search/request"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

// --- recommendUseCase mock ---

type mockRecommendUC struct {
	recommendFn   func(ctx context.Context, req *request.Request) ([]result.Scored, error)
	refitFn       func(ctx context.Context) (recommenduc.ModelInfo, error)
	modelInfoFn   func(ctx context.Context) (recommenduc.ModelInfo, error)
	corpusStatsFn func(ctx context.Context) (recommenduc.CorpusStats, error)
}

func (m *mockRecommendUC) Recommend(ctx context.Context, req *request.Request) ([]result.Scored, error) {
	return m.recommendFn(ctx, req)
}

func (m *mockRecommendUC) Refit(ctx context.Context) (recommenduc.ModelInfo, error) {
	return m.refitFn(ctx)
}

func (m *mockRecommendUC) ModelInfo(ctx context.Context) (recommenduc.ModelInfo, error) {
	return m.modelInfoFn(ctx)
}

func (m *mockRecommendUC) CorpusStats(ctx context.Context) (recommenduc.CorpusStats, error) {
	return m.corpusStatsFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}
