package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

// reporterStub registra las llamadas de recálculo sin tocar repositorios
type reporterStub struct {
	refreshRequests int
	flushes         int
}

func (r *reporterStub) GetSummary(*domain.FilterCriteria) (*domain.DashboardSummary, error) {
	return nil, nil
}

func (r *reporterStub) GetActivities(*domain.FilterCriteria) ([]*domain.Activity, error) {
	return nil, nil
}

func (r *reporterStub) GetGoalProgress(string) (*domain.ContractorProgress, error) {
	return nil, nil
}

func (r *reporterStub) SaveGoal(string, string, string, float64) error { return nil }
func (r *reporterStub) RequestGoalsRefresh()                           { r.refreshRequests++ }
func (r *reporterStub) FlushGoalsRefresh()                             { r.flushes++ }
func (r *reporterStub) Close()                                         {}

func TestRefreshGoals_SinFlushSoloPrograma(t *testing.T) {
	stub := &reporterStub{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/goals-refresh", nil)

	RefreshGoals(stub)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.refreshRequests)
	assert.Equal(t, 0, stub.flushes)
}

func TestRefreshGoals_FlushRecalculaDeInmediato(t *testing.T) {
	stub := &reporterStub{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/goals-refresh?flush=true", nil)

	RefreshGoals(stub)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.refreshRequests)
	assert.Equal(t, 1, stub.flushes)
}
