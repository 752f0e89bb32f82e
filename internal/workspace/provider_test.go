package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagneradl/mission-control/internal/domain"
)

func newTestProvider(t *testing.T) (*Provider, string) {
	t.Helper()
	dir := t.TempDir()
	return NewProvider(dir, zerolog.Nop()), dir
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAgentsFixtureFallback(t *testing.T) {
	p, _ := newTestProvider(t)

	registry, err := p.Agents()
	require.NoError(t, err)
	assert.Len(t, registry.Agents, 4)
	assert.Equal(t, 4, registry.Status.Total)
	assert.Equal(t, 4, registry.Status.Healthy)
	assert.Equal(t, 0, registry.Status.Unhealthy)
	// The L4 primary agent is active but not counted as a sub-agent.
	assert.Equal(t, 1, registry.Status.ActiveSubAgents)
}

func TestAgentsFromFile(t *testing.T) {
	p, dir := newTestProvider(t)

	writeFile(t, dir, "agents/registry.json", `{"agents":[
		{"id":"a1","name":"One","level":"L4","status":"active"},
		{"id":"a2","name":"Two","level":"L2","status":"offline"},
		{"id":"a3","name":"Three","level":"L1","status":"active"}
	]}`)

	registry, err := p.Agents()
	require.NoError(t, err)
	assert.Equal(t, 3, registry.Status.Total)
	assert.Equal(t, 2, registry.Status.Healthy)
	assert.Equal(t, 1, registry.Status.Unhealthy)
	assert.Equal(t, 1, registry.Status.ActiveSubAgents)
}

func TestMalformedWorkspaceFile(t *testing.T) {
	p, dir := newTestProvider(t)

	writeFile(t, dir, "state/revenue.json", `{not json`)

	_, err := p.Revenue()
	assert.True(t, domain.IsTransient(err))
}

func TestRevenueFromFile(t *testing.T) {
	p, dir := newTestProvider(t)

	writeFile(t, dir, "state/revenue.json", `{"current":5000,"monthlyBurn":1000,"net":4000,"trend":-2.5}`)

	revenue, err := p.Revenue()
	require.NoError(t, err)
	assert.Equal(t, float64(5000), revenue.Current)
	assert.Equal(t, float64(-2.5), revenue.Trend)
}

func TestCronJobsFixtureFallback(t *testing.T) {
	p, _ := newTestProvider(t)

	jobs, err := p.CronJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 5)
	assert.Equal(t, "Daily Digest", jobs[0].Name)
}

func TestTriageTaskPersists(t *testing.T) {
	p, dir := newTestProvider(t)

	// Triage against the fixture list materializes the file.
	tasks, err := p.TriageTask("1", "approve")
	require.NoError(t, err)
	require.Len(t, tasks, 6)
	assert.Equal(t, "approved", tasks[0].Status)

	raw, err := os.ReadFile(filepath.Join(dir, "state/suggested-tasks.json"))
	require.NoError(t, err)
	var payload struct {
		Tasks []SuggestedTask `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "approved", payload.Tasks[0].Status)

	// A second triage reads the persisted file, not the fixture.
	tasks, err = p.TriageTask("2", "reject")
	require.NoError(t, err)
	assert.Equal(t, "approved", tasks[0].Status)
	assert.Equal(t, "rejected", tasks[1].Status)
}

func TestTriageTaskInvalidAction(t *testing.T) {
	p, _ := newTestProvider(t)

	_, err := p.TriageTask("1", "defer")
	assert.True(t, domain.IsValidation(err))
}

func TestContentPipelineCounts(t *testing.T) {
	p, dir := newTestProvider(t)

	writeFile(t, dir, "content/queue.md", `# Queue
- post one [draft]
- post two [draft]
- post three [review]
- post four [published]
`)

	pipeline, err := p.ContentPipeline()
	require.NoError(t, err)
	assert.Equal(t, 2, pipeline.Draft)
	assert.Equal(t, 1, pipeline.Review)
	// Stages absent from the file keep their fixture counts.
	assert.Equal(t, 2, pipeline.Approved)
	assert.Equal(t, 1, pipeline.Published)
}

func TestContentPipelineFixtureFallback(t *testing.T) {
	p, _ := newTestProvider(t)

	pipeline, err := p.ContentPipeline()
	require.NoError(t, err)
	assert.Equal(t, 5, pipeline.Draft)
	assert.Equal(t, 12, pipeline.Published)
}
