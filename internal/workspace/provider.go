package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/wagneradl/mission-control/internal/domain"
)

// Workspace file locations, relative to the workspace directory.
const (
	agentsFile         = "agents/registry.json"
	cronsFile          = "state/crons.json"
	revenueFile        = "state/revenue.json"
	serversFile        = "state/servers.json"
	suggestedTasksFile = "state/suggested-tasks.json"
	contentQueueFile   = "content/queue.md"
)

// Provider reads operator-side state from flat files under the workspace
// directory. Agents write those files out of band; a missing file means
// the fixture dataset is served instead, so the endpoints never 404 on a
// fresh install.
type Provider struct {
	dir    string
	logger zerolog.Logger

	// Guards read-modify-write on the suggested tasks file.
	tasksMu sync.Mutex
}

// NewProvider creates a new workspace provider
func NewProvider(dir string, logger zerolog.Logger) *Provider {
	return &Provider{dir: dir, logger: logger}
}

// Agents returns the agent registry with a fleet status summary.
func (p *Provider) Agents() (*AgentRegistry, error) {
	agents := fixtureAgents()

	var payload struct {
		Agents []Agent `json:"agents"`
	}
	found, err := p.readJSON(agentsFile, &payload)
	if err != nil {
		return nil, err
	}
	if found && len(payload.Agents) > 0 {
		agents = payload.Agents
	}

	status := AgentStatus{Total: len(agents)}
	for _, a := range agents {
		if a.Status == "offline" {
			status.Unhealthy++
		} else {
			status.Healthy++
		}
		if a.Status == "active" && a.Level != "L4" {
			status.ActiveSubAgents++
		}
	}

	return &AgentRegistry{Agents: agents, Status: status}, nil
}

// CronJobs returns scheduled job health records.
func (p *Provider) CronJobs() ([]CronJob, error) {
	var payload struct {
		Jobs []CronJob `json:"jobs"`
	}
	found, err := p.readJSON(cronsFile, &payload)
	if err != nil {
		return nil, err
	}
	if found && len(payload.Jobs) > 0 {
		return payload.Jobs, nil
	}
	return fixtureCronJobs(), nil
}

// Revenue returns the revenue snapshot.
func (p *Provider) Revenue() (*Revenue, error) {
	var revenue Revenue
	found, err := p.readJSON(revenueFile, &revenue)
	if err != nil {
		return nil, err
	}
	if !found {
		revenue = fixtureRevenue()
	}
	return &revenue, nil
}

// Services returns the monitored service list.
func (p *Provider) Services() ([]Service, error) {
	var payload struct {
		Services []Service `json:"services"`
	}
	found, err := p.readJSON(serversFile, &payload)
	if err != nil {
		return nil, err
	}
	if found && len(payload.Services) > 0 {
		return payload.Services, nil
	}
	return fixtureServices(), nil
}

// SuggestedTasks returns agent-proposed tasks awaiting triage.
func (p *Provider) SuggestedTasks() ([]SuggestedTask, error) {
	p.tasksMu.Lock()
	defer p.tasksMu.Unlock()
	return p.loadSuggestedTasks()
}

// TriageTask approves or rejects one suggested task and persists the whole
// list back to the workspace, returning the updated set. Triage of an
// unknown id is a no-op; the caller sees the unchanged list.
func (p *Provider) TriageTask(id, action string) ([]SuggestedTask, error) {
	status := ""
	switch action {
	case "approve":
		status = "approved"
	case "reject":
		status = "rejected"
	default:
		return nil, domain.NewValidationError("action", "must be approve or reject")
	}

	p.tasksMu.Lock()
	defer p.tasksMu.Unlock()

	tasks, err := p.loadSuggestedTasks()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
		}
	}

	if err := p.writeSuggestedTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ContentPipeline counts queue entries per stage from the content queue
// markdown file. Lines carry stage markers like "[draft]"; a stage with no
// matching lines keeps its fixture count, matching the way a half-filled
// queue file behaved historically.
func (p *Provider) ContentPipeline() (*Pipeline, error) {
	path := filepath.Join(p.dir, contentQueueFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			pipeline := fixturePipeline()
			return &pipeline, nil
		}
		return nil, &domain.TransientIOError{Op: "read " + contentQueueFile, Err: err}
	}

	fixture := fixturePipeline()
	pipeline := Pipeline{}
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.Contains(line, "[draft]"):
			pipeline.Draft++
		case strings.Contains(line, "[review]"):
			pipeline.Review++
		case strings.Contains(line, "[approved]"):
			pipeline.Approved++
		case strings.Contains(line, "[published]"):
			pipeline.Published++
		}
	}
	if pipeline.Draft == 0 {
		pipeline.Draft = fixture.Draft
	}
	if pipeline.Review == 0 {
		pipeline.Review = fixture.Review
	}
	if pipeline.Approved == 0 {
		pipeline.Approved = fixture.Approved
	}
	if pipeline.Published == 0 {
		pipeline.Published = fixture.Published
	}

	return &pipeline, nil
}

func (p *Provider) loadSuggestedTasks() ([]SuggestedTask, error) {
	var payload struct {
		Tasks []SuggestedTask `json:"tasks"`
	}
	found, err := p.readJSON(suggestedTasksFile, &payload)
	if err != nil {
		return nil, err
	}
	if found && len(payload.Tasks) > 0 {
		return payload.Tasks, nil
	}
	return fixtureSuggestedTasks(), nil
}

func (p *Provider) writeSuggestedTasks(tasks []SuggestedTask) error {
	path := filepath.Join(p.dir, suggestedTasksFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.TransientIOError{Op: "mkdir " + filepath.Dir(suggestedTasksFile), Err: err}
	}

	data, err := json.MarshalIndent(map[string]any{"tasks": tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggested tasks: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &domain.TransientIOError{Op: "write " + suggestedTasksFile, Err: err}
	}
	return nil
}

// readJSON loads and decodes one workspace file. It reports found=false
// when the file does not exist so callers can fall back to fixtures.
func (p *Provider) readJSON(rel string, out any) (bool, error) {
	path := filepath.Join(p.dir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &domain.TransientIOError{Op: "read " + rel, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		p.logger.Warn().Err(err).Str("file", rel).Msg("malformed workspace file")
		return false, &domain.TransientIOError{Op: "parse " + rel, Err: err}
	}
	return true, nil
}
