package workspace

// Agent levels run from L1 (narrow tool) to L4 (primary operator agent).
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Model        string   `json:"model"`
	Level        string   `json:"level"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities,omitempty"`
	SubAgents    []string `json:"subAgents,omitempty"`
	Soul         string   `json:"soul,omitempty"`
	Rules        string   `json:"rules,omitempty"`
}

// AgentStatus aggregates fleet health over the registry.
type AgentStatus struct {
	Total           int `json:"total"`
	Healthy         int `json:"healthy"`
	Unhealthy       int `json:"unhealthy"`
	ActiveSubAgents int `json:"activeSubAgents"`
}

// AgentRegistry is the agents endpoint payload.
type AgentRegistry struct {
	Agents []Agent     `json:"agents"`
	Status AgentStatus `json:"status"`
}

// CronJob is one scheduled job's health record.
type CronJob struct {
	Name              string `json:"name"`
	Schedule          string `json:"schedule"`
	LastStatus        string `json:"lastStatus"`
	ConsecutiveErrors int    `json:"consecutiveErrors"`
	LastRun           int64  `json:"lastRun"`
}

// Revenue is the money snapshot shown on the dashboard header.
type Revenue struct {
	Current     float64 `json:"current"`
	MonthlyBurn float64 `json:"monthlyBurn"`
	Net         float64 `json:"net"`
	Trend       float64 `json:"trend"`
}

// Service is one monitored process in the system state view.
type Service struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Port      int    `json:"port,omitempty"`
	LastCheck int64  `json:"lastCheck"`
}

// SuggestedTask is an agent-proposed task awaiting operator triage.
type SuggestedTask struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Reasoning  string `json:"reasoning"`
	NextAction string `json:"nextAction"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Effort     string `json:"effort"`
	Status     string `json:"status"`
}

// Pipeline counts content queue items per stage.
type Pipeline struct {
	Draft     int `json:"draft"`
	Review    int `json:"review"`
	Approved  int `json:"approved"`
	Published int `json:"published"`
}
