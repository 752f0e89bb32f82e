package workspace

import "time"

// Fixtures mirror a freshly provisioned workspace so the dashboard renders
// something sensible before any agent has written state files.

func fixtureAgents() []Agent {
	return []Agent{
		{
			ID:           "main-agent",
			Name:         "Molty",
			Role:         "Primary Assistant",
			Model:        "claude-sonnet-4.5",
			Level:        "L4",
			Status:       "active",
			Capabilities: []string{"Research", "Writing", "Code", "Analysis"},
			SubAgents:    []string{"researcher", "writer", "coder"},
			Soul:         "I am Molty, an autonomous AI agent focused on helping with research, writing, and analysis tasks. I aim to be helpful, accurate, and efficient.",
			Rules:        "Always verify information. Ask for clarification when needed. Provide sources. Don't make assumptions.",
		},
		{
			ID:           "researcher",
			Name:         "Research Agent",
			Role:         "Information Gatherer",
			Model:        "gpt-5.2",
			Level:        "L2",
			Status:       "idle",
			Capabilities: []string{"Web Search", "Data Analysis", "Summarization"},
		},
		{
			ID:           "writer",
			Name:         "Content Writer",
			Role:         "Content Creator",
			Model:        "claude-sonnet-4.5",
			Level:        "L2",
			Status:       "active",
			Capabilities: []string{"Blog Posts", "Social Media", "Documentation"},
		},
		{
			ID:           "coder",
			Name:         "Code Agent",
			Role:         "Developer",
			Model:        "gpt-5.2",
			Level:        "L3",
			Status:       "idle",
			Capabilities: []string{"Python", "TypeScript", "React", "Node.js"},
		},
	}
}

func fixtureCronJobs() []CronJob {
	now := time.Now().UnixMilli()
	return []CronJob{
		{Name: "Daily Digest", Schedule: "0 9 * * *", LastStatus: "success", ConsecutiveErrors: 0, LastRun: now - 3600000},
		{Name: "Memory Sync", Schedule: "*/30 * * * *", LastStatus: "success", ConsecutiveErrors: 0, LastRun: now - 1800000},
		{Name: "Health Check", Schedule: "*/5 * * * *", LastStatus: "success", ConsecutiveErrors: 0, LastRun: now - 300000},
		{Name: "Content Scheduler", Schedule: "0 * * * *", LastStatus: "failed", ConsecutiveErrors: 2, LastRun: now - 7200000},
		{Name: "Backup Agent State", Schedule: "0 0 * * *", LastStatus: "success", ConsecutiveErrors: 0, LastRun: now - 86400000},
	}
}

func fixtureRevenue() Revenue {
	return Revenue{
		Current:     12450,
		MonthlyBurn: 3200,
		Net:         9250,
		Trend:       12.5,
	}
}

func fixtureServices() []Service {
	now := time.Now().UnixMilli()
	return []Service{
		{Name: "OpenClaw Gateway", Status: "up", Port: 18789, LastCheck: now},
		{Name: "Agent Runtime", Status: "up", Port: 3001, LastCheck: now - 30000},
		{Name: "Memory Service", Status: "up", Port: 5432, LastCheck: now - 60000},
		{Name: "Cron Scheduler", Status: "up", LastCheck: now - 120000},
		{Name: "Webhook Handler", Status: "warning", Port: 8080, LastCheck: now - 300000},
	}
}

func fixtureSuggestedTasks() []SuggestedTask {
	return []SuggestedTask{
		{ID: "1", Title: "Launch product hunt campaign", Reasoning: "PH launches drive significant early user acquisition", NextAction: "Prepare assets and schedule launch", Category: "Revenue", Priority: "high", Effort: "medium", Status: "pending"},
		{ID: "2", Title: "Implement agent memory compression", Reasoning: "Reduce token costs by 30% with smart summarization", NextAction: "Research compression algorithms", Category: "Product", Priority: "high", Effort: "high", Status: "pending"},
		{ID: "3", Title: "Create Discord community bot", Reasoning: "Automate community engagement and support", NextAction: "Define bot capabilities", Category: "Community", Priority: "medium", Effort: "medium", Status: "pending"},
		{ID: "4", Title: "Write comparison blog post", Reasoning: "SEO opportunity for 'OpenClaw vs alternatives'", NextAction: "Outline key differentiators", Category: "Content", Priority: "medium", Effort: "low", Status: "approved"},
		{ID: "5", Title: "Set up monitoring dashboard", Reasoning: "Proactive issue detection saves debugging time", NextAction: "Choose monitoring tools", Category: "Operations", Priority: "high", Effort: "medium", Status: "pending"},
		{ID: "6", Title: "Client case study series", Reasoning: "Social proof increases conversion by 40%", NextAction: "Identify willing clients", Category: "Clients", Priority: "medium", Effort: "medium", Status: "pending"},
	}
}

func fixturePipeline() Pipeline {
	return Pipeline{Draft: 5, Review: 3, Approved: 2, Published: 12}
}
