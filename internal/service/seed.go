package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// SeedService loads demo fixture rows into every table. It writes through
// the repositories directly so the fixtures keep their relative timestamps.
type SeedService struct {
	activities domain.ActivityRepository
	events     domain.CalendarEventRepository
	tasks      domain.TaskRepository
	contacts   domain.ContactRepository
	drafts     domain.ContentDraftRepository
	products   domain.EcosystemProductRepository
	sessions   domain.ChatSessionRepository
	messages   domain.ChatMessageRepository
	clock      domain.Clock
}

// NewSeedService creates a new seed service
func NewSeedService(
	activities domain.ActivityRepository,
	events domain.CalendarEventRepository,
	tasks domain.TaskRepository,
	contacts domain.ContactRepository,
	drafts domain.ContentDraftRepository,
	products domain.EcosystemProductRepository,
	sessions domain.ChatSessionRepository,
	messages domain.ChatMessageRepository,
	clock domain.Clock,
) *SeedService {
	return &SeedService{
		activities: activities,
		events:     events,
		tasks:      tasks,
		contacts:   contacts,
		drafts:     drafts,
		products:   products,
		sessions:   sessions,
		messages:   messages,
		clock:      clock,
	}
}

// SeedAll inserts the demo dataset. Rows are timestamped relative to the
// current instant so the dashboard always shows a plausible recent history.
// There is no existence check: running it again duplicates every table
// except products, where already-taken fixture slugs are skipped.
func (s *SeedService) SeedAll(ctx context.Context) error {
	now := domain.EpochMillis(s.clock.Now())
	const (
		minute = int64(60 * 1000)
		hour   = 60 * minute
		day    = 24 * hour
	)

	activities := []domain.Activity{
		{Type: "agent", Title: "Agent spawned sub-agent for research task", Source: "openclaw", Timestamp: now - 15*minute},
		{Type: "cron", Title: "Daily digest cron completed successfully", Source: "scheduler", Timestamp: now - hour},
		{Type: "message", Title: "New message received on Telegram", Source: "telegram", Timestamp: now - 2*hour},
		{Type: "task", Title: "Content draft approved for publication", Source: "content", Timestamp: now - 3*hour},
		{Type: "system", Title: "System health check passed", Source: "monitor", Timestamp: now - 4*hour},
		{Type: "agent", Title: "Memory consolidation completed", Source: "openclaw", Timestamp: now - 5*hour},
	}
	for i := range activities {
		activities[i].ID = uuid.NewString()
		activities[i].CreatedAt = now
		if err := s.activities.Insert(ctx, &activities[i]); err != nil {
			return fmt.Errorf("failed to seed activities: %w", err)
		}
	}

	events := []domain.CalendarEvent{
		{Title: "Team Standup", Start: now + 2*hour, End: now + 2*hour + 30*minute, Type: "meeting", Color: "#3B82F6"},
		{Title: "Content Review", Start: now + day, End: now + day + hour, Type: "task", Color: "#8B5CF6"},
		{Title: "Agent Maintenance", Start: now + 2*day, End: now + 2*day + 2*hour, Type: "maintenance", Color: "#F59E0B"},
		{Title: "Client Call", Start: now + 3*day, End: now + 3*day + hour, Type: "meeting", Color: "#10B981"},
	}
	for i := range events {
		events[i].ID = uuid.NewString()
		events[i].CreatedAt = now
		if err := s.events.Insert(ctx, &events[i]); err != nil {
			return fmt.Errorf("failed to seed calendar events: %w", err)
		}
	}

	tasks := []domain.Task{
		{Title: "Launch new landing page", Description: "Complete redesign and deploy", Status: "pending", Priority: "high", Category: "Product", Effort: "medium", Reasoning: "Will increase conversion rate", NextAction: "Review final mockups"},
		{Title: "Write weekly newsletter", Description: "Curate top AI news", Status: "in_progress", Priority: "medium", Category: "Content", Effort: "low", Reasoning: "Maintains audience engagement", NextAction: "Draft intro paragraph"},
		{Title: "Optimize agent prompts", Description: "Improve response quality", Status: "pending", Priority: "high", Category: "Operations", Effort: "high", Reasoning: "Reduces token costs by 20%", NextAction: "Analyze current prompt performance"},
		{Title: "Client onboarding automation", Description: "Automate welcome sequence", Status: "approved", Priority: "medium", Category: "Clients", Effort: "medium", Reasoning: "Saves 2 hours per client", NextAction: "Map current flow"},
	}
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
		if err := s.tasks.Insert(ctx, &tasks[i]); err != nil {
			return fmt.Errorf("failed to seed tasks: %w", err)
		}
	}

	drafts := []domain.ContentDraft{
		{Title: "AI Agents in 2026: The Complete Guide", Content: "Introduction to autonomous AI agents and how they're transforming productivity...", Platform: "blog", Status: domain.DraftStatusDraft, CreatedAt: now},
		{Title: "Thread: Building with OpenClaw", Content: "1/ Just shipped my first autonomous agent with @OpenClaw. Here's what I learned...", Platform: "twitter", Status: domain.DraftStatusReview, CreatedAt: now - day},
		{Title: "OpenClaw Setup Tutorial", Content: "In this video, I'll walk you through setting up OpenClaw from scratch...", Platform: "youtube", Status: domain.DraftStatusApproved, ScheduledFor: now + 2*day, CreatedAt: now - 2*day},
		{Title: "Daily AI Digest #47", Content: "Today's top stories: GPT-5.2 updates, new Claude features, and more...", Platform: "newsletter", Status: domain.DraftStatusPublished, PublishedAt: now - day, CreatedAt: now - 2*day},
	}
	for i := range drafts {
		drafts[i].ID = uuid.NewString()
		drafts[i].UpdatedAt = now
		if err := s.drafts.Insert(ctx, &drafts[i]); err != nil {
			return fmt.Errorf("failed to seed content drafts: %w", err)
		}
	}

	products := []domain.EcosystemProduct{
		{Name: "OpenClaw Dashboard", Slug: "dashboard", Description: "Mission control for AI agents", Status: domain.ProductStatusActive, Health: 98, Category: "Tools"},
		{Name: "Agent Memory System", Slug: "memory", Description: "Long-term memory for AI agents", Status: domain.ProductStatusActive, Health: 95, Category: "Core"},
		{Name: "Content Automator", Slug: "content-automator", Description: "Automated content pipeline", Status: domain.ProductStatusDevelopment, Health: 75, Category: "Tools"},
		{Name: "Client Portal", Slug: "client-portal", Description: "Self-service client dashboard", Status: domain.ProductStatusConcept, Health: 0, Category: "Business"},
	}
	for i := range products {
		// Products carry a unique slug, so a re-run skips fixture slugs
		// that already exist instead of failing halfway through.
		if _, err := s.products.GetBySlug(ctx, products[i].Slug); err == nil {
			continue
		} else if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		products[i].ID = uuid.NewString()
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		if err := s.products.Insert(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	messages := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "What's on my schedule today?", Timestamp: now - 2*hour},
		{Role: domain.RoleAssistant, Content: "You have a team standup in 2 hours and a content review session tomorrow. Would you like me to prepare any materials?", Timestamp: now - 2*hour + 5000},
		{Role: domain.RoleUser, Content: "Yes, prepare the content metrics report", Timestamp: now - hour},
		{Role: domain.RoleAssistant, Content: "I've compiled the content metrics report. Key highlights: 15% increase in engagement this week, 3 new drafts pending review, and the newsletter open rate improved to 42%.", Timestamp: now - hour + 8000},
	}
	session := &domain.ChatSession{
		ID:           uuid.NewString(),
		Title:        "General Assistant",
		Channel:      "webchat",
		LastMessage:  truncate(messages[len(messages)-1].Content, domain.LastMessageMaxLen),
		MessageCount: len(messages),
		CreatedAt:    now - day,
		UpdatedAt:    now,
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return fmt.Errorf("failed to seed chat session: %w", err)
	}

	for i := range messages {
		messages[i].ID = uuid.NewString()
		messages[i].SessionID = session.ID
		messages[i].Channel = "webchat"
		if err := s.messages.Insert(ctx, &messages[i]); err != nil {
			return fmt.Errorf("failed to seed chat messages: %w", err)
		}
	}

	contacts := []domain.Contact{
		{Name: "Alex Chen", Email: "alex@techcorp.com", Company: "TechCorp", Role: "CTO", Tags: []string{"prospect", "enterprise"}, Source: "referral", LastInteraction: now - day},
		{Name: "Sarah Miller", Email: "sarah@startup.io", Company: "Startup.io", Role: "Founder", Tags: []string{"client", "active"}, Source: "inbound", LastInteraction: now - 2*hour},
		{Name: "James Wilson", Email: "james@agency.co", Company: "Creative Agency", Role: "Director", Tags: []string{"partner"}, Source: "conference", LastInteraction: now - 3*day},
	}
	for i := range contacts {
		contacts[i].ID = uuid.NewString()
		contacts[i].CreatedAt = now
		if err := s.contacts.Insert(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("failed to seed contacts: %w", err)
		}
	}

	return nil
}
