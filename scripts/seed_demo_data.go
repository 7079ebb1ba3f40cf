package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/infrastructure/database"
	"github.com/munwalk/dialog-ai/pkg/config"
)

func main() {
	log.Println("🚀 Seeding demo data...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	users := []*entities.User{
		{ID: uuid.New(), Name: "김민준", Job: entities.JobProjectManager},
		{ID: uuid.New(), Name: "이서연", Job: entities.JobFrontendDeveloper},
		{ID: uuid.New(), Name: "박지훈", Job: entities.JobBackendDeveloper},
		{ID: uuid.New(), Name: "최수아", Job: entities.JobDatabaseAdministrator},
		{ID: uuid.New(), Name: "정도윤", Job: entities.JobSecurityDeveloper},
	}
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Name, err)
		}
	}

	host := users[0]
	now := time.Now()

	meetings := []struct {
		title       string
		description string
		offsetDays  int
		status      entities.MeetingStatus
		summary     string
		agenda      string
		purpose     string
		importance  entities.ImportanceLevel
		keywords    []string
	}{
		{
			title:       "채용 전략 회의",
			description: "하반기 채용 일정과 포지션별 전략 논의",
			offsetDays:  -7,
			status:      entities.MeetingStatusCompleted,
			summary:     "백엔드 2명, 프론트엔드 1명 채용 확정. 공고는 다음주 게시.",
			agenda:      "포지션 확정, 채용 일정, 면접 프로세스",
			purpose:     "하반기 채용 계획 수립",
			importance:  entities.ImportanceHigh,
			keywords:    []string{"채용", "면접", "일정"},
		},
		{
			title:       "마케팅 캠페인 기획",
			description: "신규 서비스 런칭 캠페인 방향 설정",
			offsetDays:  -3,
			status:      entities.MeetingStatusCompleted,
			summary:     "SNS 중심 캠페인으로 결정. 예산안은 다음 회의에서 확정.",
			agenda:      "캠페인 채널, 예산, 일정",
			purpose:     "런칭 캠페인 기획",
			importance:  entities.ImportanceMedium,
			keywords:    []string{"마케팅", "캠페인", "런칭"},
		},
		{
			title:       "API 설계 리뷰",
			description: "검색 API 응답 구조와 에러 규약 리뷰",
			offsetDays:  2,
			status:      entities.MeetingStatusScheduled,
			summary:     "",
			agenda:      "응답 스키마, 에러 코드, 버저닝",
			purpose:     "API 규약 확정",
			importance:  entities.ImportanceMedium,
			keywords:    []string{"API", "설계", "리뷰"},
		},
	}

	for _, seed := range meetings {
		desc := seed.description
		meeting := &entities.Meeting{
			ID:          uuid.New(),
			Title:       seed.title,
			Description: &desc,
			ScheduledAt: now.AddDate(0, 0, seed.offsetDays),
			Status:      seed.status,
			HostUserID:  host.ID,
		}
		if err := db.Create(meeting).Error; err != nil {
			log.Fatalf("Failed to create meeting %s: %v", seed.title, err)
		}

		for _, u := range users[:3] {
			participant := &entities.Participant{
				ID:        uuid.New(),
				MeetingID: meeting.ID,
				Name:      u.Name,
			}
			if err := db.Create(participant).Error; err != nil {
				log.Fatalf("Failed to create participant: %v", err)
			}
		}

		if seed.status != entities.MeetingStatusCompleted {
			continue
		}

		keywordsJSON, err := keywordsAsJSON(seed.keywords)
		if err != nil {
			log.Fatalf("Failed to encode keywords: %v", err)
		}
		result := &entities.MeetingResult{
			ID:               uuid.New(),
			MeetingID:        meeting.ID,
			Summary:          seed.summary,
			Agenda:           seed.agenda,
			Purpose:          seed.purpose,
			ImportanceLevel:  seed.importance,
			ImportanceReason: "주요 의사결정 포함",
			Keywords:         keywordsJSON,
		}
		if err := db.Create(result).Error; err != nil {
			log.Fatalf("Failed to create meeting result: %v", err)
		}

		due := now.AddDate(0, 0, 5)
		task := &entities.Task{
			ID:           uuid.New(),
			MeetingID:    meeting.ID,
			UserID:       users[1].ID,
			Title:        seed.title + " 후속 작업 정리",
			AssigneeName: users[1].Name,
			DueDate:      &due,
			Status:       entities.TaskStatusTodo,
		}
		if err := db.Create(task).Error; err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}

		item := &entities.ActionItem{
			ID:              uuid.New(),
			MeetingResultID: result.ID,
			Task:            "회의록 공유 및 결정사항 전파",
			AssigneeUserID:  &users[2].ID,
			DueDate:         &due,
			Source:          "summary",
		}
		if err := db.Create(item).Error; err != nil {
			log.Fatalf("Failed to create action item: %v", err)
		}
	}

	fmt.Println("═══════════════════════════════════════════════")
	fmt.Printf("🟢 Seeded %d users and %d meetings\n", len(users), len(meetings))
	for _, u := range users {
		fmt.Printf("   %s (%s)  %s\n", u.Name, u.Job, u.ID)
	}
	fmt.Println("═══════════════════════════════════════════════")
	log.Println("✅ Demo data seeded successfully!")
}

func keywordsAsJSON(keywords []string) (datatypes.JSON, error) {
	raw, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
