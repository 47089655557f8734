package main

import (
	"context"
	"log"

	"student-api/internal/apperror"
	"student-api/internal/config"
	"student-api/internal/database"
	"student-api/internal/logger"
	"student-api/internal/models"
	"student-api/internal/repository"
	"student-api/internal/service"

	"go.uber.org/zap"
)

type seedSubject struct {
	title    string
	imageURL string
	duration string
	topics   []string
}

var subjects = []seedSubject{
	{"Mathematics", "images/mathematics.png", "12 weeks", []string{"Sets and Logic", "Linear Algebra", "Calculus"}},
	{"Physics", "images/physics.png", "10 weeks", []string{"Kinematics", "Thermodynamics", "Electromagnetism"}},
	{"Computer Science", "images/computer-science.png", "14 weeks", []string{"Algorithms", "Data Structures", "Databases"}},
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to init logger: ", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx := context.Background()

	logg.Info("Starting database seeding...")

	db, err := database.NewConnection(cfg.Database, logg)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Prepare(ctx, db, cfg.Database, logg); err != nil {
		logg.Fatal("Failed to prepare schema", zap.Error(err))
	}

	// Initialize services
	subjectService := service.NewSubjectService(repository.NewSubjectRepository(db), nil, logg)
	studentService := service.NewStudentService(
		repository.NewStudentRepository(db),
		repository.NewCompletedTopicRepository(db),
		nil,
		logg,
	)

	existing, err := subjectService.ListSubjects(ctx)
	if err != nil {
		logg.Fatal("Failed to list subjects", zap.Error(err))
	}
	if len(existing) > 0 {
		logg.Info("Database already seeded, skipping", zap.Int("subjects", len(existing)))
		return
	}

	var subjectIDs, topicIDs []int
	for _, s := range subjects {
		created, err := subjectService.CreateSubject(ctx, &models.CreateSubjectRequest{
			Title:    s.title,
			ImageURL: s.imageURL,
			Duration: s.duration,
		})
		if err != nil {
			logg.Fatal("Failed to create subject", zap.String("title", s.title), zap.Error(err))
		}
		subjectIDs = append(subjectIDs, created.SubjectID)

		for _, title := range s.topics {
			topic, err := subjectService.CreateTopic(ctx, created.SubjectID, &models.CreateTopicRequest{Title: title})
			if err != nil {
				logg.Fatal("Failed to create topic", zap.String("title", title), zap.Error(err))
			}
			topicIDs = append(topicIDs, topic.TopicID)
		}
	}

	studentID, err := studentService.CreateStudent(ctx, &models.CreateStudentRequest{
		FirstName:  "Ada",
		SecondName: "Lovelace",
		Title:      "Ms",
		Email:      "ada.lovelace@example.com",
		Dob:        "1815-12-10",
		SubjectIDs: subjectIDs[:2],
	})
	if err != nil {
		if appErr, ok := apperror.As(err); ok {
			logg.Fatal("Failed to create student", zap.String("kind", appErr.Kind.String()), zap.Error(err))
		}
		logg.Fatal("Failed to create student", zap.Error(err))
	}

	for i, topicID := range topicIDs[:2] {
		req := &models.UpdateTopicStatusRequest{TopicID: topicID, IsComplete: i == 0}
		if err := studentService.UpdateTopicStatus(ctx, studentID, req); err != nil {
			logg.Fatal("Failed to record topic progress", zap.Int("topic_id", topicID), zap.Error(err))
		}
	}

	logg.Info("Database seeding completed successfully!",
		zap.Int("subjects", len(subjectIDs)),
		zap.Int("topics", len(topicIDs)),
		zap.Int("student_id", studentID),
	)
}
