// Seeds a local database with a faculty member, two students and a sample
// quiz so the platform can be exercised without registering by hand.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"elearning-service/internal/config"
	"elearning-service/internal/db"
	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if err := db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := db.Client.Database(cfg.MongoDB.Database)
	ctx := context.Background()

	for _, name := range []string{"users", "courses", "quizzes", "attempts", "feedback", "materials"} {
		if err := database.Collection(name).Drop(ctx); err != nil {
			log.Fatalf("Failed to drop %s: %v", name, err)
		}
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	courseRepo := repository.NewCourseRepository(database)
	quizRepo := repository.NewQuizRepository(database)

	faculty := seedUser(ctx, userRepo, "Dr. Alice", "alice@uni.edu", models.RoleFaculty)
	seedUser(ctx, userRepo, "Bob Student", "bob@uni.edu", models.RoleStudent)
	seedUser(ctx, userRepo, "Carol Student", "carol@uni.edu", models.RoleStudent)

	course := &models.Course{
		Title:       "Intro to Algorithms",
		Description: "Basics of algorithms",
		Faculty:     faculty.ID,
		CreatedAt:   time.Now(),
	}
	if err := courseRepo.Create(ctx, course); err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	quiz := &models.Quiz{
		Title:  "Algo Quiz 1",
		Course: course.ID,
		Questions: []models.Question{
			{
				Question:     "What is the time complexity of binary search?",
				Options:      []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
				CorrectIndex: 1,
				Points:       10,
			},
			{
				Question:     "What is the best case of quicksort?",
				Options:      []string{"O(n^2)", "O(n log n)", "O(n)", "O(log n)"},
				CorrectIndex: 1,
				Points:       10,
			},
		},
		CreatedAt: time.Now(),
	}
	if err := quizRepo.Create(ctx, quiz); err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	log.Println("Seed complete")
}

func seedUser(ctx context.Context, repo *repository.UserRepository, name, email string, role models.Role) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		Badges:    []string{},
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return user
}
