package main

import (
	"context"
	"fmt"
	"time"

	"blog-api/pkg/config"
	"blog-api/pkg/database"
	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/entity"
	"blog-api/services/webapi/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

var seedUsers = []entity.User{
	{Username: "admin", Email: "admin@blog.test", FirstName: "Site", LastName: "Admin", Role: entity.RoleAdministrator},
	{Username: "alice", Email: "alice@blog.test", FirstName: "Alice", LastName: "Writer", Biography: "Writes about travel and Go.", Role: entity.RoleBlogger},
}

var seedPosts = []entity.Post{
	{Title: "Hello, world", Body: "First post on the new blog.\n\n**Welcome!**", Category: "news", Tags: []string{"intro"}},
	{Title: "A week in the Alps", Body: "## Day one\n\nWe walked up to the hut.", Category: "travel", Tags: []string{"alps", "hiking"}},
	{Title: "Why I like Go", Body: "Small language, big standard library.", Category: "programming", Tags: []string{"go"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(context.Background(), persistent.NewUnitOfWork(db), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase is idempotent: it does nothing once the seed users exist.
func seedDatabase(ctx context.Context, uow persistent.UnitOfWork, log *logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	return uow.Do(ctx, func(repos persistent.Repositories) error {
		var blogger *entity.User
		for _, seed := range seedUsers {
			exists, err := repos.Users.ExistsByUsername(ctx, seed.Username)
			if err != nil {
				return err
			}
			if exists {
				log.Info("User %s already exists, skipping", seed.Username)
				continue
			}

			user := seed
			user.Password = string(hash)
			if err := repos.Users.Create(ctx, &user); err != nil {
				return fmt.Errorf("failed to create user %s: %w", user.Username, err)
			}
			log.Info("Created user: %s (%s)", user.Username, user.Role)
			if user.Role == entity.RoleBlogger {
				blogger = &user
			}
		}

		if blogger == nil {
			return nil
		}

		var firstPostID string
		for _, seed := range seedPosts {
			post := seed
			post.UserID = blogger.ID
			if err := repos.Posts.Create(ctx, &post); err != nil {
				return fmt.Errorf("failed to create post %q: %w", post.Title, err)
			}
			if firstPostID == "" {
				firstPostID = post.ID
			}
			log.Info("Created post: %s", post.Title)
		}

		poll := &entity.Poll{
			UserID:      blogger.ID,
			Question:    "What should the next post be about?",
			Active:      true,
			ActiveUntil: time.Now().AddDate(0, 1, 0),
			Answers:     []entity.PollAnswer{{Name: "More travel"}, {Name: "More Go"}, {Name: "Something else"}},
		}
		if err := repos.Polls.Create(ctx, poll); err != nil {
			return fmt.Errorf("failed to create poll: %w", err)
		}
		if err := repos.Polls.CreatePostPoll(ctx, &entity.PostPoll{PostID: firstPostID, PollID: poll.ID}); err != nil {
			return fmt.Errorf("failed to attach poll: %w", err)
		}

		comments := []*entity.Comment{
			{PostID: firstPostID, AuthorName: "Bob", Content: "Congrats on the launch!", Approved: true},
			{PostID: firstPostID, AuthorName: "Mallory", Content: "Buy cheap watches at ...", Approved: false},
		}
		for _, comment := range comments {
			if err := repos.Comments.Create(ctx, comment); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
		log.Info("Created %d posts, 1 poll and %d comments", len(seedPosts), len(comments))
		return nil
	})
}
