package seed

import (
	"log/slog"

	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/repository"
	"github.com/seekwell-dev/job-board/backend/internal/utils"
)

func InsertRandomUsers(repo *repository.Repository, n int, plainPassword string) ([]*domain.User, error) {
	users := make([]*domain.User, 0, n)

	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(plainPassword, "example.com")
		if err != nil {
			return nil, err
		}

		if err := repo.CreateUser(user); err != nil {
			return nil, err
		}

		slog.Info("inserted user", "email", user.Email, "role", user.Role)
		users = append(users, user)
	}

	return users, nil
}

// InsertRandomJobs spreads n postings across the given employers.
func InsertRandomJobs(repo *repository.Repository, employers []*domain.User, n int) error {
	for i := 0; i < n; i++ {
		employer := employers[i%len(employers)]

		job := utils.GenerateRandomJob(employer)
		if err := repo.CreateJob(job); err != nil {
			return err
		}

		slog.Info("inserted job", "title", job.Title, "postedBy", employer.Email)
	}

	return nil
}
