package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seekwell-dev/job-board/backend/internal/domain"
)

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING expired, job_posted_on
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	job.ID = uuid.New()

	args := []any{job.ID, job.Title, job.Description, job.Category, job.Country, job.City, job.Location, job.FixedSalary, job.SalaryFrom, job.SalaryTo, job.PostedBy}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.Expired, &job.JobPostedOn); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobByID(id uuid.UUID) (*domain.Job, error) {
	query := `
		SELECT title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, job_posted_on, posted_by
		FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	job := &domain.Job{
		ID: id,
	}

	dst := []any{&job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location, &job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.JobPostedOn, &job.PostedBy}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return job, nil
}

func (r *Repository) GetActiveJobs() ([]*domain.Job, error) {
	query := `
		SELECT id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, job_posted_on, posted_by
		FROM jobs WHERE expired = FALSE
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{}
		dst := []any{&job.ID, &job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location, &job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.JobPostedOn, &job.PostedBy}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) GetJobsByPoster(userID uuid.UUID) ([]*domain.Job, error) {
	query := `
		SELECT id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, job_posted_on, posted_by
		FROM jobs WHERE posted_by = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{}
		dst := []any{&job.ID, &job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location, &job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.JobPostedOn, &job.PostedBy}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// UpdateJob replaces the full posting by id. The ownership and timestamp
// columns are left untouched.
func (r *Repository) UpdateJob(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			title = $1,
			description = $2,
			category = $3,
			country = $4,
			city = $5,
			location = $6,
			fixed_salary = $7,
			salary_from = $8,
			salary_to = $9,
			expired = $10
		WHERE id = $11
		RETURNING job_posted_on, posted_by
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{job.Title, job.Description, job.Category, job.Country, job.City, job.Location, job.FixedSalary, job.SalaryFrom, job.SalaryTo, job.Expired, job.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.JobPostedOn, &job.PostedBy); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJob(id uuid.UUID) error {
	query := `
		DELETE FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// ExpireJobsPostedBefore marks every still-active posting older than cutoff
// as expired and returns how many rows changed.
func (r *Repository) ExpireJobsPostedBefore(cutoff time.Time) (int64, error) {
	query := `
		UPDATE jobs SET expired = TRUE WHERE expired = FALSE AND job_posted_on < $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
