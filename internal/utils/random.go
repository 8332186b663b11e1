package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/password"
)

var firstNames = []string{
	"Ann", "Ben", "Carla", "David", "Elena", "Frank", "Grace", "Hugo",
	"Irene", "Jack", "Karen", "Liam", "Mona", "Nate", "Olga", "Paul",
}

var lastNames = []string{
	"Adams", "Baker", "Chen", "Diaz", "Evans", "Fischer", "Garcia",
	"Hughes", "Ivanov", "Jones", "Klein", "Lopez", "Miller", "Novak",
}

var jobTitles = []string{
	"Backend Engineer", "Frontend Developer", "Data Analyst",
	"Product Manager", "QA Engineer", "DevOps Engineer",
	"Support Specialist", "Technical Writer", "UX Designer",
}

var jobCategories = []string{
	"Engineering", "Design", "Marketing", "Sales", "Operations", "Support",
}

var jobLocations = []struct {
	Country string
	City    string
}{
	{"USA", "San Francisco"},
	{"Germany", "Berlin"},
	{"UK", "London"},
	{"Canada", "Toronto"},
	{"Netherlands", "Amsterdam"},
	{"Spain", "Madrid"},
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func GenerateRandomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomRole() domain.Role {
	if rand.Intn(2) == 0 {
		return domain.RoleJobSeeker
	}
	return domain.RoleEmployer
}

func GenerateRandomUser(plainPassword string, emailDomain string) (*domain.User, error) {
	name := GenerateRandomName()
	passwordHash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	local := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + fmt.Sprintf("%03d", rand.Intn(1000))

	user := &domain.User{
		Name:         name,
		Email:        local + "@" + emailDomain,
		Phone:        fmt.Sprintf("555-%04d", rand.Intn(10000)),
		Role:         GenerateRandomRole(),
		PasswordHash: passwordHash,
	}

	return user, nil
}

func GenerateRandomJob(postedBy *domain.User) *domain.Job {
	title := jobTitles[rand.Intn(len(jobTitles))]
	loc := jobLocations[rand.Intn(len(jobLocations))]

	job := &domain.Job{
		Title:       title,
		Description: fmt.Sprintf("We are hiring a %s to join our %s team in %s.", title, jobCategories[rand.Intn(len(jobCategories))], loc.City),
		Category:    jobCategories[rand.Intn(len(jobCategories))],
		Country:     loc.Country,
		City:        loc.City,
		Location:    fmt.Sprintf("%d Main Street, %s", rand.Intn(900)+100, loc.City),
		PostedBy:    postedBy.ID,
	}

	// mixed salary modes, one per posting
	if rand.Intn(2) == 0 {
		fixed := int64(rand.Intn(150000) + 30000)
		job.FixedSalary = &fixed
	} else {
		from := int64(rand.Intn(80000) + 30000)
		to := from + int64(rand.Intn(50000)+5000)
		job.SalaryFrom = &from
		job.SalaryTo = &to
	}

	return job
}
