package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/seekwell-dev/job-board/backend/internal/apperr"
	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/utils"
)

// jobRequest is the payload for both posting and updating. Salary bounds
// mirror the 4-to-9-digit rule of the schema.
type jobRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=10,max=350"`
	Category    string `json:"category" validate:"required"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Location    string `json:"location" validate:"required,min=10"`
	FixedSalary *int64 `json:"fixedSalary" validate:"omitempty,min=1000,max=999999999"`
	SalaryFrom  *int64 `json:"salaryFrom" validate:"omitempty,min=1000,max=999999999"`
	SalaryTo    *int64 `json:"salaryTo" validate:"omitempty,min=1000,max=999999999"`
}

func (h *Handler) readJobRequest(r *http.Request) (*jobRequest, error) {
	req := &jobRequest{}
	if err := h.readJSON(r, req); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := utils.ValidateJobSalary(req.FixedSalary, req.SalaryFrom, req.SalaryTo); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetActiveJobs()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *Handler) PostJob(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	req, err := h.readJobRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		PostedBy:    user.ID,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"message": "Job posted successfully!",
		"job":     job,
	})
}

func (h *Handler) GetMyJobs(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	myJobs, err := h.repository.GetJobsByPoster(user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"myJobs":  myJobs,
	})
}

// UpdateJob replaces the posting wholesale. Only the poster's role is
// checked, not ownership; postedBy is never compared to the acting user.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, apperr.ErrInvalidID)
		return
	}

	req, err := h.readJobRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	job, err := h.repository.GetJobByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.fail(w, r, apperr.BadRequest("Oops, Job not found!"))
		default:
			h.fail(w, r, err)
		}
		return
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Category = req.Category
	job.Country = req.Country
	job.City = req.City
	job.Location = req.Location
	job.FixedSalary = req.FixedSalary
	job.SalaryFrom = req.SalaryFrom
	job.SalaryTo = req.SalaryTo

	if err := h.repository.UpdateJob(job); err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"job":     job,
		"message": "Job Updated Successfully!",
	})
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, apperr.ErrInvalidID)
		return
	}

	job, err := h.repository.GetJobByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.fail(w, r, apperr.NotFound("Job not found!"))
		default:
			h.fail(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteJob(job.ID); err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"message": "Job deleted successfully!",
	})
}

func (h *Handler) GetSingleJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, apperr.ErrInvalidID)
		return
	}

	job, err := h.repository.GetJobByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.fail(w, r, apperr.NotFound("Job Not Found!"))
		default:
			h.fail(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"job":     job,
	})
}
