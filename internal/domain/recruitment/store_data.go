package recruitment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const jobRequestColumns = `id, title, department, position, required_count, job_description,
    requirements, requested_by, requested_date, deadline::text, status, created_at`

func scanJobRequestRow(row pgx.Row) (jobRequestRow, error) {
	var r jobRequestRow
	err := row.Scan(&r.id, &r.title, &r.department, &r.position, &r.requiredCount,
		&r.jobDescription, &r.requirements, &r.requestedBy, &r.requestedDate,
		&r.deadline, &r.status, &r.createdAt)
	return r, err
}

func (s *Store) InsertJobRequest(ctx context.Context, row jobRequestRow) (jobRequestRow, error) {
	return scanJobRequestRow(s.DB.QueryRow(ctx, `
    INSERT INTO job_requests (title, department, position, required_count, job_description,
      requirements, requested_by, deadline, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+jobRequestColumns,
		row.title, row.department, row.position, row.requiredCount, row.jobDescription,
		row.requirements, row.requestedBy, row.deadline, row.status))
}

func (s *Store) ListJobRequests(ctx context.Context) ([]jobRequestRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+jobRequestColumns+` FROM job_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []jobRequestRow
	for rows.Next() {
		r, err := scanJobRequestRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const jobApplicationColumns = `id, job_request_id, applicant_name, email, phone, resume_url,
    cover_letter, application_date, status, notes, created_at`

func scanJobApplicationRow(row pgx.Row) (jobApplicationRow, error) {
	var r jobApplicationRow
	err := row.Scan(&r.id, &r.jobRequestID, &r.applicantName, &r.email, &r.phone,
		&r.resumeURL, &r.coverLetter, &r.applicationDate, &r.status, &r.notes, &r.createdAt)
	return r, err
}

func (s *Store) InsertJobApplication(ctx context.Context, row jobApplicationRow) (jobApplicationRow, error) {
	return scanJobApplicationRow(s.DB.QueryRow(ctx, `
    INSERT INTO job_applications (job_request_id, applicant_name, email, phone, resume_url,
      cover_letter, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+jobApplicationColumns,
		row.jobRequestID, row.applicantName, row.email, row.phone, row.resumeURL,
		row.coverLetter, row.status, row.notes))
}

func (s *Store) ListJobApplications(ctx context.Context) ([]jobApplicationRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []jobApplicationRow
	for rows.Next() {
		r, err := scanJobApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateJobApplication(ctx context.Context, id int64, set map[string]any) (jobApplicationRow, error) {
	if len(set) == 0 {
		return scanJobApplicationRow(s.DB.QueryRow(ctx,
			`SELECT `+jobApplicationColumns+` FROM job_applications WHERE id = $1`, id))
	}
	// Column names come from the fixed changes() mapping, never from
	// request input.
	assignments := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	position := 1
	for column, value := range set {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		args = append(args, value)
		position++
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE job_applications SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), position, jobApplicationColumns)
	return scanJobApplicationRow(s.DB.QueryRow(ctx, query, args...))
}

const interviewColumns = `id, application_id, interview_date, interviewer_id, interview_type,
    location, notes, result, score::text, status, created_at`

func scanInterviewRow(row pgx.Row) (interviewRow, error) {
	var r interviewRow
	err := row.Scan(&r.id, &r.applicationID, &r.interviewDate, &r.interviewerID,
		&r.interviewType, &r.location, &r.notes, &r.result, &r.score, &r.status, &r.createdAt)
	return r, err
}

func (s *Store) InsertInterview(ctx context.Context, row interviewRow) (interviewRow, error) {
	return scanInterviewRow(s.DB.QueryRow(ctx, `
    INSERT INTO interviews (application_id, interview_date, interviewer_id, interview_type,
      location, notes, result, score, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+interviewColumns,
		row.applicationID, row.interviewDate, row.interviewerID, row.interviewType,
		row.location, row.notes, row.result, row.score, row.status))
}

func (s *Store) ListInterviews(ctx context.Context) ([]interviewRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+interviewColumns+` FROM interviews ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []interviewRow
	for rows.Next() {
		r, err := scanInterviewRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
