package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// ListJobs fetches one page of job postings. q is a free-text title
// filter, omitted when empty.
func (c *Client) ListJobs(ctx context.Context, page, pageSize int, q string) (board.Page[board.JobPosting], error) {
	query := pageQuery(page, pageSize)
	if q != "" {
		query.Set("q", q)
	}
	var out board.Page[board.JobPosting]
	if err := c.get(ctx, "/api/jobs", query, &out); err != nil {
		return board.Page[board.JobPosting]{}, fmt.Errorf("list jobs: %w", err)
	}
	return out, nil
}

// GetJob fetches a single job posting by id.
func (c *Client) GetJob(ctx context.Context, id int64) (board.JobPosting, error) {
	var out board.JobPosting
	if err := c.get(ctx, "/api/jobs/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return board.JobPosting{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return out, nil
}
