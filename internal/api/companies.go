package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// CompanyCreate is the creation payload. Website and BannerURL encode as
// explicit nulls when unset, matching what the signup flow sends.
type CompanyCreate struct {
	Name      string  `json:"name"`
	Website   *string `json:"website"`
	BannerURL *string `json:"banner_url"`
}

// CompanyUpdate carries the editable company fields for a PUT. Nil
// fields are omitted so partial updates (a lone banner_url) stay small.
type CompanyUpdate struct {
	Name        *string `json:"name,omitempty"`
	HQCity      *string `json:"hq_city,omitempty"`
	Sector      *string `json:"sector,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Headcount   *string `json:"headcount,omitempty"`
	BannerURL   *string `json:"banner_url,omitempty"`
}

// ListCompanies fetches one page of the company directory.
func (c *Client) ListCompanies(ctx context.Context, page, pageSize int) (board.Page[board.Company], error) {
	var out board.Page[board.Company]
	if err := c.get(ctx, "/api/companies", pageQuery(page, pageSize), &out); err != nil {
		return board.Page[board.Company]{}, fmt.Errorf("list companies: %w", err)
	}
	return out, nil
}

// CreateCompany registers a new company owned by the current recruiter.
func (c *Client) CreateCompany(ctx context.Context, payload CompanyCreate) (board.Company, error) {
	var out board.Company
	if err := c.send(ctx, "POST", "/api/companies", payload, &out); err != nil {
		return board.Company{}, fmt.Errorf("create company: %w", err)
	}
	return out, nil
}

// UpdateCompany applies the non-nil fields of payload to company id.
func (c *Client) UpdateCompany(ctx context.Context, id int64, payload CompanyUpdate) (board.Company, error) {
	var out board.Company
	if err := c.send(ctx, "PUT", "/api/companies/"+strconv.FormatInt(id, 10), payload, &out); err != nil {
		return board.Company{}, fmt.Errorf("update company %d: %w", id, err)
	}
	return out, nil
}
