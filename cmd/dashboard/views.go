package main

import (
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/dashboard/filter"
	"fleet-admin/internal/dashboard/paginate"
	"fleet-admin/internal/dashboard/store"
)

// DriverView combines the driver store with the active search text, field
// criteria and page window. Changing any filter input snaps back to page 1;
// pagination always runs over the filtered list, never the raw one.
type DriverView struct {
	store    *store.DriverStore
	search   string
	criteria filter.Criteria
	window   paginate.Window
}

func NewDriverView(s *store.DriverStore, pageSize int) *DriverView {
	return &DriverView{
		store:    s,
		criteria: filter.Criteria{},
		window:   paginate.Window{Page: 1, Size: pageSize},
	}
}

func (v *DriverView) SetSearch(text string) {
	v.search = text
	v.window.Page = 1
}

func (v *DriverView) SetCriterion(field, text string) {
	if text == "" {
		delete(v.criteria, field)
	} else {
		v.criteria[field] = text
	}
	v.window.Page = 1
}

func (v *DriverView) SetPage(page int) {
	v.window.Page = page
}

// Visible returns the current page of the filtered drivers plus the filtered
// count and clamped window actually used.
func (v *DriverView) Visible() ([]models.Driver, int, paginate.Window) {
	filtered := filter.Drivers(v.store.Records(), v.search, v.criteria)
	w := paginate.Clamp(len(filtered), v.window)
	return paginate.Slice(filtered, w), len(filtered), w
}

// UserView pages on the server; search and criteria refine the fetched page
// locally. The total always reflects the server-side count.
type UserView struct {
	store    *store.UserStore
	search   string
	criteria filter.Criteria
	Page     int
	Size     int
}

func NewUserView(s *store.UserStore, pageSize int) *UserView {
	return &UserView{
		store:    s,
		criteria: filter.Criteria{},
		Page:     1,
		Size:     pageSize,
	}
}

func (v *UserView) SetSearch(text string) {
	v.search = text
	v.Page = 1
}

func (v *UserView) SetCriterion(field, text string) {
	if text == "" {
		delete(v.criteria, field)
	} else {
		v.criteria[field] = text
	}
	v.Page = 1
}

func (v *UserView) Visible() ([]models.User, int) {
	filtered := filter.Users(v.store.Records(), v.search, v.criteria)
	return filtered, v.store.Total()
}

func (v *UserView) TotalPages() int {
	return paginate.TotalPages(v.store.Total(), v.Size)
}

// ClampPage returns the page actually shown: an out-of-range request lands on
// the nearest valid page.
func (v *UserView) ClampPage() int {
	return paginate.Clamp(v.store.Total(), paginate.Window{Page: v.Page, Size: v.Size}).Page
}
